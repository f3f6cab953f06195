package app

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"

	"github.com/memegrep/memegrep/internal/extract"
	"github.com/memegrep/memegrep/internal/fetch"
	"github.com/memegrep/memegrep/internal/input"
	"github.com/memegrep/memegrep/internal/rank"
	"github.com/memegrep/memegrep/internal/search"
)

// Record is the structured result of a resolution: the canonical page slug
// plus the two fields scraped from the page. Records are created fresh per
// call and never retained.
type Record struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	About string `json:"about"`
}

// Snippet renders the record as a one-line "Title. About" summary.
func (r Record) Snippet() string {
	return r.Title + ". " + r.About
}

// App wires the input normalizer, search provider, page fetcher, and field
// extractor together. It holds no mutable state, so a single App may be used
// from multiple goroutines.
type App struct {
	cfg      Config
	provider search.Provider
	fetcher  *fetch.Client
}

// New validates cfg and builds an App. When cfg.SearchFile is set, quick
// results come from that file instead of the live backend.
func New(cfg Config) (*App, error) {
	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		return nil, eris.Errorf("threshold %v outside the range [0, 1]", cfg.Threshold)
	}
	var provider search.Provider
	if strings.TrimSpace(cfg.SearchFile) != "" {
		provider = &search.FileProvider{Path: cfg.SearchFile}
	} else {
		provider = &search.InstantLinks{
			BaseURL:   cfg.SearchURL,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		}
	}
	return &App{
		cfg:      cfg,
		provider: provider,
		fetcher: &fetch.Client{
			BaseURL:   cfg.SiteURL,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		},
	}, nil
}

// Search resolves free-text keywords to a record via the quick-results
// backend. The best-scoring candidate at or above the threshold wins; ties
// keep the backend's ordering.
func (a *App) Search(ctx context.Context, query string) (Record, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Record{}, search.ErrEmptyQuery
	}
	cands, err := a.provider.Search(ctx, query, a.cfg.MaxResults)
	if err != nil {
		return Record{}, eris.Wrap(err, "quick results lookup")
	}
	if len(cands) == 0 {
		return Record{}, search.ErrNoResults
	}
	winner, score, err := rank.Best(cands, query, a.cfg.Threshold)
	if err != nil {
		return Record{}, err
	}
	log.Debug().
		Str("slug", winner.Slug).
		Float64("score", score).
		Int("candidates", len(cands)).
		Msg("accepted search candidate")
	return a.resolve(ctx, winner.Slug)
}

// Fetch resolves a literal slug or a full detail-page URL to a record. The
// input is never treated as keywords; see Search for that.
func (a *App) Fetch(ctx context.Context, raw string) (Record, error) {
	in, err := input.ClassifyFetch(raw)
	if err != nil {
		return Record{}, err
	}
	return a.resolve(ctx, in.Slug)
}

func (a *App) resolve(ctx context.Context, slug string) (Record, error) {
	body, err := a.fetcher.Page(ctx, slug)
	if err != nil {
		return Record{}, eris.Wrapf(err, "fetch page %q", slug)
	}
	doc, err := extract.FromHTML(body)
	if err != nil {
		return Record{}, eris.Wrapf(err, "extract page %q", slug)
	}
	return Record{Slug: slug, Title: doc.Title, About: doc.About}, nil
}
