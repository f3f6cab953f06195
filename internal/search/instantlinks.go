package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/memegrep/memegrep/internal/input"
)

// DefaultEndpoint is the quick-links endpoint behind the site's search bar.
// Plain http on purpose: the host's TLS setup rejects current clients
// (DH key too small).
const DefaultEndpoint = "http://rkgk.api.searchify.com/v1/indexes/kym_production/instantlinks"

// InstantLinks implements Provider against the site's quick-results backend.
// It is a smaller payload than the full search page and returns structured
// name/url pairs directly, so no second HTML parse is needed.
type InstantLinks struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds each request. Zero means default (10s).
	Timeout time.Duration
}

func (s *InstantLinks) Search(ctx context.Context, query string, limit int) ([]Candidate, error) {
	base := s.BaseURL
	if base == "" {
		base = DefaultEndpoint
	}
	if limit <= 0 {
		limit = 10
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("query", query)
	q.Set("field", "name")
	q.Set("fetch", "name,url")
	q.Set("len", fmt.Sprintf("%d", limit))
	u.RawQuery = q.Encode()

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}
	hc := s.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("quick results status: %d", resp.StatusCode)
	}
	var ir instantResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	out := make([]Candidate, 0, len(ir.Results))
	for _, r := range ir.Results {
		c, ok := toCandidate(r.Name, r.URL)
		if !ok {
			continue
		}
		out = append(out, c)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// toCandidate builds a Candidate from a raw result entry. Entries missing a
// name, or whose url is not a detail page, are dropped.
func toCandidate(name, rawURL string) (Candidate, bool) {
	name = strings.TrimSpace(name)
	rawURL = strings.TrimSpace(rawURL)
	if name == "" || rawURL == "" {
		return Candidate{}, false
	}
	// The backend returns site-relative paths like /memes/<slug>.
	if strings.HasPrefix(rawURL, "/") {
		rawURL = "https://knowyourmeme.com" + rawURL
	}
	slug, err := input.SlugFromURL(rawURL)
	if err != nil {
		return Candidate{}, false
	}
	return Candidate{Label: name, Slug: slug}, true
}

type instantResponse struct {
	Results []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}
