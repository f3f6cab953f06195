package input

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Kind discriminates how a raw caller string should be resolved.
type Kind int

const (
	// FreeText is keyword input destined for the quick-results backend.
	FreeText Kind = iota
	// PageURL is a full detail-page URL; the slug has been extracted.
	PageURL
	// Slug is a literal page identifier passed through as-is.
	Slug
)

var (
	// ErrEmpty marks input that is blank after trimming.
	ErrEmpty = errors.New("empty input")
	// ErrUnsupportedURL marks an absolute URL that is not a detail page.
	ErrUnsupportedURL = errors.New("unsupported URL kind")
)

// Input is the classified form of a raw caller string. Slug carries the page
// identifier for PageURL and Slug kinds; Query carries trimmed free text.
type Input struct {
	Kind  Kind
	Slug  string
	Query string
}

// ClassifyFetch interprets raw as either a full detail-page URL or a literal
// slug. Non-URL strings are never guessed at: fetch-style callers get the
// string back as a slug even when it could plausibly be keywords.
func ClassifyFetch(raw string) (Input, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Input{}, ErrEmpty
	}
	if strings.Contains(raw, "://") {
		slug, err := SlugFromURL(raw)
		if err != nil {
			return Input{}, err
		}
		return Input{Kind: PageURL, Slug: slug}, nil
	}
	return Input{Kind: Slug, Slug: raw}, nil
}

// ClassifyQuery interprets raw as free text for the search backend. Slug-shaped
// strings are deliberately not special-cased; search callers always search.
func ClassifyQuery(raw string) (Input, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Input{}, ErrEmpty
	}
	return Input{Kind: FreeText, Query: raw}, nil
}

// SlugFromURL extracts the page slug from an absolute detail-page URL. The
// only supported shape is http(s)://<host>/memes/<slug> with a single path
// segment after /memes/; anything else yields ErrUnsupportedURL.
func SlugFromURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if (scheme != "http" && scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedURL, raw)
	}
	rest, ok := strings.CutPrefix(strings.Trim(u.Path, "/"), "memes/")
	if !ok || !isSlug(rest) {
		return "", fmt.Errorf("%w: path %q is not a detail page", ErrUnsupportedURL, u.Path)
	}
	return rest, nil
}

// isSlug reports whether s is a single URL-path-safe segment.
func isSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == '~':
		default:
			return false
		}
	}
	return true
}
