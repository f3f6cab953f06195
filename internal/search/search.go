package search

import (
	"context"
	"errors"
)

// Candidate is a single quick-result entry: the display label the backend
// returned and the detail-page slug its URL points at.
type Candidate struct {
	Label string
	Slug  string
}

// Provider is a minimal interface for quick-result backends.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]Candidate, error)
}

var (
	// ErrEmptyQuery marks a query that is blank after trimming.
	ErrEmptyQuery = errors.New("empty query")
	// ErrNoResults marks a response that parsed but contained no usable entries.
	ErrNoResults = errors.New("no results")
	// ErrMalformedResponse marks a response body that does not match the
	// backend's expected shape. The endpoint is an unversioned contract owned
	// by the site, so shape drift is an expected failure mode.
	ErrMalformedResponse = errors.New("malformed quick-results response")
)
