package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// FileProvider serves quick results from a local JSON file for offline use.
// The file format mirrors the live backend: {"results": [{"name": "...",
// "url": "..."}]}.
type FileProvider struct {
	Path string
}

func (f *FileProvider) Search(_ context.Context, query string, limit int) ([]Candidate, error) {
	if strings.TrimSpace(f.Path) == "" {
		return nil, errors.New("file provider path is empty")
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	var ir instantResponse
	if err := json.Unmarshal(b, &ir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if limit <= 0 {
		limit = 10
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Candidate, 0, len(ir.Results))
	for _, r := range ir.Results {
		c, ok := toCandidate(r.Name, r.URL)
		if !ok {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(c.Label), q) {
			continue
		}
		out = append(out, c)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}
