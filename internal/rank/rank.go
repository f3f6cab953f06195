package rank

import (
	"errors"

	"github.com/agext/levenshtein"
	"golang.org/x/text/cases"

	"github.com/memegrep/memegrep/internal/search"
)

// DefaultThreshold is the minimum similarity a top candidate must reach to be
// accepted. Tuned against real query/label pairs; labels routinely carry words
// the query omits, so demanding much more than half rejects good matches.
const DefaultThreshold = 0.5

// ErrNoConfidentMatch marks a result set whose best candidate scored below
// the acceptance threshold.
var ErrNoConfidentMatch = errors.New("no confident match")

// Score returns the similarity of query and label as a value in [0,1],
// computed as normalized Levenshtein similarity over case-folded text.
func Score(query, label string) float64 {
	fold := cases.Fold()
	return levenshtein.Similarity(fold.String(query), fold.String(label), levenshtein.NewParams())
}

// Best returns the candidate most similar to query along with its score.
// The threshold is inclusive. Ties keep the backend's original ordering, on
// the grounds that its own relevance ranking breaks them better than we can.
func Best(cands []search.Candidate, query string, threshold float64) (search.Candidate, float64, error) {
	best := -1
	var bestScore float64
	for i, c := range cands {
		if s := Score(query, c.Label); best < 0 || s > bestScore {
			best, bestScore = i, s
		}
	}
	if best < 0 || bestScore < threshold {
		return search.Candidate{}, bestScore, ErrNoConfidentMatch
	}
	return cands[best], bestScore, nil
}
