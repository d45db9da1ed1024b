// Package suggest finds "did you mean" candidates for mistyped names.
package suggest

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// threshold is the minimum similarity score required for a string to be considered similar.
const threshold = 0.5

type scored struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates similar to target, most similar first. Ties are
// broken alphabetically.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	suggestions := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if score := similarity(target, name); score > threshold {
			suggestions = append(suggestions, scored{name: name, score: score})
		}
	}
	slices.SortFunc(suggestions, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(maxResults, len(suggestions)))
	for _, s := range suggestions[:min(maxResults, len(suggestions))] {
		result = append(result, s.name)
	}
	return result
}

// similarity scores a against b between 0 and 1, case-insensitively. A prefix of b scores 0.9.
func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	distance := levenshtein.ComputeDistance(a, b)
	maxLen := max(len(a), len(b))
	return 1.0 - float64(distance)/float64(maxLen)
}
