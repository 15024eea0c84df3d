package filter

import (
	"strings"

	"github.com/hbollon/go-edlib"
	"golang.org/x/exp/slices"
)

const minSimilarity = 0.3

// SuggestNames ranks venue names against a partial query for the search
// box. Substring matches always rank above fuzzy matches; the rest are
// ordered by Levenshtein similarity.
func SuggestNames(names []string, query string, limit int) []string {
	q := Normalize(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		name  string
		score float32
	}

	var candidates []scored
	for _, name := range names {
		normalized := Normalize(name)

		if strings.Contains(normalized, q) {
			candidates = append(candidates, scored{name: name, score: 2})
			continue
		}

		similarity, err := edlib.StringsSimilarity(q, normalized, edlib.Levenshtein)
		if err != nil || similarity < minSimilarity {
			continue
		}
		candidates = append(candidates, scored{name: name, score: similarity})
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	suggestions := make([]string, len(candidates))
	for i, c := range candidates {
		suggestions[i] = c.name
	}
	return suggestions
}
