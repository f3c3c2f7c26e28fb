package router

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// fuzzyMatchThreshold is the minimum normalized similarity ratio for a
// candidate to be offered as a suggestion. Below it, no suggestion at all
// beats a misleading one.
const fuzzyMatchThreshold = 0.70

// ClosestMatch returns the known name most similar to the input, or "" if
// nothing scores at least the threshold. Comparison is case-insensitive.
// Ties go to the earliest candidate in catalog order, which keeps
// suggestions deterministic.
func ClosestMatch(input string, candidates []string) string {
	lev := metrics.NewLevenshtein()
	lower := strings.ToLower(input)

	best := ""
	bestScore := 0.0
	for _, candidate := range candidates {
		score := strutil.Similarity(lower, strings.ToLower(candidate), lev)
		if score >= fuzzyMatchThreshold && score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best
}
