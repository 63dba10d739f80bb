// pattern: Functional Core

package discovery

import (
	"strings"

	"github.com/agext/levenshtein"
)

// PartialRatio scores how well the shorter of two strings aligns against the
// longer one, on a 0-100 scale. A literal substring relationship in either
// direction scores exactly 100. Anything else is scored by the best
// Levenshtein similarity of the shorter string against a same-length window
// of the longer, truncated so a non-substring overlap never reaches 100.
// Comparison is case-sensitive; callers lowercase as needed.
func PartialRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	shorter, longer := a, b
	if len([]rune(shorter)) > len([]rune(longer)) {
		shorter, longer = longer, shorter
	}
	if strings.Contains(longer, shorter) {
		return 100
	}

	sr := []rune(shorter)
	lr := []rune(longer)

	params := levenshtein.NewParams()
	best := 0.0
	for i := 0; i+len(sr) <= len(lr); i++ {
		window := string(lr[i : i+len(sr)])
		if sim := levenshtein.Similarity(window, shorter, params); sim > best {
			best = sim
		}
	}

	score := int(best * 100)
	if score > 99 {
		score = 99 // exact alignments were already handled by the substring check
	}
	return score
}
