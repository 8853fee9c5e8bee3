package ranking

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/jonathan/resume-fit/internal/parsing"
)

// fuzzyMatchThreshold is the minimum normalized similarity for two terms to
// count as the same skill.
const fuzzyMatchThreshold = 0.6

// similarity returns 1 - editDistance/maxLength for lower-cased terms.
func similarity(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// termsMatch reports whether a job keyword and a document skill refer to the
// same thing: equal, one contained in the other, or close by edit distance.
func termsMatch(keyword, skill string) bool {
	if keyword == skill {
		return true
	}
	if parsing.PhraseRelated(keyword, skill) {
		return true
	}
	return similarity(keyword, skill) >= fuzzyMatchThreshold
}
