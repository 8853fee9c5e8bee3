package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsPhrase reports whether needle occurs in haystack as a whole word or
// phrase, ignoring case. "go" is not found in "google analytics" but
// "analytics" is.
func ContainsPhrase(haystack, needle string) bool {
	haystack = strings.ToLower(haystack)
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return false
	}

	for offset := 0; offset <= len(haystack)-len(needle); {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(needle)
		if boundaryBefore(haystack, start) && boundaryAfter(haystack, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(haystack[start:])
		offset = start + size
	}
	return false
}

// PhraseRelated reports whether either phrase contains the other as a whole
// word or phrase.
func PhraseRelated(a, b string) bool {
	return ContainsPhrase(a, b) || ContainsPhrase(b, a)
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
