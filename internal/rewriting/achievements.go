package rewriting

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// substitution rewrites one whole word or phrase into the target industry's
// vocabulary.
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

func sub(from, to string) substitution {
	return substitution{
		pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(from) + `\b`),
		replacement: to,
	}
}

// industrySubstitutions are applied in order; plural forms come before
// singular ones so "customers" is not rewritten as "client" + "s".
var industrySubstitutions = map[string][]substitution{
	"technology": {
		sub("applications", "technology solutions"),
		sub("websites", "web platforms"),
		sub("website", "web platform"),
	},
	"marketing": {
		sub("customers", "audiences"),
		sub("customer", "audience"),
		sub("users", "audiences"),
	},
	"finance": {
		sub("customers", "clients"),
		sub("customer", "client"),
		sub("users", "account holders"),
	},
	"healthcare": {
		sub("customers", "patients"),
		sub("customer", "patient"),
		sub("clients", "patients"),
	},
	"consulting": {
		sub("customers", "clients"),
		sub("customer", "client"),
		sub("projects", "engagements"),
		sub("project", "engagement"),
	},
}

var numericToken = regexp.MustCompile(`\d+(?:[.,]\d+)*`)

// TailorAchievements rewrites each achievement into the industry's vocabulary.
// Numbers are never altered: a rewrite whose numeric tokens differ from the
// original is discarded and the original kept. Unknown industries leave the
// text unchanged. The input slice is not modified.
func TailorAchievements(achievements []string, industry string) []string {
	rules := industrySubstitutions[industry]
	out := make([]string, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, tailor(a, rules))
	}
	return out
}

func tailor(text string, rules []substitution) string {
	rewritten := text
	for _, rule := range rules {
		rewritten = rule.pattern.ReplaceAllStringFunc(rewritten, func(match string) string {
			return matchCase(match, rule.replacement)
		})
	}
	if !sameNumbers(text, rewritten) {
		return text
	}
	return rewritten
}

// matchCase capitalizes replacement when the matched word was capitalized.
func matchCase(match, replacement string) string {
	first, _ := utf8.DecodeRuneInString(match)
	if !unicode.IsUpper(first) {
		return replacement
	}
	r, size := utf8.DecodeRuneInString(replacement)
	return string(unicode.ToUpper(r)) + replacement[size:]
}

func sameNumbers(a, b string) bool {
	na := numericToken.FindAllString(a, -1)
	nb := numericToken.FindAllString(b, -1)
	return strings.Join(na, " ") == strings.Join(nb, " ")
}
