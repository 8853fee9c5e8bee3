package parsing

import (
	"regexp"
	"strings"
)

type section int

const (
	sectionNone section = iota
	sectionRequirements
	sectionPreferred
)

// maxHeadingLength bounds what counts as a heading line; longer prose lines
// that happen to mention "requirements" are not headings.
const maxHeadingLength = 80

var (
	requirementHeadings = []string{
		"requirements", "qualifications", "what you'll need", "what you will need",
		"what you need", "must have", "must-have", "what you'll bring", "what we're looking for",
	}
	preferredHeadings = []string{
		"preferred", "nice to have", "nice-to-have", "bonus", "pluses", "desired",
	}
	benefitsHeadings = []string{
		"benefits", "what we offer", "perks", "compensation", "why join",
	}

	bulletPattern = regexp.MustCompile(`^\s*(?:[-*•·‣▪]|\d{1,2}[.)])\s+(.+)$`)
)

// extractSections walks the posting line by line. A requirements heading opens
// the requirements section, a preferred heading switches to the preferred
// section and a benefits heading closes whichever section is open. Only bullet
// lines are collected, verbatim apart from the bullet marker.
func extractSections(rawText string) (requirements, preferred []string) {
	requirements = make([]string, 0)
	preferred = make([]string, 0)

	current := sectionNone
	for _, line := range strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n") {
		if match := bulletPattern.FindStringSubmatch(line); match != nil {
			item := strings.TrimSpace(match[1])
			switch current {
			case sectionRequirements:
				if len(requirements) < maxKeyRequirements {
					requirements = append(requirements, item)
				}
			case sectionPreferred:
				if len(preferred) < maxPreferredQualifications {
					preferred = append(preferred, item)
				}
			}
			continue
		}

		heading := strings.ToLower(strings.TrimSpace(line))
		if heading == "" || len(heading) > maxHeadingLength {
			continue
		}
		// Preferred is checked before requirements because "preferred
		// qualifications" contains both.
		switch {
		case containsAny(heading, benefitsHeadings):
			current = sectionNone
		case containsAny(heading, preferredHeadings):
			current = sectionPreferred
		case containsAny(heading, requirementHeadings):
			current = sectionRequirements
		}
	}

	return requirements, preferred
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
