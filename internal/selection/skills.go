package selection

import (
	"github.com/jonathan/resume-fit/internal/parsing"
	"github.com/jonathan/resume-fit/internal/types"
)

const (
	maxPrimarySkills   = 8
	maxSecondarySkills = 6
)

// PrioritizeSkills splits candidate skills into primary and secondary. A skill
// is primary when it and some job keyword contain one another as whole words.
// Matched skills beyond the primary cap lead the secondary list; the candidate's
// own order is kept within each group.
func PrioritizeSkills(skills, keywords []string) types.SkillSet {
	matched := make([]string, 0, len(skills))
	rest := make([]string, 0, len(skills))
	for _, skill := range skills {
		if matchesKeyword(skill, keywords) {
			matched = append(matched, skill)
		} else {
			rest = append(rest, skill)
		}
	}

	set := types.SkillSet{Primary: []string{}, Secondary: []string{}}
	if len(matched) > maxPrimarySkills {
		set.Primary = append(set.Primary, matched[:maxPrimarySkills]...)
		rest = append(matched[maxPrimarySkills:len(matched):len(matched)], rest...)
	} else {
		set.Primary = append(set.Primary, matched...)
	}

	if len(rest) > maxSecondarySkills {
		rest = rest[:maxSecondarySkills]
	}
	set.Secondary = append(set.Secondary, rest...)
	return set
}

func matchesKeyword(skill string, keywords []string) bool {
	for _, keyword := range keywords {
		if parsing.PhraseRelated(skill, keyword) {
			return true
		}
	}
	return false
}
