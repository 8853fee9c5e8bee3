package selection

import (
	"sort"

	"github.com/jonathan/resume-fit/internal/types"
)

const (
	// hybridMinCategories is how many categories need at least one match
	// before the hybrid template is considered.
	hybridMinCategories = 3
	// hybridMinTotalMatches must be exceeded (strictly) for hybrid.
	hybridMinTotalMatches = 8
)

// SelectTemplate picks the template kind for a job profile. The category with
// the most matched skills wins, ties going to the earlier category in priority
// order. The result is hybrid when at least three categories matched and the
// total number of matches is greater than eight, whatever the single winner.
func SelectTemplate(job *types.JobProfile) string {
	best := types.CategoryTechnical
	bestCount := -1
	active, total := 0, 0

	for _, category := range types.SkillCategories() {
		n := len(job.SkillsByCategory[category])
		total += n
		if n > 0 {
			active++
		}
		if n > bestCount {
			best, bestCount = category, n
		}
	}

	if active >= hybridMinCategories && total > hybridMinTotalMatches {
		return types.TemplateHybrid
	}
	return best
}

// RankCategories orders the skill categories by the job's match count,
// descending, keeping priority order among equal counts.
func RankCategories(job *types.JobProfile) []string {
	categories := types.SkillCategories()
	sort.SliceStable(categories, func(i, j int) bool {
		return len(job.SkillsByCategory[categories[i]]) > len(job.SkillsByCategory[categories[j]])
	})
	return categories
}

// hybridDomains returns the candidate domains with data, skill categories
// first in the job's ranking, then any other domains alphabetically.
func hybridDomains(job *types.JobProfile, candidate *types.CandidateProfile) []string {
	var domains []string
	for _, category := range RankCategories(job) {
		if _, ok := candidate.Domain(category); ok {
			domains = append(domains, category)
		}
	}

	var extra []string
	for name, d := range candidate.Domains {
		if !types.IsSkillCategory(name) && d.HasData() {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(domains, extra...)
}

// fallbackCategory picks the category used when the candidate has no data for
// the selected template: the declared default domain when it is a category
// with data, otherwise the first category in priority order with data. ok is
// false when no category carries data.
func fallbackCategory(candidate *types.CandidateProfile) (string, bool) {
	if types.IsSkillCategory(candidate.DefaultDomain) {
		if _, ok := candidate.Domain(candidate.DefaultDomain); ok {
			return candidate.DefaultDomain, true
		}
	}
	for _, category := range types.SkillCategories() {
		if _, ok := candidate.Domain(category); ok {
			return category, true
		}
	}
	return "", false
}
