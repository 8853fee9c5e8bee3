// Package rewriting produces the text of a customized document: the summary
// paragraph and the industry-tailored achievement statements.
package rewriting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-fit/internal/types"
)

// maxSummarySkills is how many prioritized skills the summary names
const maxSummarySkills = 3

// summaryTemplates holds one skeleton per template kind. Verbs are filled in
// order: years, industry, skills.
var summaryTemplates = map[string]string{
	types.CategoryTechnical: "Software engineer with %s of experience building reliable systems in %s. " +
		"Core strengths include %s.",
	types.CategorySEO: "SEO specialist with %s of experience driving organic growth in %s. " +
		"Skilled in %s, with a focus on measurable search visibility.",
	types.CategoryMarketing: "Marketing professional with %s of experience running campaigns in %s. " +
		"Proven strengths in %s.",
	types.CategoryLeadership: "Leader with %s of experience building and guiding teams in %s. " +
		"Known for %s.",
	types.CategoryAnalytics: "Analytics professional with %s of experience turning data into decisions in %s. " +
		"Proficient in %s.",
	types.TemplateHybrid: "Versatile professional with %s of experience across disciplines in %s, " +
		"combining %s.",
}

// GenerateSummary fills the skeleton for kind with the first prioritized
// skills, the candidate's years and the job's industry. Unknown kinds use the
// hybrid skeleton.
func GenerateSummary(kind string, prioritizedSkills []string, years float64, industry string) string {
	skeleton, ok := summaryTemplates[kind]
	if !ok {
		skeleton = summaryTemplates[types.TemplateHybrid]
	}
	if industry == "" {
		industry = types.IndustryTechnology
	}

	top := prioritizedSkills
	if len(top) > maxSummarySkills {
		top = top[:maxSummarySkills]
	}

	return fmt.Sprintf(skeleton, FormatYears(years), industry, joinSkills(top))
}

// FormatYears renders a year count for prose: "1 year", "6 years", "2.5 years".
func FormatYears(years float64) string {
	if years <= 0 {
		return "under a year"
	}
	s := strconv.FormatFloat(years, 'f', -1, 64)
	if years == 1 {
		return s + " year"
	}
	return s + " years"
}

func joinSkills(skills []string) string {
	switch len(skills) {
	case 0:
		return "a broad, transferable skill set"
	case 1:
		return skills[0]
	default:
		return strings.Join(skills[:len(skills)-1], ", ") + " and " + skills[len(skills)-1]
	}
}
