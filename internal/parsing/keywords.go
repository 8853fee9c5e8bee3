package parsing

import "github.com/jonathan/resume-fit/internal/types"

// keywordTable is an ordered, read-only mapping from a category name to the
// phrases that signal it. Order matters: it is the tie-break order.
type keywordTable []keywordGroup

type keywordGroup struct {
	name     string
	keywords []string
}

// Keywords returns the phrases registered for name, or nil.
func (t keywordTable) Keywords(name string) []string {
	for _, g := range t {
		if g.name == name {
			return g.keywords
		}
	}
	return nil
}

// All phrases are lower-case; matching is plain substring containment against
// the lower-cased posting buffer.

var skillTable = keywordTable{
	{types.CategoryTechnical, []string{
		"python", "javascript", "typescript", "java", "golang", "react", "node.js",
		"sql", "rest api", "aws", "docker", "kubernetes", "html", "css",
		"wordpress", "github", "ci/cd", "microservices",
	}},
	{types.CategorySEO, []string{
		"seo", "search engine optimization", "keyword research", "google analytics",
		"google search console", "link building", "technical seo", "on-page",
		"off-page", "semrush", "ahrefs", "schema markup", "serp", "site audit",
		"content optimization",
	}},
	{types.CategoryMarketing, []string{
		"digital marketing", "content marketing", "social media", "email marketing",
		"ppc", "google ads", "campaign", "brand", "marketing automation", "hubspot",
		"copywriting", "conversion rate", "growth marketing", "content strategy",
	}},
	{types.CategoryLeadership, []string{
		"leadership", "team management", "people management", "mentor",
		"stakeholder", "cross-functional", "strategic planning", "budget",
		"roadmap", "hiring", "coaching", "manage a team",
	}},
	{types.CategoryAnalytics, []string{
		"analytics", "data analysis", "reporting", "dashboard", "kpi", "a/b testing",
		"tableau", "looker", "excel", "attribution", "data-driven", "bigquery",
	}},
}

var industryTable = keywordTable{
	{types.IndustryTechnology, []string{
		"software", "saas", "technology", "platform", "cloud", "engineering",
		"startup", "developer",
	}},
	{types.IndustryMarketing, []string{
		"marketing", "agency", "advertising", "brand", "seo", "media", "content",
		"digital marketing",
	}},
	{types.IndustryFinance, []string{
		"finance", "financial", "bank", "fintech", "investment", "insurance",
		"accounting", "trading",
	}},
	{types.IndustryHealthcare, []string{
		"healthcare", "health", "medical", "hospital", "clinical", "pharma",
		"patient", "biotech",
	}},
	{types.IndustryConsulting, []string{
		"consulting", "consultant", "advisory", "client engagement",
		"professional services", "clients",
	}},
}

// levelTable is scanned in order without early exit; the last level with any
// matching phrase wins.
var levelTable = keywordTable{
	{types.LevelEntry, []string{
		"entry level", "entry-level", "junior", "graduate", "internship",
		"0-2 years", "1+ years", "1-2 years",
	}},
	{types.LevelMid, []string{
		"mid level", "mid-level", "intermediate", "2+ years", "3+ years",
		"2-4 years", "3-5 years",
	}},
	{types.LevelSenior, []string{
		"senior", "sr.", "team lead", "principal", "5+ years", "6+ years",
		"7+ years", "5-7 years",
	}},
	{types.LevelExecutive, []string{
		"director", "vice president", "vp of", "head of", "chief", "executive",
		"10+ years", "c-level",
	}},
}

// industryConfidenceScale is the fixed number of keyword hits that maps to
// full confidence. It is not recalibrated per posting.
const industryConfidenceScale = 5.0

// SkillKeywords returns the keyword list of a skill category.
func SkillKeywords(category string) []string {
	return skillTable.Keywords(category)
}

// IndustryKeywords returns the keyword list of an industry.
func IndustryKeywords(industry string) []string {
	return industryTable.Keywords(industry)
}
