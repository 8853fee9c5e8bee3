// Package types provides type definitions for structured data used throughout the resume-fit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SchemaVersion is stamped on every JobProfile and CustomizedDocument produced
// by this module. Consumers reject artifacts carrying any other version.
const SchemaVersion = "1"

// Skill categories, listed in tie-break priority order by SkillCategories.
const (
	CategoryTechnical  = "technical"
	CategorySEO        = "seo"
	CategoryMarketing  = "marketing"
	CategoryLeadership = "leadership"
	CategoryAnalytics  = "analytics"
)

// TemplateHybrid is the synthetic template kind used when a posting spans
// several skill categories.
const TemplateHybrid = "hybrid"

// Industries, listed in tie-break priority order by Industries.
const (
	IndustryTechnology = "technology"
	IndustryMarketing  = "marketing"
	IndustryFinance    = "finance"
	IndustryHealthcare = "healthcare"
	IndustryConsulting = "consulting"
)

// Experience levels
const (
	LevelEntry     = "entry"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelExecutive = "executive"
)

// Quality levels reported by the fit scorer
const (
	QualityExcellent        = "excellent"
	QualityGood             = "good"
	QualityAcceptable       = "acceptable"
	QualityNeedsImprovement = "needs_improvement"
)

// SkillCategories returns the skill categories in priority order.
func SkillCategories() []string {
	return []string{CategoryTechnical, CategorySEO, CategoryMarketing, CategoryLeadership, CategoryAnalytics}
}

// Industries returns the industries in priority order.
func Industries() []string {
	return []string{IndustryTechnology, IndustryMarketing, IndustryFinance, IndustryHealthcare, IndustryConsulting}
}

// ExperienceLevels returns the experience levels in scan order.
func ExperienceLevels() []string {
	return []string{LevelEntry, LevelMid, LevelSenior, LevelExecutive}
}

// IsSkillCategory reports whether name is one of the fixed skill categories.
func IsSkillCategory(name string) bool {
	for _, c := range SkillCategories() {
		if c == name {
			return true
		}
	}
	return false
}

// IsTemplateKind reports whether name is a valid template kind.
func IsTemplateKind(name string) bool {
	return name == TemplateHybrid || IsSkillCategory(name)
}

// IsExperienceLevel reports whether level is one of the known experience levels.
func IsExperienceLevel(level string) bool {
	for _, l := range ExperienceLevels() {
		if l == level {
			return true
		}
	}
	return false
}
