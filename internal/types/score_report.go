// Package types provides type definitions for structured data used throughout the resume-fit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Score dimension keys, in reporting order (see DimensionOrder)
const (
	DimensionSkillsMatch           = "skills_match"
	DimensionExperienceRelevance   = "experience_relevance"
	DimensionIndustryAlignment     = "industry_alignment"
	DimensionKeywordDensity        = "keyword_density"
	DimensionAchievementsRelevance = "achievements_relevance"
)

// ScoreReport is the terminal artifact of the pipeline
type ScoreReport struct {
	TotalScore      float64            `json:"total_score"`
	Breakdown       map[string]float64 `json:"breakdown"`
	MeetsThreshold  bool               `json:"meets_threshold"`
	QualityLevel    string             `json:"quality_level"`
	Recommendations []string           `json:"recommendations"`
	TemplateKind    string             `json:"template_kind"`
	DocumentVersion string             `json:"document_version"`
	Degraded        bool               `json:"degraded"`
}

// DimensionOrder returns the dimension keys in reporting order.
func DimensionOrder() []string {
	return []string{
		DimensionSkillsMatch,
		DimensionExperienceRelevance,
		DimensionIndustryAlignment,
		DimensionKeywordDensity,
		DimensionAchievementsRelevance,
	}
}
