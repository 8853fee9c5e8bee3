// Package types provides type definitions for structured data used throughout the resume-fit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobProfile represents a structured job posting extracted from raw text
type JobProfile struct {
	SchemaVersion           string              `json:"schema_version"`
	Title                   string              `json:"title"`
	Company                 string              `json:"company"`
	RawText                 string              `json:"raw_text"`
	SkillsByCategory        map[string][]string `json:"skills_by_category"`
	Industry                Industry            `json:"industry"`
	ExperienceLevel         string              `json:"experience_level"`
	KeyRequirements         []string            `json:"key_requirements"`
	PreferredQualifications []string            `json:"preferred_qualifications"`
	Keywords                []string            `json:"keywords"`
}

// Industry represents the detected industry and per-industry confidence
type Industry struct {
	Primary    string             `json:"primary"`
	Confidence map[string]float64 `json:"confidence"`
}

// PrimaryConfidence returns the confidence of the primary industry.
func (i Industry) PrimaryConfidence() float64 {
	return i.Confidence[i.Primary]
}

// TotalSkillMatches returns the number of matched skills across all categories.
func (p *JobProfile) TotalSkillMatches() int {
	total := 0
	for _, skills := range p.SkillsByCategory {
		total += len(skills)
	}
	return total
}
