// Package types provides type definitions for structured data used throughout the resume-fit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// CustomizedDocument is the tailored candidate document produced for one posting
type CustomizedDocument struct {
	SchemaVersion   string   `json:"schema_version"`
	Version         string   `json:"version"`
	TemplateKind    string   `json:"template_kind"`
	Summary         string   `json:"summary"`
	Skills          SkillSet `json:"skills"`
	Achievements    []string `json:"achievements"`
	Credentials     []string `json:"credentials,omitempty"`
	YearsExperience float64  `json:"years_experience"`
	Degraded        bool     `json:"degraded"`
	DegradedReason  string   `json:"degraded_reason,omitempty"`
}

// SkillSet holds the prioritized skills of a document
type SkillSet struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// All returns primary followed by secondary skills.
func (s SkillSet) All() []string {
	out := make([]string, 0, len(s.Primary)+len(s.Secondary))
	out = append(out, s.Primary...)
	return append(out, s.Secondary...)
}

// RenderText returns the plain-text rendering of the document that scoring
// and downstream renderers operate on.
func (d *CustomizedDocument) RenderText() string {
	var sb strings.Builder
	sb.WriteString(d.Summary)
	sb.WriteString("\n")
	if len(d.Skills.Primary) > 0 {
		sb.WriteString("Core skills: ")
		sb.WriteString(strings.Join(d.Skills.Primary, ", "))
		sb.WriteString("\n")
	}
	if len(d.Skills.Secondary) > 0 {
		sb.WriteString("Additional skills: ")
		sb.WriteString(strings.Join(d.Skills.Secondary, ", "))
		sb.WriteString("\n")
	}
	for _, a := range d.Achievements {
		sb.WriteString("- ")
		sb.WriteString(a)
		sb.WriteString("\n")
	}
	for _, c := range d.Credentials {
		sb.WriteString(c)
		sb.WriteString("\n")
	}
	return sb.String()
}
