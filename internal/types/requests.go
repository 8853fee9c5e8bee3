// Package types provides type definitions for structured data used throughout the resume-fit system.
package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata
var validate = validator.New()

// AnalyzeRequest is the input of the requirement extractor.
type AnalyzeRequest struct {
	Title   string `json:"title" validate:"max=300"`
	Company string `json:"company" validate:"max=300"`
	Text    string `json:"text" validate:"required_without=Title,max=200000"`
}

// CustomizeRequest pairs a job profile with an optional candidate profile.
// Candidate is raw profile JSON in any accepted skill form; when it is empty
// the server's configured profile is used.
type CustomizeRequest struct {
	JobProfile *JobProfile     `json:"job_profile" validate:"required"`
	Candidate  json.RawMessage `json:"candidate,omitempty"`
}

// RunRequest runs the whole pipeline for one posting.
type RunRequest struct {
	Title     string          `json:"title" validate:"max=300"`
	Company   string          `json:"company" validate:"max=300"`
	Text      string          `json:"text" validate:"required_without=Title,max=200000"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}

// ScoreRequest pairs a customized document with the job profile it was built for.
type ScoreRequest struct {
	Document   *CustomizedDocument `json:"document" validate:"required"`
	JobProfile *JobProfile         `json:"job_profile" validate:"required"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CustomizeRequest using the validator.
func (r *CustomizeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the RunRequest using the validator.
func (r *RunRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	return validate.Struct(r)
}

// jobProfileShape captures the structural contract a JobProfile must satisfy
// before it can be scored.
type jobProfileShape struct {
	SchemaVersion   string             `validate:"required,eq=1"`
	ExperienceLevel string             `validate:"required,oneof=entry mid senior executive"`
	Primary         string             `validate:"required,oneof=technology marketing finance healthcare consulting"`
	Confidence      map[string]float64 `validate:"dive,gte=0,lte=1"`
}

// documentShape captures the structural contract of a CustomizedDocument.
type documentShape struct {
	SchemaVersion string `validate:"required,eq=1"`
	TemplateKind  string `validate:"required,oneof=technical seo marketing leadership analytics hybrid"`
	Primary       int    `validate:"max=8"`
	Secondary     int    `validate:"max=6"`
	Achievements  int    `validate:"max=4"`
}

// ValidateShape checks that the profile matches the current schema contract.
func (p *JobProfile) ValidateShape() error {
	return validate.Struct(jobProfileShape{
		SchemaVersion:   p.SchemaVersion,
		ExperienceLevel: p.ExperienceLevel,
		Primary:         p.Industry.Primary,
		Confidence:      p.Industry.Confidence,
	})
}

// ValidateShape checks that the document matches the current schema contract.
func (d *CustomizedDocument) ValidateShape() error {
	return validate.Struct(documentShape{
		SchemaVersion: d.SchemaVersion,
		TemplateKind:  d.TemplateKind,
		Primary:       len(d.Skills.Primary),
		Secondary:     len(d.Skills.Secondary),
		Achievements:  len(d.Achievements),
	})
}
