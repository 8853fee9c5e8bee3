// Package types provides type definitions for structured data used throughout the resume-fit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile is the static, pre-authored description of the applicant.
// It is normalized once on load and never mutated by the pipeline.
type CandidateProfile struct {
	Name           string                      `json:"name"`
	DefaultDomain  string                      `json:"default_domain,omitempty"`
	Domains        map[string]DomainExperience `json:"domains"`
	Education      []Credential                `json:"education,omitempty"`
	Certifications []Credential                `json:"certifications,omitempty"`
}

// DomainExperience is one per-domain experience block
type DomainExperience struct {
	Years        float64  `json:"years"`
	Skills       []string `json:"skills"`       // ordered by relevance
	Achievements []string `json:"achievements"` // quantified statements, in order
}

// Credential is an education or certification entry tagged with the domains it supports
type Credential struct {
	Name        string   `json:"name" mapstructure:"name"`
	Institution string   `json:"institution,omitempty" mapstructure:"institution"`
	Year        int      `json:"year,omitempty" mapstructure:"year"`
	Domains     []string `json:"domains,omitempty" mapstructure:"domains"`
}

// HasData reports whether the domain block carries any skills or achievements.
func (d DomainExperience) HasData() bool {
	return len(d.Skills) > 0 || len(d.Achievements) > 0
}

// Domain returns the experience block for category and whether it carries data.
func (c *CandidateProfile) Domain(category string) (DomainExperience, bool) {
	if c == nil {
		return DomainExperience{}, false
	}
	d, ok := c.Domains[category]
	return d, ok && d.HasData()
}

// HasAnyData reports whether any domain of the profile carries data.
func (c *CandidateProfile) HasAnyData() bool {
	if c == nil {
		return false
	}
	for _, d := range c.Domains {
		if d.HasData() {
			return true
		}
	}
	return false
}

// CredentialsFor returns the credentials (education first, then certifications)
// tagged with the given domain.
func (c *CandidateProfile) CredentialsFor(domain string) []Credential {
	if c == nil {
		return nil
	}
	var out []Credential
	for _, list := range [][]Credential{c.Education, c.Certifications} {
		for _, cred := range list {
			for _, d := range cred.Domains {
				if d == domain {
					out = append(out, cred)
					break
				}
			}
		}
	}
	return out
}
