package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateProfile_Domain(t *testing.T) {
	candidate := &CandidateProfile{
		Domains: map[string]DomainExperience{
			CategorySEO:       {Years: 6, Skills: []string{"SEO"}},
			CategoryTechnical: {Years: 2},
		},
	}

	seo, ok := candidate.Domain(CategorySEO)
	assert.True(t, ok)
	assert.Equal(t, 6.0, seo.Years)

	_, ok = candidate.Domain(CategoryTechnical)
	assert.False(t, ok, "a block without skills or achievements carries no data")

	_, ok = candidate.Domain(CategoryLeadership)
	assert.False(t, ok)

	var nilProfile *CandidateProfile
	_, ok = nilProfile.Domain(CategorySEO)
	assert.False(t, ok)
}

func TestCandidateProfile_HasAnyData(t *testing.T) {
	assert.False(t, (*CandidateProfile)(nil).HasAnyData())
	assert.False(t, (&CandidateProfile{}).HasAnyData())
	assert.True(t, (&CandidateProfile{
		Domains: map[string]DomainExperience{
			CategoryMarketing: {Achievements: []string{"Grew leads 40%"}},
		},
	}).HasAnyData())
}

func TestCandidateProfile_CredentialsFor(t *testing.T) {
	candidate := &CandidateProfile{
		Education: []Credential{
			{Name: "BA Communications", Domains: []string{CategoryMarketing}},
			{Name: "BSc Computer Science", Domains: []string{CategoryTechnical}},
		},
		Certifications: []Credential{
			{Name: "Google Analytics IQ", Domains: []string{CategorySEO, CategoryMarketing, CategoryAnalytics}},
		},
	}

	creds := candidate.CredentialsFor(CategoryMarketing)
	if assert.Len(t, creds, 2) {
		assert.Equal(t, "BA Communications", creds[0].Name)
		assert.Equal(t, "Google Analytics IQ", creds[1].Name)
	}
	assert.Empty(t, candidate.CredentialsFor(CategoryLeadership))
}
