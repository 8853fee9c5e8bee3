package selection

import (
	"errors"
	"testing"
	"time"

	"github.com/jonathan/resume-fit/internal/parsing"
	"github.com/jonathan/resume-fit/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const seoPosting = `Brightline is a marketing agency helping growing companies win organic search.

About the role
You will own SEO strategy and report on organic performance.

Requirements
- 5+ years of hands-on SEO experience
- Expert in keyword research and Google Analytics
- Experience with link building and technical SEO audits
- Strong content optimization skills

Preferred Qualifications
- Experience with SEMrush or Ahrefs
- Agency background

Benefits
- Remote-first team
`

const hybridPosting = `We need someone strong in SEO, keyword research, link building, technical SEO,
SEMrush and Ahrefs who can also script in Python and show leadership as a mentor.`

func fixedClock() time.Time {
	return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
}

func seoCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		Name:          "Ada Park",
		DefaultDomain: types.CategorySEO,
		Domains: map[string]types.DomainExperience{
			types.CategorySEO: {
				Years: 6,
				Skills: []string{
					"SEO", "Keyword Research", "Technical SEO", "Link Building", "Content Optimization",
					"Google Analytics", "SEMrush", "Ahrefs", "Digital Marketing", "HTML", "WordPress",
				},
				Achievements: []string{
					"Grew organic traffic 150% in 12 months with technical SEO audits and keyword research",
					"Scaled link building and content optimization programs, earning 400 referring domains for agency clients",
					"Built Google Analytics dashboards tracking content performance across 200 pages",
					"Delivered 6 years of hands-on keyword research for 30 accounts",
					"Ran 5 site migrations without traffic loss",
				},
			},
			types.CategoryLeadership: {
				Years:        8,
				Skills:       []string{"Team Leadership", "Mentoring"},
				Achievements: []string{"Mentored 5 analysts into senior roles", "Hired 3 specialists"},
			},
			types.CategoryTechnical: {
				Years:        3,
				Skills:       []string{"Python"},
				Achievements: []string{"Automated 20 weekly reports in Python"},
			},
		},
		Certifications: []types.Credential{
			{Name: "Google Analytics IQ", Institution: "Google", Year: 2022, Domains: []string{"seo"}},
			{Name: "PMP", Domains: []string{"leadership"}},
		},
	}
}

func newTestCustomizer(logger *zap.Logger) *Customizer {
	return &Customizer{Logger: logger, Clock: fixedClock}
}

func TestCustomize_SEOPosting(t *testing.T) {
	job := parsing.Analyze(seoPosting, "Senior SEO Manager", "Brightline")

	doc, err := newTestCustomizer(nil).Customize(job, seoCandidate())
	require.NoError(t, err)

	assert.Equal(t, types.SchemaVersion, doc.SchemaVersion)
	assert.Equal(t, types.CategorySEO, doc.TemplateKind)
	assert.False(t, doc.Degraded)
	assert.Empty(t, doc.DegradedReason)
	assert.Equal(t, DocumentVersion("Senior SEO Manager", "Brightline", fixedClock()), doc.Version)
	assert.Equal(t, 6.0, doc.YearsExperience)

	assert.Equal(t, []string{
		"SEO", "Keyword Research", "Technical SEO", "Link Building", "Content Optimization",
		"Google Analytics", "SEMrush", "Ahrefs",
	}, doc.Skills.Primary)
	assert.Equal(t, []string{"Digital Marketing", "HTML", "WordPress"}, doc.Skills.Secondary)

	assert.Equal(t, "SEO specialist with 6 years of experience driving organic growth in marketing. "+
		"Skilled in SEO, Keyword Research and Technical SEO, with a focus on measurable search visibility.", doc.Summary)

	require.Len(t, doc.Achievements, maxAchievements)
	assert.Equal(t, "Grew organic traffic 150% in 12 months with technical SEO audits and keyword research", doc.Achievements[0])
	assert.Equal(t, []string{"Google Analytics IQ, Google (2022)"}, doc.Credentials)

	assert.NoError(t, doc.ValidateShape())
}

func TestCustomize_HybridPosting(t *testing.T) {
	job := parsing.Analyze(hybridPosting, "SEO Lead", "Acme")
	require.Equal(t, types.TemplateHybrid, SelectTemplate(job))

	doc, err := newTestCustomizer(nil).Customize(job, seoCandidate())
	require.NoError(t, err)

	assert.Equal(t, types.TemplateHybrid, doc.TemplateKind)
	assert.False(t, doc.Degraded)
	assert.Equal(t, 8.0, doc.YearsExperience)
	assert.Equal(t, []string{
		"Grew organic traffic 150% in 12 months with technical SEO audits and keyword research",
		"Mentored 5 analysts into senior roles",
		"Automated 20 weekly reports in Python",
		"Scaled link building and content optimization programs, earning 400 referring domains for agency clients",
	}, doc.Achievements)
	assert.Contains(t, doc.Skills.All(), "Python")
	assert.Contains(t, doc.Summary, "Versatile professional with 8 years")
	assert.Equal(t, []string{"Google Analytics IQ, Google (2022)", "PMP"}, doc.Credentials)
}

func TestCustomize_FallbackIsDegradedAndLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	job := parsing.Analyze(seoPosting, "Senior SEO Manager", "Brightline")
	candidate := &types.CandidateProfile{Domains: map[string]types.DomainExperience{
		types.CategoryTechnical: {
			Years:        4,
			Skills:       []string{"Go", "SQL"},
			Achievements: []string{"Cut API latency 40%"},
		},
	}}

	doc, err := newTestCustomizer(zap.New(core)).Customize(job, candidate)
	require.NoError(t, err)

	assert.Equal(t, types.CategoryTechnical, doc.TemplateKind)
	assert.True(t, doc.Degraded)
	assert.Contains(t, doc.DegradedReason, "seo")
	assert.Contains(t, doc.DegradedReason, "technical")
	assert.Equal(t, []string{"Cut API latency 40%"}, doc.Achievements)
	assert.Equal(t, 1, logs.FilterMessage("customizing with fallback content").Len())
}

func TestCustomize_DefaultDomainPreferredForFallback(t *testing.T) {
	job := parsing.Analyze(seoPosting, "Senior SEO Manager", "Brightline")
	candidate := &types.CandidateProfile{
		DefaultDomain: types.CategoryAnalytics,
		Domains: map[string]types.DomainExperience{
			types.CategoryTechnical: {Skills: []string{"Go"}},
			types.CategoryAnalytics: {Years: 2, Skills: []string{"Excel"}},
		},
	}

	doc, err := newTestCustomizer(nil).Customize(job, candidate)
	require.NoError(t, err)
	assert.Equal(t, types.CategoryAnalytics, doc.TemplateKind)
	assert.True(t, doc.Degraded)
}

func TestCustomize_EmptyCandidateStillProducesDocument(t *testing.T) {
	job := parsing.Analyze(seoPosting, "Senior SEO Manager", "Brightline")

	doc, err := newTestCustomizer(nil).Customize(job, &types.CandidateProfile{})
	require.NoError(t, err)

	assert.True(t, doc.Degraded)
	assert.Equal(t, types.CategoryTechnical, doc.TemplateKind)
	assert.NotEmpty(t, doc.Summary)
	assert.Empty(t, doc.Skills.All())
	assert.NotNil(t, doc.Achievements)
	assert.Empty(t, doc.Achievements)
	assert.NoError(t, doc.ValidateShape())
}

func TestCustomize_NilInputs(t *testing.T) {
	c := newTestCustomizer(nil)

	_, err := c.Customize(nil, seoCandidate())
	var selErr *Error
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, "job profile", selErr.Input)
	assert.Equal(t, "job profile is required", selErr.Error())

	_, err = c.Customize(parsing.Analyze("", "", ""), nil)
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, "candidate profile", selErr.Input)
}

func TestCustomize_DeterministicAndPure(t *testing.T) {
	job := parsing.Analyze(seoPosting, "Senior SEO Manager", "Brightline")
	candidate := seoCandidate()
	c := newTestCustomizer(nil)

	first, err := c.Customize(job, candidate)
	require.NoError(t, err)
	second, err := c.Customize(job, candidate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, seoCandidate(), candidate)
	assert.Equal(t, parsing.Analyze(seoPosting, "Senior SEO Manager", "Brightline"), job)
}

func TestCustomize_ZeroValueCustomizer(t *testing.T) {
	var c Customizer
	doc, err := c.Customize(parsing.Analyze(seoPosting, "", ""), seoCandidate())
	require.NoError(t, err)
	assert.Regexp(t, `^\d{8}-[0-9a-f]{8}$`, doc.Version)
}

func TestRoundRobin(t *testing.T) {
	lists := [][]string{{"a1", "a2", "a3"}, {"b1"}, {}, {"c1", "c2"}}
	assert.Equal(t, []string{"a1", "b1", "c1", "a2"}, roundRobin(lists, 4))
	assert.Equal(t, []string{"a1", "b1", "c1", "a2", "c2", "a3"}, roundRobin(lists, 10))
	assert.Empty(t, roundRobin(nil, 4))
}
