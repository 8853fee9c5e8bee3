package selection

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-fit/internal/parsing"
	"github.com/jonathan/resume-fit/internal/rewriting"
	"github.com/jonathan/resume-fit/internal/types"
	"go.uber.org/zap"
)

const maxAchievements = 4

// Customizer builds a CustomizedDocument from a job profile and a candidate
// profile. The zero value is usable: it logs nowhere and reads the wall clock.
type Customizer struct {
	Logger *zap.Logger
	// Clock supplies the generation date used in document versions.
	Clock func() time.Time
}

// NewCustomizer returns a Customizer that logs to logger.
func NewCustomizer(logger *zap.Logger) *Customizer {
	return &Customizer{Logger: logger}
}

// content is the candidate material chosen for one document.
type content struct {
	kind         string
	domains      []string
	skills       []string
	achievements []string
	years        float64
}

// Customize selects a template, picks and orders the candidate's content for
// it and renders the document text. Neither input is modified. When the
// candidate has nothing for the selected template the document is built from
// a fallback category and flagged as degraded.
func (c *Customizer) Customize(job *types.JobProfile, candidate *types.CandidateProfile) (*types.CustomizedDocument, error) {
	if job == nil {
		return nil, &Error{Input: "job profile", Message: "is required"}
	}
	if candidate == nil {
		return nil, &Error{Input: "candidate profile", Message: "is required"}
	}

	logger := c.logger()
	selected := SelectTemplate(job)
	logger.Debug("template selected",
		zap.String("template", selected),
		zap.Int("total_matches", job.TotalSkillMatches()))

	chosen, reason := c.resolveContent(selected, job, candidate)
	if reason != "" {
		logger.Warn("customizing with fallback content",
			zap.String("template", selected),
			zap.String("fallback", chosen.kind),
			zap.String("reason", reason))
	}

	skills := PrioritizeSkills(chosen.skills, job.Keywords)
	doc := &types.CustomizedDocument{
		SchemaVersion:   types.SchemaVersion,
		Version:         DocumentVersion(job.Title, job.Company, c.now()),
		TemplateKind:    chosen.kind,
		Summary:         rewriting.GenerateSummary(chosen.kind, skills.All(), chosen.years, job.Industry.Primary),
		Skills:          skills,
		Achievements:    rewriting.TailorAchievements(chosen.achievements, job.Industry.Primary),
		Credentials:     formatCredentials(candidate, chosen.domains),
		YearsExperience: chosen.years,
		Degraded:        reason != "",
		DegradedReason:  reason,
	}
	return doc, nil
}

// resolveContent returns the content for the selected template and, when a
// fallback was needed, the reason.
func (c *Customizer) resolveContent(selected string, job *types.JobProfile, candidate *types.CandidateProfile) (content, string) {
	if selected == types.TemplateHybrid {
		if domains := hybridDomains(job, candidate); len(domains) > 0 {
			return hybridContent(domains, candidate), ""
		}
	} else if _, ok := candidate.Domain(selected); ok {
		return singleContent(selected, candidate), ""
	}

	fallback, ok := fallbackCategory(candidate)
	if !ok {
		kind := candidate.DefaultDomain
		if !types.IsSkillCategory(kind) {
			kind = types.CategoryTechnical
		}
		return content{kind: kind, skills: []string{}, achievements: []string{}},
			fmt.Sprintf("candidate profile has no data for %s or any other category", selected)
	}
	return singleContent(fallback, candidate),
		fmt.Sprintf("candidate profile has no data for %s; used %s instead", selected, fallback)
}

func singleContent(category string, candidate *types.CandidateProfile) content {
	d, _ := candidate.Domain(category)
	achievements := d.Achievements
	if len(achievements) > maxAchievements {
		achievements = achievements[:maxAchievements]
	}
	return content{
		kind:         category,
		domains:      []string{category},
		skills:       append([]string(nil), d.Skills...),
		achievements: append([]string(nil), achievements...),
		years:        d.Years,
	}
}

// hybridContent merges the given domains: skills in domain order without
// duplicates, the largest years value and achievements taken round-robin.
func hybridContent(domains []string, candidate *types.CandidateProfile) content {
	chosen := content{kind: types.TemplateHybrid, domains: domains}

	var allSkills []string
	lists := make([][]string, 0, len(domains))
	for _, name := range domains {
		d := candidate.Domains[name]
		allSkills = append(allSkills, d.Skills...)
		lists = append(lists, d.Achievements)
		if d.Years > chosen.years {
			chosen.years = d.Years
		}
	}
	chosen.skills = parsing.NormalizeSkills(allSkills)
	chosen.achievements = roundRobin(lists, maxAchievements)
	return chosen
}

func roundRobin(lists [][]string, limit int) []string {
	out := make([]string, 0, limit)
	for i := 0; len(out) < limit; i++ {
		progressed := false
		for _, list := range lists {
			if i < len(list) {
				progressed = true
				if len(out) < limit {
					out = append(out, list[i])
				}
			}
		}
		if !progressed {
			break
		}
	}
	return out
}

// formatCredentials renders the credentials tagged with any of the domains,
// education first, without duplicates.
func formatCredentials(candidate *types.CandidateProfile, domains []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, domain := range domains {
		for _, cred := range candidate.CredentialsFor(domain) {
			line := formatCredential(cred)
			if !seen[line] {
				seen[line] = true
				out = append(out, line)
			}
		}
	}
	return out
}

func formatCredential(cred types.Credential) string {
	var sb strings.Builder
	sb.WriteString(cred.Name)
	if cred.Institution != "" {
		sb.WriteString(", ")
		sb.WriteString(cred.Institution)
	}
	if cred.Year > 0 {
		sb.WriteString(" (")
		sb.WriteString(strconv.Itoa(cred.Year))
		sb.WriteString(")")
	}
	return sb.String()
}

func (c *Customizer) logger() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Customizer) now() time.Time {
	if c == nil || c.Clock == nil {
		return time.Now().UTC()
	}
	return c.Clock()
}
