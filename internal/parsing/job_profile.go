// Package parsing extracts a structured JobProfile from raw posting text using
// fixed keyword tables and a line-oriented section scan.
package parsing

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-fit/internal/types"
)

const (
	maxKeyRequirements         = 10
	maxPreferredQualifications = 5
)

// Analyze parses posting text into a JobProfile. It never fails: missing
// signal yields empty collections, a zero-confidence industry and the mid
// experience level. The returned profile shares no memory with other calls.
func Analyze(rawText, title, company string) *types.JobProfile {
	buffer := strings.ToLower(title + "\n" + rawText + "\n" + company)

	skills := matchSkills(buffer)
	industry, industryHits := detectIndustry(buffer)
	requirements, preferred := extractSections(rawText)

	return &types.JobProfile{
		SchemaVersion:           types.SchemaVersion,
		Title:                   title,
		Company:                 company,
		RawText:                 rawText,
		SkillsByCategory:        skills,
		Industry:                industry,
		ExperienceLevel:         detectExperienceLevel(buffer),
		KeyRequirements:         requirements,
		PreferredQualifications: preferred,
		Keywords:                collectKeywords(skills, industryHits),
	}
}

// matchSkills records every skill keyword found in the buffer under its
// category. Every category key is present, with an empty slice when nothing
// matched.
func matchSkills(buffer string) map[string][]string {
	result := make(map[string][]string, len(skillTable))
	for _, group := range skillTable {
		matched := make([]string, 0)
		for _, keyword := range group.keywords {
			if strings.Contains(buffer, keyword) {
				matched = append(matched, keyword)
			}
		}
		result[group.name] = dedupeSorted(matched)
	}
	return result
}

// detectIndustry counts keyword hits per industry. The industry with the most
// hits is primary; ties keep the earlier industry in priority order, so an
// empty buffer resolves to the first industry with zero confidence.
func detectIndustry(buffer string) (types.Industry, []string) {
	confidence := make(map[string]float64, len(industryTable))
	var hits []string

	primary := industryTable[0].name
	bestCount := -1
	for _, group := range industryTable {
		count := 0
		for _, keyword := range group.keywords {
			if strings.Contains(buffer, keyword) {
				count++
				hits = append(hits, keyword)
			}
		}
		confidence[group.name] = math.Min(float64(count)/industryConfidenceScale, 1.0)
		if count > bestCount {
			bestCount = count
			primary = group.name
		}
	}

	return types.Industry{Primary: primary, Confidence: confidence}, hits
}

// detectExperienceLevel scans the level table in order entry, mid, senior,
// executive without stopping at the first hit. A later level overrides an
// earlier one, so "Senior Director" resolves to executive.
func detectExperienceLevel(buffer string) string {
	level := types.LevelMid
	for _, group := range levelTable {
		for _, phrase := range group.keywords {
			if strings.Contains(buffer, phrase) {
				level = group.name
				break
			}
		}
	}
	return level
}

// collectKeywords returns the sorted, deduplicated union of matched skill and
// industry keywords.
func collectKeywords(skills map[string][]string, industryHits []string) []string {
	all := make([]string, 0, len(industryHits))
	for _, matched := range skills {
		all = append(all, matched...)
	}
	all = append(all, industryHits...)
	for i := range all {
		all[i] = NormalizeKeyword(all[i])
	}
	return dedupeSorted(all)
}

func dedupeSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
