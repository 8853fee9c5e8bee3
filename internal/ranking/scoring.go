package ranking

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-fit/internal/parsing"
	"github.com/jonathan/resume-fit/internal/types"
)

// Dimension weights. They sum to 1.
const (
	skillsMatchWeight           = 0.35
	experienceRelevanceWeight   = 0.25
	industryAlignmentWeight     = 0.15
	keywordDensityWeight        = 0.15
	achievementsRelevanceWeight = 0.10
)

// Experience scores relative to the level's expected years range.
const (
	aboveRangeTolerance = 1.5 // up to 1.5x the range maximum still scores fully
	overqualifiedScore  = 0.8
	nearMinFraction     = 0.75
	nearMinScore        = 0.8
	halfMinFraction     = 0.5
	halfMinScore        = 0.6
	farBelowScore       = 0.3
)

// noRequirementsScore is the neutral achievements score when the posting
// lists no requirements to compare against.
const noRequirementsScore = 0.5

// minContentWordLength: words must be longer than this to count as content.
const minContentWordLength = 3

type yearsRange struct {
	min, max float64
}

var levelYears = map[string]yearsRange{
	types.LevelEntry:     {0, 2},
	types.LevelMid:       {2, 5},
	types.LevelSenior:    {5, 10},
	types.LevelExecutive: {10, 20},
}

var stopWords = map[string]bool{
	"with": true, "that": true, "this": true, "from": true, "have": true,
	"will": true, "your": true, "their": true, "into": true, "about": true,
	"over": true, "than": true, "them": true, "they": true, "were": true,
	"been": true, "also": true, "more": true, "such": true, "each": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
}

// weights returns the dimension weights keyed by dimension name.
func weights() map[string]float64 {
	return map[string]float64{
		types.DimensionSkillsMatch:           skillsMatchWeight,
		types.DimensionExperienceRelevance:   experienceRelevanceWeight,
		types.DimensionIndustryAlignment:     industryAlignmentWeight,
		types.DimensionKeywordDensity:        keywordDensityWeight,
		types.DimensionAchievementsRelevance: achievementsRelevanceWeight,
	}
}

// scoreSkillsMatch is the fraction of job keywords matched by some document
// skill. No keywords scores zero.
func scoreSkillsMatch(doc *types.CustomizedDocument, job *types.JobProfile) float64 {
	if len(job.Keywords) == 0 {
		return 0.0
	}

	skills := doc.Skills.All()
	for i := range skills {
		skills[i] = strings.ToLower(skills[i])
	}

	matched := 0
	for _, keyword := range job.Keywords {
		keyword = strings.ToLower(keyword)
		for _, skill := range skills {
			if termsMatch(keyword, skill) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(job.Keywords))
}

// scoreExperienceRelevance compares the document's years with the range the
// job's level expects.
func scoreExperienceRelevance(doc *types.CustomizedDocument, job *types.JobProfile) float64 {
	r := levelYears[job.ExperienceLevel]
	years := doc.YearsExperience

	switch {
	case years >= r.min && years <= r.max*aboveRangeTolerance:
		return 1.0
	case years > r.max*aboveRangeTolerance:
		return overqualifiedScore
	case years >= r.min*nearMinFraction:
		return nearMinScore
	case years >= r.min*halfMinFraction:
		return halfMinScore
	default:
		return farBelowScore
	}
}

// scoreIndustryAlignment is the fraction of the primary industry's keyword
// list found in the document text, scaled by the detection confidence.
func scoreIndustryAlignment(text string, job *types.JobProfile) float64 {
	keywords := parsing.IndustryKeywords(job.Industry.Primary)
	if len(keywords) == 0 {
		return 0.0
	}
	found := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			found++
		}
	}
	return float64(found) / float64(len(keywords)) * job.Industry.PrimaryConfidence()
}

// scoreKeywordDensity is the fraction of job keywords present verbatim in the
// document text.
func scoreKeywordDensity(text string, job *types.JobProfile) float64 {
	if len(job.Keywords) == 0 {
		return 0.0
	}
	found := 0
	for _, keyword := range job.Keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			found++
		}
	}
	return float64(found) / float64(len(job.Keywords))
}

// scoreAchievementsRelevance averages, over achievements, the fraction of
// requirement lines sharing at least one content word with the achievement.
func scoreAchievementsRelevance(doc *types.CustomizedDocument, job *types.JobProfile) float64 {
	if len(doc.Achievements) == 0 {
		return 0.0
	}
	if len(job.KeyRequirements) == 0 {
		return noRequirementsScore
	}

	requirementWords := make([]map[string]bool, 0, len(job.KeyRequirements))
	for _, req := range job.KeyRequirements {
		requirementWords = append(requirementWords, contentWords(req))
	}

	total := 0.0
	for _, achievement := range doc.Achievements {
		words := contentWords(achievement)
		related := 0
		for _, reqWords := range requirementWords {
			if sharesWord(words, reqWords) {
				related++
			}
		}
		total += float64(related) / float64(len(requirementWords))
	}
	return total / float64(len(doc.Achievements))
}

// contentWords lower-cases text, splits it on anything that is not a letter
// or digit and keeps words longer than three characters that are not stop
// words.
func contentWords(text string) map[string]bool {
	words := make(map[string]bool)
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range fields {
		if len([]rune(w)) > minContentWordLength && !stopWords[w] {
			words[w] = true
		}
	}
	return words
}

func sharesWord(a, b map[string]bool) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for w := range a {
		if b[w] {
			return true
		}
	}
	return false
}
