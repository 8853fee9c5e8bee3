package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/resume-fit/internal/types"
)

// Score thresholds on the 0-100 scale
const (
	PassThreshold      = 80.0
	ExcellentThreshold = 95.0
	GoodThreshold      = 90.0
)

// Score rates how well doc fits job. It is a pure function of its inputs.
// Errors are returned only for contract violations, as *ContractError; a poor
// fit is reported through the score, never as an error.
func Score(doc *types.CustomizedDocument, job *types.JobProfile) (*types.ScoreReport, error) {
	if doc == nil {
		return nil, &ContractError{Message: "document is required"}
	}
	if job == nil {
		return nil, &ContractError{Message: "job profile is required"}
	}
	if err := job.ValidateShape(); err != nil {
		return nil, &ContractError{Message: "job profile has an unexpected shape", Cause: err}
	}
	if err := doc.ValidateShape(); err != nil {
		return nil, &ContractError{Message: "document has an unexpected shape", Cause: err}
	}

	text := strings.ToLower(doc.RenderText())
	breakdown := map[string]float64{
		types.DimensionSkillsMatch:           scoreSkillsMatch(doc, job),
		types.DimensionExperienceRelevance:   scoreExperienceRelevance(doc, job),
		types.DimensionIndustryAlignment:     scoreIndustryAlignment(text, job),
		types.DimensionKeywordDensity:        scoreKeywordDensity(text, job),
		types.DimensionAchievementsRelevance: scoreAchievementsRelevance(doc, job),
	}

	total := totalScore(breakdown)
	return &types.ScoreReport{
		TotalScore:      total,
		Breakdown:       breakdown,
		MeetsThreshold:  total >= PassThreshold,
		QualityLevel:    QualityLevel(total),
		Recommendations: recommendations(total, breakdown),
		TemplateKind:    doc.TemplateKind,
		DocumentVersion: doc.Version,
		Degraded:        doc.Degraded,
	}, nil
}

// totalScore is the weighted sum on a 0-100 scale, rounded to two decimals.
func totalScore(breakdown map[string]float64) float64 {
	w := weights()
	sum := 0.0
	for _, dimension := range types.DimensionOrder() {
		sum += w[dimension] * breakdown[dimension]
	}
	total := math.Round(sum*100*100) / 100
	return math.Max(0, math.Min(100, total))
}

// QualityLevel maps a total score to its quality band.
func QualityLevel(total float64) string {
	switch {
	case total >= ExcellentThreshold:
		return types.QualityExcellent
	case total >= GoodThreshold:
		return types.QualityGood
	case total >= PassThreshold:
		return types.QualityAcceptable
	default:
		return types.QualityNeedsImprovement
	}
}
