package ranking

import (
	"fmt"

	"github.com/jonathan/resume-fit/internal/types"
)

// weakness pairs a dimension's cutoff with the advice given below it.
type weakness struct {
	cutoff  float64
	message string
}

var weaknesses = map[string]weakness{
	types.DimensionSkillsMatch: {
		0.7, "Add more of the posting's required skills to the skills section.",
	},
	types.DimensionExperienceRelevance: {
		0.7, "Highlight experience that matches the seniority the posting asks for.",
	},
	types.DimensionIndustryAlignment: {
		0.6, "Use more of the target industry's vocabulary in the summary and achievements.",
	},
	types.DimensionKeywordDensity: {
		0.6, "Work the posting's keywords into the summary and achievements verbatim.",
	},
	types.DimensionAchievementsRelevance: {
		0.6, "Rewrite achievements so they speak directly to the posting's key requirements.",
	},
}

// recommendations lists advice in dimension order, led by a threshold warning
// when the total misses the pass mark. It is empty for a strong document.
func recommendations(total float64, breakdown map[string]float64) []string {
	out := make([]string, 0, len(weaknesses)+1)
	if total < PassThreshold {
		out = append(out, fmt.Sprintf(
			"Overall fit %.2f is below the %.0f threshold; address the weakest areas below first.",
			total, PassThreshold))
	}
	for _, dimension := range types.DimensionOrder() {
		w := weaknesses[dimension]
		if breakdown[dimension] < w.cutoff {
			out = append(out, w.message)
		}
	}
	return out
}
