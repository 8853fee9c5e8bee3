package parsing

import (
	"strings"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":                     "Go",
	"go lang":                    "Go",
	"javascript":                 "JavaScript",
	"js":                         "JavaScript",
	"typescript":                 "TypeScript",
	"ts":                         "TypeScript",
	"k8s":                        "Kubernetes",
	"kubernetes":                 "Kubernetes",
	"react.js":                   "React",
	"reactjs":                    "React",
	"node.js":                    "Node.js",
	"nodejs":                     "Node.js",
	"seo":                        "SEO",
	"search engine optimisation": "SEO",
	"ppc":                        "PPC",
	"sem":                        "SEM",
	"ga4":                        "Google Analytics",
	"google analytics":           "Google Analytics",
	"gsc":                        "Google Search Console",
	"hubspot":                    "HubSpot",
	"semrush":                    "SEMrush",
	"kpi":                        "KPI",
	"kpis":                       "KPIs",
	"a/b testing":                "A/B Testing",
	"ab testing":                 "A/B Testing",
}

// NormalizeSkillName normalizes a skill name to its canonical display form
func NormalizeSkillName(skillName string) string {
	if skillName == "" {
		return ""
	}

	normalized := strings.Join(strings.Fields(skillName), " ")

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Long all-caps single words are shouted names, not acronyms
	if normalized == strings.ToUpper(normalized) && len(normalized) > 5 && !strings.Contains(lower, " ") {
		return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
	}

	// Mixed case is assumed intentional
	if normalized != strings.ToLower(normalized) {
		return normalized
	}

	// All lowercase single word: capitalize first letter
	if !strings.Contains(normalized, " ") && len(normalized) > 0 {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// NormalizeKeyword lower-cases a keyword and collapses inner whitespace.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.Join(strings.Fields(keyword), " "))
}

// NormalizeSkills canonicalizes skill names and drops empty and duplicate
// entries (case-insensitive), preserving first-seen order.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		n := NormalizeSkillName(s)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out
}
