package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobProfile_TotalSkillMatches(t *testing.T) {
	profile := &JobProfile{
		SkillsByCategory: map[string][]string{
			CategorySEO:       {"seo", "keyword research"},
			CategoryMarketing: {"content marketing"},
			CategoryTechnical: {},
		},
	}

	assert.Equal(t, 3, profile.TotalSkillMatches())
	assert.Equal(t, 0, (&JobProfile{}).TotalSkillMatches())
}

func TestIndustry_PrimaryConfidence(t *testing.T) {
	industry := Industry{
		Primary:    IndustryMarketing,
		Confidence: map[string]float64{IndustryMarketing: 0.6, IndustryTechnology: 0.2},
	}
	assert.InDelta(t, 0.6, industry.PrimaryConfidence(), 1e-9)
	assert.Equal(t, 0.0, Industry{Primary: IndustryFinance}.PrimaryConfidence())
}

func TestJobProfile_JSONFieldNames(t *testing.T) {
	profile := JobProfile{
		SchemaVersion:   SchemaVersion,
		Title:           "Senior SEO Manager",
		ExperienceLevel: LevelSenior,
		Industry:        Industry{Primary: IndustryMarketing},
	}

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "1", raw["schema_version"])
	assert.Equal(t, "senior", raw["experience_level"])
	assert.Contains(t, raw, "skills_by_category")
	assert.Contains(t, raw, "key_requirements")
	assert.Contains(t, raw, "preferred_qualifications")
}

func TestJobProfile_ValidateShape(t *testing.T) {
	tests := []struct {
		name    string
		profile JobProfile
		wantErr bool
	}{
		{
			name: "valid",
			profile: JobProfile{
				SchemaVersion:   SchemaVersion,
				ExperienceLevel: LevelMid,
				Industry:        Industry{Primary: IndustryTechnology},
			},
		},
		{
			name: "foreign schema version",
			profile: JobProfile{
				SchemaVersion:   "0",
				ExperienceLevel: LevelMid,
				Industry:        Industry{Primary: IndustryTechnology},
			},
			wantErr: true,
		},
		{
			name: "unknown level",
			profile: JobProfile{
				SchemaVersion:   SchemaVersion,
				ExperienceLevel: "guru",
				Industry:        Industry{Primary: IndustryTechnology},
			},
			wantErr: true,
		},
		{
			name: "confidence above one",
			profile: JobProfile{
				SchemaVersion:   SchemaVersion,
				ExperienceLevel: LevelMid,
				Industry:        Industry{Primary: IndustryTechnology, Confidence: map[string]float64{IndustryTechnology: 9}},
			},
			wantErr: true,
		},
		{
			name: "negative confidence on another industry",
			profile: JobProfile{
				SchemaVersion:   SchemaVersion,
				ExperienceLevel: LevelMid,
				Industry: Industry{Primary: IndustryTechnology, Confidence: map[string]float64{
					IndustryTechnology: 0.4,
					IndustryFinance:    -0.2,
				}},
			},
			wantErr: true,
		},
		{
			name: "confidence bounds inclusive",
			profile: JobProfile{
				SchemaVersion:   SchemaVersion,
				ExperienceLevel: LevelMid,
				Industry: Industry{Primary: IndustryTechnology, Confidence: map[string]float64{
					IndustryTechnology: 1,
					IndustryFinance:    0,
				}},
			},
		},
		{
			name: "missing industry",
			profile: JobProfile{
				SchemaVersion:   SchemaVersion,
				ExperienceLevel: LevelMid,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.ValidateShape()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryHelpers(t *testing.T) {
	assert.Equal(t, []string{"technical", "seo", "marketing", "leadership", "analytics"}, SkillCategories())
	assert.Equal(t, []string{"technology", "marketing", "finance", "healthcare", "consulting"}, Industries())
	assert.Equal(t, []string{"entry", "mid", "senior", "executive"}, ExperienceLevels())

	assert.True(t, IsSkillCategory(CategorySEO))
	assert.False(t, IsSkillCategory(TemplateHybrid))
	assert.True(t, IsTemplateKind(TemplateHybrid))
	assert.False(t, IsTemplateKind("general"))
	assert.True(t, IsExperienceLevel(LevelExecutive))
	assert.False(t, IsExperienceLevel(""))
}
