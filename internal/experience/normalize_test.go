package experience

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYears(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    float64
		wantErr bool
	}{
		{"missing", nil, 0, false},
		{"float", 6.5, 6.5, false},
		{"int", 4, 4, false},
		{"plain string", "7", 7, false},
		{"plus string", "5+", 5, false},
		{"years suffix", "10+ years", 10, false},
		{"single year", "1 year", 1, false},
		{"words", "several", 0, true},
		{"negative", -1.0, 0, true},
		{"bool", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseYears(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSkillEntries(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  []string
	}{
		{
			name:  "missing",
			input: nil,
			want:  []string{},
		},
		{
			name:  "strings keep order",
			input: []interface{}{"SEMrush", "seo", "Ahrefs"},
			want:  []string{"SEMrush", "SEO", "Ahrefs"},
		},
		{
			name: "records ordered by value then name",
			input: []interface{}{
				map[string]interface{}{"name": "Tableau", "proficiency": 3.0},
				map[string]interface{}{"name": "Excel", "proficiency": 5.0},
				map[string]interface{}{"name": "Looker", "proficiency": 3.0},
			},
			want: []string{"Excel", "Looker", "Tableau"},
		},
		{
			name: "mixed list puts ranked records first",
			input: []interface{}{
				"Docker",
				map[string]interface{}{"name": "Python", "years": 5},
				"AWS",
			},
			want: []string{"Python", "Docker", "AWS"},
		},
		{
			name:  "mapping",
			input: map[string]interface{}{"Looker": 2, "Excel": 5, "BigQuery": 2},
			want:  []string{"Excel", "BigQuery", "Looker"},
		},
		{
			name:  "duplicates removed case-insensitively",
			input: []interface{}{"HubSpot", "hubspot", ""},
			want:  []string{"HubSpot"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeSkillEntries(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSkillEntries_Errors(t *testing.T) {
	_, err := normalizeSkillEntries("SEO, Ahrefs")
	assert.Error(t, err)

	_, err = normalizeSkillEntries([]interface{}{42})
	assert.Error(t, err)

	_, err = normalizeSkillEntries(map[string]interface{}{"SEO": "high"})
	assert.Error(t, err)

	_, err = normalizeSkillEntries([]interface{}{map[string]interface{}{"proficiency": 3}})
	assert.Error(t, err)
}

func TestNormalizeCandidateProfile_UnknownDomainKept(t *testing.T) {
	profile, err := NormalizeCandidateProfile(map[string]interface{}{
		"domains": map[string]interface{}{
			"Sales": map[string]interface{}{"years": 2.0, "skills": []interface{}{"crm"}},
		},
	})
	require.NoError(t, err)

	sales, ok := profile.Domain("sales")
	require.True(t, ok)
	assert.Equal(t, []string{"Crm"}, sales.Skills)
}

func TestNormalizeCandidateProfile_Errors(t *testing.T) {
	tests := []struct {
		name string
		tree map[string]interface{}
	}{
		{"name not string", map[string]interface{}{"name": 3}},
		{"domains not mapping", map[string]interface{}{"domains": []interface{}{}}},
		{"domain not mapping", map[string]interface{}{"domains": map[string]interface{}{"seo": "yes"}}},
		{"achievement not string", map[string]interface{}{"domains": map[string]interface{}{
			"seo": map[string]interface{}{"achievements": []interface{}{1}},
		}}},
		{"credentials not list", map[string]interface{}{"education": "MIT"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeCandidateProfile(tt.tree)
			require.Error(t, err)

			var normErr *NormalizationError
			assert.True(t, errors.As(err, &normErr))
		})
	}
}

func TestNormalizeCandidateProfile_EmptyDomain(t *testing.T) {
	profile, err := NormalizeCandidateProfile(map[string]interface{}{
		"domains": map[string]interface{}{"seo": nil},
	})
	require.NoError(t, err)

	_, ok := profile.Domain("seo")
	assert.False(t, ok)
	assert.False(t, profile.HasAnyData())
}
