package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			content, err := Schema(name)
			require.NoError(t, err)

			var v interface{}
			assert.NoError(t, json.Unmarshal([]byte(content), &v))
		})
	}
}

func TestSchema_Unknown(t *testing.T) {
	_, err := Schema("nope")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidate_CandidateProfile(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantError bool
	}{
		{
			name: "list of strings",
			content: `{"name":"Ada","domains":{"seo":{"years":6,"skills":["SEO","Ahrefs"],
				"achievements":["Grew traffic 150%"]}}}`,
		},
		{
			name:    "records and string years",
			content: `{"domains":{"technical":{"years":"5+","skills":[{"name":"Go","years":4},"SQL"]}}}`,
		},
		{
			name:    "skill mapping",
			content: `{"domains":{"analytics":{"years":3,"skills":{"Looker":4,"Excel":5}}}}`,
		},
		{
			name: "credentials",
			content: `{"domains":{},"certifications":[{"name":"Google Analytics IQ","year":2022,
				"domains":["seo","analytics"]}]}`,
		},
		{
			name:      "missing domains",
			content:   `{"name":"Ada"}`,
			wantError: true,
		},
		{
			name:      "years not numeric",
			content:   `{"domains":{"seo":{"years":"several"}}}`,
			wantError: true,
		},
		{
			name:      "credential without name",
			content:   `{"domains":{},"education":[{"institution":"MIT"}]}`,
			wantError: true,
		},
		{
			name:      "achievements not strings",
			content:   `{"domains":{"seo":{"achievements":[42]}}}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(CandidateProfile, []byte(tt.content))
			if tt.wantError {
				require.Error(t, err)
				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.NotEmpty(t, validationErr.Errors)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_JobProfile(t *testing.T) {
	valid := `{
		"schema_version": "1",
		"skills_by_category": {"technical": [], "seo": ["seo"], "marketing": [], "leadership": [], "analytics": []},
		"industry": {"primary": "marketing", "confidence": {"marketing": 0.4}},
		"experience_level": "senior",
		"key_requirements": [],
		"keywords": ["seo"]
	}`
	assert.NoError(t, Validate(JobProfile, []byte(valid)))

	wrongLevel := `{
		"schema_version": "1",
		"skills_by_category": {"technical": [], "seo": [], "marketing": [], "leadership": [], "analytics": []},
		"industry": {"primary": "marketing", "confidence": {}},
		"experience_level": "principal",
		"key_requirements": [],
		"keywords": []
	}`
	assert.Error(t, Validate(JobProfile, []byte(wrongLevel)))

	wrongVersion := `{"schema_version": "2"}`
	assert.Error(t, Validate(JobProfile, []byte(wrongVersion)))
}

func TestValidate_CustomizedDocument(t *testing.T) {
	valid := `{
		"schema_version": "1",
		"version": "20250301-1a2b3c4d",
		"template_kind": "hybrid",
		"summary": "s",
		"skills": {"primary": ["Go"], "secondary": []},
		"achievements": ["a"]
	}`
	assert.NoError(t, Validate(CustomizedDocument, []byte(valid)))

	badVersion := `{
		"schema_version": "1",
		"version": "v1",
		"template_kind": "seo",
		"summary": "s",
		"skills": {"primary": [], "secondary": []},
		"achievements": []
	}`
	assert.Error(t, Validate(CustomizedDocument, []byte(badVersion)))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candidate.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"domains":{}}`), 0644))

	assert.NoError(t, ValidateFile(CandidateProfile, path))

	err := ValidateFile(CandidateProfile, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(`{"type":"object"}`, `{ invalid json }`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
