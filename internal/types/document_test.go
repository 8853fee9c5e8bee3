package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillSet_All(t *testing.T) {
	set := SkillSet{Primary: []string{"SEO", "Keyword Research"}, Secondary: []string{"HTML"}}
	assert.Equal(t, []string{"SEO", "Keyword Research", "HTML"}, set.All())
	assert.Empty(t, SkillSet{}.All())
}

func TestCustomizedDocument_RenderText(t *testing.T) {
	doc := &CustomizedDocument{
		Summary:      "SEO lead.",
		Skills:       SkillSet{Primary: []string{"SEO"}, Secondary: []string{"HTML", "CSS"}},
		Achievements: []string{"Grew organic traffic 120%"},
		Credentials:  []string{"Google Analytics IQ"},
	}

	text := doc.RenderText()
	assert.Contains(t, text, "SEO lead.")
	assert.Contains(t, text, "Core skills: SEO")
	assert.Contains(t, text, "Additional skills: HTML, CSS")
	assert.Contains(t, text, "- Grew organic traffic 120%")
	assert.Contains(t, text, "Google Analytics IQ")
}

func TestCustomizedDocument_ValidateShape(t *testing.T) {
	valid := &CustomizedDocument{SchemaVersion: SchemaVersion, TemplateKind: TemplateHybrid}
	assert.NoError(t, valid.ValidateShape())

	unknownKind := &CustomizedDocument{SchemaVersion: SchemaVersion, TemplateKind: "general"}
	assert.Error(t, unknownKind.ValidateShape())

	tooManySkills := &CustomizedDocument{
		SchemaVersion: SchemaVersion,
		TemplateKind:  CategorySEO,
		Skills:        SkillSet{Primary: make([]string, 9)},
	}
	assert.Error(t, tooManySkills.ValidateShape())
}
