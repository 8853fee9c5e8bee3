package selection

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentVersion(t *testing.T) {
	day := time.Date(2025, 3, 1, 15, 4, 5, 0, time.UTC)

	v := DocumentVersion("Senior SEO Manager", "Brightline", day)
	assert.Regexp(t, regexp.MustCompile(`^20250301-[0-9a-f]{8}$`), v)

	sameDay := DocumentVersion("Senior SEO Manager", "Brightline", day.Add(3*time.Hour))
	assert.Equal(t, v, sameDay)

	otherCompany := DocumentVersion("Senior SEO Manager", "Other", day)
	assert.NotEqual(t, v, otherCompany)

	nextDay := DocumentVersion("Senior SEO Manager", "Brightline", day.AddDate(0, 0, 1))
	assert.Regexp(t, `^20250302-`, nextDay)
}
