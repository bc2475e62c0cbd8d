package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Portuguese", LanguageName("PT"))
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "English", LanguageName("xx"))
	assert.Equal(t, "English", LanguageName(""))
}

func TestFormattersEmbedTextAndLanguage(t *testing.T) {
	tests := []struct {
		name      string
		formatter Formatter
		mustHave  []string
	}{
		{"summary", NewSummaryFormatter("pt"), []string{"professional summary", "500 characters", "Portuguese"}},
		{"experience", NewExperienceFormatter("en"), []string{"action verbs", "quantify"}},
		{"education", NewEducationFormatter("en"), []string{"education entry"}},
		{"skills", NewSkillsFormatter("en"), []string{"comma-separated"}},
		{"generic", NewGenericFormatter("en"), []string{"professional text"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.formatter.Prompt("Led the payments team")
			assert.Contains(t, p, "Led the payments team")
			for _, s := range tt.mustHave {
				assert.Contains(t, p, s)
			}
		})
	}
}
