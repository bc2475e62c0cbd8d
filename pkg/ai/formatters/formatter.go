package formatters

import (
	"fmt"
	"strings"
)

// Formatter turns the user's draft text into a completion instruction for
// one résumé field type.
type Formatter interface {
	Prompt(text string) string
}

// languageNames maps the supported language codes to the name used inside
// instructions.
var languageNames = map[string]string{
	"en": "English",
	"pt": "Portuguese",
}

// LanguageName falls back to English for unknown codes.
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return languageNames["en"]
}

// GenericFormatter is used for field types without a dedicated formatter.
type GenericFormatter struct {
	language string
}

func NewGenericFormatter(language string) *GenericFormatter {
	return &GenericFormatter{language: language}
}

func (gf *GenericFormatter) Prompt(text string) string {
	return fmt.Sprintf("Improve this professional text, writing in %s. Return only the improved text.\n\n%s",
		LanguageName(gf.language), text)
}
