package formatters

import "fmt"

// SummaryMaxChars mirrors the summary length rule of the personal info form.
const SummaryMaxChars = 500

type SummaryFormatter struct {
	language string
}

func NewSummaryFormatter(language string) *SummaryFormatter {
	return &SummaryFormatter{language: language}
}

func (sf *SummaryFormatter) Prompt(text string) string {
	return fmt.Sprintf(`Improve this professional summary, writing in %s.
Make it concise (at most %d characters), impactful and optimized for applicant tracking systems.
Focus on achievements and include relevant keywords. Return only the improved summary, with no preamble.

%s`, LanguageName(sf.language), SummaryMaxChars, text)
}
