package formatters

import "fmt"

type ExperienceFormatter struct {
	language string
}

func NewExperienceFormatter(language string) *ExperienceFormatter {
	return &ExperienceFormatter{language: language}
}

func (ef *ExperienceFormatter) Prompt(text string) string {
	return fmt.Sprintf(`Improve this description of a professional experience, writing in %s.
Start sentences with action verbs and quantify results where the text allows it.
Keep it professional and brief. Do not invent employers, dates or numbers.
Return only the improved description.

%s`, LanguageName(ef.language), text)
}
