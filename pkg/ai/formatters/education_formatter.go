package formatters

import "fmt"

type EducationFormatter struct {
	language string
}

func NewEducationFormatter(language string) *EducationFormatter {
	return &EducationFormatter{language: language}
}

func (ef *EducationFormatter) Prompt(text string) string {
	return fmt.Sprintf(`Improve this description of an education entry, writing in %s.
Highlight relevant coursework, projects and honours in two or three short sentences.
Return only the improved description.

%s`, LanguageName(ef.language), text)
}
