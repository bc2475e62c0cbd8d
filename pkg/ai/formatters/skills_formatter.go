package formatters

import "fmt"

type SkillsFormatter struct {
	language string
}

func NewSkillsFormatter(language string) *SkillsFormatter {
	return &SkillsFormatter{language: language}
}

// Prompt keeps the answer a plain comma-separated list so it can be written
// back into a skill name without post-processing.
func (sf *SkillsFormatter) Prompt(text string) string {
	return fmt.Sprintf(`Rewrite these skills using the standard industry names, writing in %s.
Return only a comma-separated list with no explanation.

%s`, LanguageName(sf.language), text)
}
