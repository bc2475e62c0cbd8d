package ai

import (
	"fmt"

	"resume-builder/pkg/ai/formatters"
)

// FieldType tags the résumé field a text belongs to.
type FieldType string

const (
	FieldSummary    FieldType = "summary"
	FieldExperience FieldType = "experience"
	FieldEducation  FieldType = "education"
	FieldSkills     FieldType = "skills"
)

// ParseFieldType accepts the four known tags. The empty string is allowed and
// selects the generic instruction.
func ParseFieldType(s string) (FieldType, error) {
	switch f := FieldType(s); f {
	case FieldSummary, FieldExperience, FieldEducation, FieldSkills, "":
		return f, nil
	}
	return "", &ValidationError{Field: "fieldType", Message: fmt.Sprintf("unknown field type %q", s)}
}

// Formatter returns the prompt formatter for the field type.
func (f FieldType) Formatter(language string) formatters.Formatter {
	switch f {
	case FieldSummary:
		return formatters.NewSummaryFormatter(language)
	case FieldExperience:
		return formatters.NewExperienceFormatter(language)
	case FieldEducation:
		return formatters.NewEducationFormatter(language)
	case FieldSkills:
		return formatters.NewSkillsFormatter(language)
	default:
		return formatters.NewGenericFormatter(language)
	}
}

// BuildPrompt is a shortcut for f.Formatter(language).Prompt(text).
func BuildPrompt(text string, f FieldType, language string) string {
	return f.Formatter(language).Prompt(text)
}
