package usecase

import (
	"strings"

	"resume-builder/internal/model"
)

// Labels holds every fixed string the preview prints.
type Labels struct {
	Lang string

	NamePlaceholder    string
	SummaryPlaceholder string
	Email              string
	Phone              string
	LinkedIn           string

	EducationTitle           string
	NoEducation              string
	InstitutionPlaceholder   string
	CoursePlaceholder        string
	EducationDescPlaceholder string

	ExperienceTitle           string
	NoExperience              string
	PositionPlaceholder       string
	CompanyPlaceholder        string
	ExperienceDescPlaceholder string

	SkillsTitle      string
	NoSkills         string
	SkillPlaceholder string

	Current    string
	MissingEnd string

	Levels map[model.SkillLevel]string
}

var labelSets = map[string]Labels{
	"en": {
		Lang:                      "en",
		NamePlaceholder:           "Your Name",
		SummaryPlaceholder:        "Professional summary...",
		Email:                     "Email",
		Phone:                     "Phone",
		LinkedIn:                  "LinkedIn",
		EducationTitle:            "Education",
		NoEducation:               "No education added.",
		InstitutionPlaceholder:    "Institution",
		CoursePlaceholder:         "Course",
		EducationDescPlaceholder:  "Description...",
		ExperienceTitle:           "Professional Experience",
		NoExperience:              "No experience added.",
		PositionPlaceholder:       "Position",
		CompanyPlaceholder:        "Company",
		ExperienceDescPlaceholder: "Experience description...",
		SkillsTitle:               "Skills",
		NoSkills:                  "No skills added.",
		SkillPlaceholder:          "Skill",
		Current:                   "Current",
		MissingEnd:                "-",
		Levels: map[model.SkillLevel]string{
			model.SkillBasic:        "Basic",
			model.SkillIntermediate: "Intermediate",
			model.SkillAdvanced:     "Advanced",
		},
	},
	"pt": {
		Lang:                      "pt",
		NamePlaceholder:           "Seu Nome",
		SummaryPlaceholder:        "Resumo profissional...",
		Email:                     "Email",
		Phone:                     "Telefone",
		LinkedIn:                  "LinkedIn",
		EducationTitle:            "Formação",
		NoEducation:               "Nenhuma formação adicionada.",
		InstitutionPlaceholder:    "Instituição",
		CoursePlaceholder:         "Curso",
		EducationDescPlaceholder:  "Descrição...",
		ExperienceTitle:           "Experiências Profissionais",
		NoExperience:              "Nenhuma experiência adicionada.",
		PositionPlaceholder:       "Cargo",
		CompanyPlaceholder:        "Empresa",
		ExperienceDescPlaceholder: "Descrição da experiência...",
		SkillsTitle:               "Habilidades",
		NoSkills:                  "Nenhuma habilidade adicionada.",
		SkillPlaceholder:          "Habilidade",
		Current:                   "Atual",
		MissingEnd:                "-",
		Levels: map[model.SkillLevel]string{
			model.SkillBasic:        "Básico",
			model.SkillIntermediate: "Intermediário",
			model.SkillAdvanced:     "Avançado",
		},
	},
}

// LabelsFor returns the label set for lang, falling back to English.
func LabelsFor(lang string) Labels {
	if l, ok := labelSets[strings.ToLower(strings.TrimSpace(lang))]; ok {
		return l
	}
	return labelSets["en"]
}

// View is the fully resolved, read-only preview of a résumé. Templates only
// print its fields.
type View struct {
	Labels Labels

	Name     string
	Summary  string
	Email    string
	Phone    string
	LinkedIn string

	Education  []PeriodEntry
	Experience []PeriodEntry
	Skills     []SkillLine
}

// PeriodEntry is an education or experience block.
type PeriodEntry struct {
	Title       string
	Subtitle    string
	Period      string
	Description string
}

type SkillLine struct {
	Name  string
	Level string
}

func (v View) HasEducation() bool  { return len(v.Education) > 0 }
func (v View) HasExperience() bool { return len(v.Experience) > 0 }
func (v View) HasSkills() bool     { return len(v.Skills) > 0 }

// BuildPreview resolves placeholders and periods. It never mutates r.
func BuildPreview(r model.Resume, l Labels) View {
	p := r.PersonalInfo
	v := View{
		Labels:   l,
		Name:     orDefault(p.Name, l.NamePlaceholder),
		Summary:  orDefault(p.Summary, l.SummaryPlaceholder),
		Email:    strings.TrimSpace(p.Email),
		Phone:    strings.TrimSpace(p.Phone),
		LinkedIn: strings.TrimSpace(p.LinkedIn),
	}

	for _, e := range r.Education {
		v.Education = append(v.Education, PeriodEntry{
			Title:       orDefault(e.Institution, l.InstitutionPlaceholder),
			Subtitle:    orDefault(e.Course, l.CoursePlaceholder),
			Period:      FormatPeriod(e.StartDate, e.EndDate, e.IsCurrent, l),
			Description: orDefault(e.Description, l.EducationDescPlaceholder),
		})
	}
	for _, e := range r.Experience {
		v.Experience = append(v.Experience, PeriodEntry{
			Title:       orDefault(e.Position, l.PositionPlaceholder),
			Subtitle:    orDefault(e.Company, l.CompanyPlaceholder),
			Period:      FormatPeriod(e.StartDate, e.EndDate, e.IsCurrent, l),
			Description: orDefault(e.Description, l.ExperienceDescPlaceholder),
		})
	}
	for _, s := range r.Skills {
		level, ok := l.Levels[s.Level]
		if !ok {
			level = string(s.Level)
		}
		v.Skills = append(v.Skills, SkillLine{Name: orDefault(s.Name, l.SkillPlaceholder), Level: level})
	}
	return v
}

// FormatPeriod renders "start - Current", "start - end" or "start - -".
func FormatPeriod(start string, end *string, isCurrent bool, l Labels) string {
	tail := l.MissingEnd
	switch {
	case isCurrent:
		tail = l.Current
	case end != nil && *end != "":
		tail = *end
	}
	return start + " - " + tail
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
