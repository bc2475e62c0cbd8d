package model

import "fmt"

// Go models that match resume.schema.json, used for validation and rendering.

type SkillLevel string

const (
	SkillBasic        SkillLevel = "Basic"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
)

// ParseSkillLevel accepts the canonical names only.
func ParseSkillLevel(s string) (SkillLevel, error) {
	switch l := SkillLevel(s); l {
	case SkillBasic, SkillIntermediate, SkillAdvanced:
		return l, nil
	}
	return "", fmt.Errorf("unknown skill level %q", s)
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	Summary  string `json:"summary"`
}

// Personal info field names as they appear on the wire.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldLinkedIn = "linkedin"
	FieldSummary  = "summary"
)

// With returns a copy of p with one field replaced.
func (p PersonalInfo) With(field, value string) (PersonalInfo, error) {
	switch field {
	case FieldName:
		p.Name = value
	case FieldEmail:
		p.Email = value
	case FieldPhone:
		p.Phone = value
	case FieldLinkedIn:
		p.LinkedIn = value
	case FieldSummary:
		p.Summary = value
	default:
		return p, &FieldError{Field: field, Message: "unknown personal info field"}
	}
	return p, nil
}

type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// NewSkill returns a blank skill at the default level.
func NewSkill(id string) Skill {
	return Skill{ID: id, Level: SkillBasic}
}

func (s Skill) Key() string { return s.ID }

func (s Skill) With(field string, value any) (Skill, error) {
	switch field {
	case "name":
		v, err := stringValue(field, value)
		if err != nil {
			return s, err
		}
		s.Name = v
	case "level":
		v, err := stringValue(field, value)
		if err != nil {
			return s, err
		}
		lvl, err := ParseSkillLevel(v)
		if err != nil {
			return s, &FieldError{Field: field, Message: err.Error()}
		}
		s.Level = lvl
	default:
		return s, unknownField(field)
	}
	return s, nil
}

type Experience struct {
	ID          string  `json:"id"`
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	IsCurrent   bool    `json:"isCurrent"`
	Description string  `json:"description"`
}

func NewExperience(id string) Experience {
	return Experience{ID: id}
}

func (e Experience) Key() string { return e.ID }

func (e Experience) With(field string, value any) (Experience, error) {
	switch field {
	case "company":
		err := assignString(field, value, &e.Company)
		return e, err
	case "position":
		err := assignString(field, value, &e.Position)
		return e, err
	case "description":
		err := assignString(field, value, &e.Description)
		return e, err
	}
	ok, err := period{&e.StartDate, &e.EndDate, &e.IsCurrent}.set(field, value)
	if err != nil {
		return e, err
	}
	if !ok {
		return e, unknownField(field)
	}
	return e, nil
}

type Education struct {
	ID          string  `json:"id"`
	Institution string  `json:"institution"`
	Course      string  `json:"course"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	IsCurrent   bool    `json:"isCurrent"`
	Description string  `json:"description"`
}

func NewEducation(id string) Education {
	return Education{ID: id}
}

func (e Education) Key() string { return e.ID }

func (e Education) With(field string, value any) (Education, error) {
	switch field {
	case "institution":
		err := assignString(field, value, &e.Institution)
		return e, err
	case "course":
		err := assignString(field, value, &e.Course)
		return e, err
	case "description":
		err := assignString(field, value, &e.Description)
		return e, err
	}
	ok, err := period{&e.StartDate, &e.EndDate, &e.IsCurrent}.set(field, value)
	if err != nil {
		return e, err
	}
	if !ok {
		return e, unknownField(field)
	}
	return e, nil
}

// Resume is the whole editable state of one session.
type Resume struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Skills       []Skill      `json:"skills"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
}

// New returns an empty resume with non-nil collections.
func New() Resume {
	return Resume{Skills: []Skill{}, Experience: []Experience{}, Education: []Education{}}
}

// Clone returns a deep copy so callers never alias session state.
func (r Resume) Clone() Resume {
	out := Resume{
		PersonalInfo: r.PersonalInfo,
		Skills:       append([]Skill{}, r.Skills...),
		Experience:   make([]Experience, len(r.Experience)),
		Education:    make([]Education, len(r.Education)),
	}
	for i, e := range r.Experience {
		e.EndDate = cloneDate(e.EndDate)
		out.Experience[i] = e
	}
	for i, e := range r.Education {
		e.EndDate = cloneDate(e.EndDate)
		out.Education[i] = e
	}
	return out
}

// Normalize fills nil collections and enforces the current/end-date coupling
// on imported documents.
func (r Resume) Normalize() Resume {
	out := r.Clone()
	for i := range out.Experience {
		if out.Experience[i].IsCurrent {
			out.Experience[i].EndDate = nil
		}
	}
	for i := range out.Education {
		if out.Education[i].IsCurrent {
			out.Education[i].EndDate = nil
		}
	}
	return out
}

func cloneDate(d *string) *string {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

// period edits the date fields shared by Experience and Education.
type period struct {
	start   *string
	end     **string
	current *bool
}

func (p period) set(field string, value any) (bool, error) {
	switch field {
	case "startDate":
		v, err := stringValue(field, value)
		if err != nil {
			return true, err
		}
		*p.start = v
	case "endDate":
		switch v := value.(type) {
		case nil:
			*p.end = nil
		case string:
			if v == "" {
				*p.end = nil
			} else {
				*p.end = &v
			}
		case *string:
			*p.end = cloneDate(v)
		default:
			return true, &FieldError{Field: field, Message: fmt.Sprintf("expected string or null, got %T", value)}
		}
	case "isCurrent":
		v, ok := value.(bool)
		if !ok {
			return true, &FieldError{Field: field, Message: fmt.Sprintf("expected bool, got %T", value)}
		}
		*p.current = v
		if v {
			*p.end = nil
		}
	default:
		return false, nil
	}
	return true, nil
}

func assignString(field string, value any, dst *string) error {
	v, err := stringValue(field, value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func stringValue(field string, value any) (string, error) {
	v, ok := value.(string)
	if !ok {
		return "", &FieldError{Field: field, Message: fmt.Sprintf("expected string, got %T", value)}
	}
	return v, nil
}

func unknownField(field string) error {
	return &FieldError{Field: field, Message: "unknown field"}
}

// FieldError reports a field name or value an entity cannot accept.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Message)
}
