package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"resume-builder/internal/model"
)

var (
	ErrBusy               = errors.New("an improvement for this field is already running")
	ErrUnknownKind        = errors.New("unknown entity kind")
	ErrEntityNotFound     = errors.New("entity not found")
	ErrInvalidDocument    = errors.New("invalid resume document")
	ErrImproveUnavailable = errors.New("text improvement is not configured")
	ErrExportUnavailable  = errors.New("export is not configured")
)

// Kind names an entity collection.
type Kind string

const (
	KindSkills     Kind = "skills"
	KindExperience Kind = "experience"
	KindEducation  Kind = "education"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindSkills, KindExperience, KindEducation:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// TextImprover is the gateway the editor improves fields through.
type TextImprover interface {
	Improve(ctx context.Context, text, fieldType string) (string, error)
}

// Target selects the field an improvement writes back to: the personal
// summary, or the description of one experience or education entry.
type Target struct {
	Kind string `json:"target" validate:"required,oneof=summary experience education"`
	ID   string `json:"id,omitempty" validate:"required_unless=Kind summary"`
}

// TargetSummary is the Kind of the personal summary target.
const TargetSummary = "summary"

func (t Target) key() string {
	if t.Kind == TargetSummary {
		return TargetSummary
	}
	return t.Kind + ":" + t.ID
}

// Editor owns one résumé. Every method is safe for concurrent use and every
// mutation replaces whole collections, so snapshots handed out earlier never
// change.
type Editor struct {
	mu       sync.Mutex
	resume   model.Resume
	busy     map[string]bool
	improver TextImprover
	exporter *Exporter
}

func NewEditor(improver TextImprover, exporter *Exporter) *Editor {
	return &Editor{
		resume:   model.New(),
		busy:     map[string]bool{},
		improver: improver,
		exporter: exporter,
	}
}

// Snapshot returns a deep copy of the current résumé.
func (e *Editor) Snapshot() model.Resume {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resume.Clone()
}

// Replace imports a whole résumé. Ids must be present and unique per list.
func (e *Editor) Replace(r model.Resume) (model.Resume, error) {
	r = r.Normalize()
	for _, err := range []error{
		model.CheckIDs(string(KindSkills), r.Skills),
		model.CheckIDs(string(KindExperience), r.Experience),
		model.CheckIDs(string(KindEducation), r.Education),
	} {
		if err != nil {
			return model.Resume{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}
	for _, s := range r.Skills {
		if _, err := model.ParseSkillLevel(string(s.Level)); err != nil {
			return model.Resume{}, fmt.Errorf("%w: skill %s: %v", ErrInvalidDocument, s.ID, err)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.resume = r.Clone()
	return e.resume.Clone(), nil
}

// SetPersonal updates one personal field and returns the new record with its
// current field errors. The value is stored even when it fails validation.
func (e *Editor) SetPersonal(field, value string) (model.PersonalInfo, map[string]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, err := e.resume.PersonalInfo.With(field, value)
	if err != nil {
		return e.resume.PersonalInfo, nil, err
	}
	e.resume.PersonalInfo = p
	return p, model.ValidatePersonalInfo(p), nil
}

// ResetPersonal clears every personal field.
func (e *Editor) ResetPersonal() model.PersonalInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resume.PersonalInfo = model.PersonalInfo{}
	return e.resume.PersonalInfo
}

func (e *Editor) AddSkill() model.Skill {
	e.mu.Lock()
	defer e.mu.Unlock()
	var s model.Skill
	e.resume.Skills, s = model.Add(e.resume.Skills, model.NewSkill)
	return s
}

func (e *Editor) AddExperience() model.Experience {
	e.mu.Lock()
	defer e.mu.Unlock()
	var x model.Experience
	e.resume.Experience, x = model.Add(e.resume.Experience, model.NewExperience)
	return x
}

func (e *Editor) AddEducation() model.Education {
	e.mu.Lock()
	defer e.mu.Unlock()
	var d model.Education
	e.resume.Education, d = model.Add(e.resume.Education, model.NewEducation)
	return d
}

// Add appends a blank entity of the given kind.
func (e *Editor) Add(kind Kind) (interface{}, error) {
	switch kind {
	case KindSkills:
		return e.AddSkill(), nil
	case KindExperience:
		return e.AddExperience(), nil
	case KindEducation:
		return e.AddEducation(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Update sets one field of one entity and returns the new list. An unknown
// id leaves the list as it was.
func (e *Editor) Update(kind Kind, id, field string, value any) (interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var err error
	switch kind {
	case KindSkills:
		var out []model.Skill
		if out, err = model.Update(e.resume.Skills, id, field, value); err == nil {
			e.resume.Skills = out
		}
	case KindExperience:
		var out []model.Experience
		if out, err = model.Update(e.resume.Experience, id, field, value); err == nil {
			e.resume.Experience = out
		}
	case KindEducation:
		var out []model.Education
		if out, err = model.Update(e.resume.Education, id, field, value); err == nil {
			e.resume.Education = out
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, err
	}
	return e.listLocked(kind), nil
}

// Remove drops one entity. Removing an absent id is not an error.
func (e *Editor) Remove(kind Kind, id string) (interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch kind {
	case KindSkills:
		e.resume.Skills = model.Remove(e.resume.Skills, id)
	case KindExperience:
		e.resume.Experience = model.Remove(e.resume.Experience, id)
	case KindEducation:
		e.resume.Education = model.Remove(e.resume.Education, id)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return e.listLocked(kind), nil
}

func (e *Editor) listLocked(kind Kind) interface{} {
	c := e.resume.Clone()
	switch kind {
	case KindSkills:
		return c.Skills
	case KindExperience:
		return c.Experience
	default:
		return c.Education
	}
}

func (e *Editor) Validate() model.Report {
	return model.ValidateResume(e.Snapshot())
}

// Busy reports whether an improvement for t is in flight.
func (e *Editor) Busy(t Target) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy[t.key()]
}

// Improve sends the target's current text through the improver and writes
// the result back. A second call for the same target while one is running
// fails with ErrBusy. On error the field keeps its value; if the entity was
// removed meanwhile the result is dropped.
func (e *Editor) Improve(ctx context.Context, t Target) (model.Resume, error) {
	if e.improver == nil {
		return model.Resume{}, ErrImproveUnavailable
	}

	e.mu.Lock()
	text, err := e.textLocked(t)
	if err != nil {
		e.mu.Unlock()
		return model.Resume{}, err
	}
	key := t.key()
	if e.busy[key] {
		e.mu.Unlock()
		return model.Resume{}, ErrBusy
	}
	e.busy[key] = true
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		delete(e.busy, key)
		e.mu.Unlock()
	}()

	improved, err := e.improver.Improve(ctx, text, t.Kind)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		return e.resume.Clone(), err
	}
	e.writeBackLocked(t, improved)
	return e.resume.Clone(), nil
}

func (e *Editor) textLocked(t Target) (string, error) {
	switch t.Kind {
	case TargetSummary:
		return e.resume.PersonalInfo.Summary, nil
	case string(KindExperience):
		if x, ok := model.Find(e.resume.Experience, t.ID); ok {
			return x.Description, nil
		}
	case string(KindEducation):
		if d, ok := model.Find(e.resume.Education, t.ID); ok {
			return d.Description, nil
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, t.Kind)
	}
	return "", fmt.Errorf("%w: %s %s", ErrEntityNotFound, t.Kind, t.ID)
}

func (e *Editor) writeBackLocked(t Target, text string) {
	switch t.Kind {
	case TargetSummary:
		e.resume.PersonalInfo.Summary = text
	case string(KindExperience):
		if out, err := model.Update(e.resume.Experience, t.ID, "description", text); err == nil {
			e.resume.Experience = out
		}
	case string(KindEducation):
		if out, err := model.Update(e.resume.Education, t.ID, "description", text); err == nil {
			e.resume.Education = out
		}
	}
}

// Preview resolves the current résumé for display.
func (e *Editor) Preview(lang string) View {
	return BuildPreview(e.Snapshot(), LabelsFor(lang))
}

func (e *Editor) Export(ctx context.Context, lang string) (Artifact, error) {
	if e.exporter == nil {
		return Artifact{}, ErrExportUnavailable
	}
	return e.exporter.Export(ctx, e.Snapshot(), lang)
}
