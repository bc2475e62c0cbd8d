package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedImprover blocks until release is closed so tests can observe an
// in-flight improvement.
type gatedImprover struct {
	started chan string
	release chan struct{}
	out     string
	err     error
}

func newGatedImprover(out string, err error) *gatedImprover {
	return &gatedImprover{started: make(chan string, 4), release: make(chan struct{}), out: out, err: err}
}

func (g *gatedImprover) Improve(ctx context.Context, text, fieldType string) (string, error) {
	g.started <- text
	select {
	case <-g.release:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return g.out, g.err
}

type instantImprover struct {
	out string
	err error
}

func (i instantImprover) Improve(context.Context, string, string) (string, error) { return i.out, i.err }

func TestEditor_PersonalInfo(t *testing.T) {
	ed := NewEditor(nil, nil)
	p, errs, err := ed.SetPersonal(model.FieldEmail, "not-an-email")
	require.NoError(t, err)
	assert.Equal(t, "not-an-email", p.Email)
	assert.Equal(t, "invalid email", errs[model.FieldEmail])
	assert.Equal(t, "name is required", errs[model.FieldName])

	_, _, err = ed.SetPersonal("age", "30")
	var fe *model.FieldError
	assert.ErrorAs(t, err, &fe)

	assert.Equal(t, model.PersonalInfo{}, ed.ResetPersonal())
	assert.Equal(t, model.PersonalInfo{}, ed.Snapshot().PersonalInfo)
}

func TestEditor_ListLifecycle(t *testing.T) {
	ed := NewEditor(nil, nil)
	x := ed.AddExperience()
	_ = ed.AddSkill()
	_ = ed.AddEducation()

	before := ed.Snapshot()
	list, err := ed.Update(KindExperience, x.ID, "company", "Acme")
	require.NoError(t, err)
	exps := list.([]model.Experience)
	assert.Equal(t, "Acme", exps[0].Company)
	assert.Empty(t, before.Experience[0].Company, "earlier snapshot must not change")

	_, err = ed.Update(KindExperience, x.ID, "isCurrent", "yes")
	assert.Error(t, err)

	list, err = ed.Remove(KindExperience, x.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
	_, err = ed.Remove(KindExperience, x.ID)
	assert.NoError(t, err)

	_, err = ed.Add(Kind("hobbies"))
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = ParseKind("projects")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestEditor_Replace(t *testing.T) {
	ed := NewEditor(nil, nil)
	r := model.Resume{
		PersonalInfo: model.PersonalInfo{Name: "Ana"},
		Experience:   []model.Experience{{ID: "a", IsCurrent: true, EndDate: strPtr("2020-01-01")}},
	}
	got, err := ed.Replace(r)
	require.NoError(t, err)
	assert.Nil(t, got.Experience[0].EndDate)
	assert.NotNil(t, got.Skills)

	_, err = ed.Replace(model.Resume{Skills: []model.Skill{{ID: "s", Level: model.SkillBasic}, {ID: "s", Level: model.SkillBasic}}})
	assert.ErrorIs(t, err, ErrInvalidDocument)
	_, err = ed.Replace(model.Resume{Skills: []model.Skill{{ID: "s", Level: "Expert"}}})
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.Equal(t, "Ana", ed.Snapshot().PersonalInfo.Name)
}

func TestEditor_Validate(t *testing.T) {
	ed := NewEditor(nil, nil)
	x := ed.AddExperience()
	rep := ed.Validate()
	assert.False(t, rep.Valid())
	assert.Equal(t, model.ErrStartDateRequired, rep.Experience[x.ID])
}

func TestEditor_ImproveSummary(t *testing.T) {
	ed := NewEditor(instantImprover{out: "Better summary."}, nil)
	_, _, err := ed.SetPersonal(model.FieldSummary, "rough summary")
	require.NoError(t, err)

	r, err := ed.Improve(context.Background(), Target{Kind: TargetSummary})
	require.NoError(t, err)
	assert.Equal(t, "Better summary.", r.PersonalInfo.Summary)
}

func TestEditor_ImproveFailureKeepsValue(t *testing.T) {
	ed := NewEditor(instantImprover{err: errors.New("rate limited")}, nil)
	x := ed.AddExperience()
	_, err := ed.Update(KindExperience, x.ID, "description", "did stuff")
	require.NoError(t, err)

	_, err = ed.Improve(context.Background(), Target{Kind: string(KindExperience), ID: x.ID})
	assert.EqualError(t, err, "rate limited")
	assert.Equal(t, "did stuff", ed.Snapshot().Experience[0].Description)
	assert.False(t, ed.Busy(Target{Kind: string(KindExperience), ID: x.ID}))
}

func TestEditor_ImproveUnknownEntity(t *testing.T) {
	ed := NewEditor(instantImprover{out: "x"}, nil)
	_, err := ed.Improve(context.Background(), Target{Kind: string(KindEducation), ID: "nope"})
	assert.ErrorIs(t, err, ErrEntityNotFound)

	_, err = NewEditor(nil, nil).Improve(context.Background(), Target{Kind: TargetSummary})
	assert.ErrorIs(t, err, ErrImproveUnavailable)
}

func TestEditor_ImproveBusyPerTarget(t *testing.T) {
	g := newGatedImprover("Improved.", nil)
	ed := NewEditor(g, nil)
	a := ed.AddExperience()
	b := ed.AddExperience()
	ta := Target{Kind: string(KindExperience), ID: a.ID}
	tb := Target{Kind: string(KindExperience), ID: b.ID}

	done := make(chan error, 1)
	go func() {
		_, err := ed.Improve(context.Background(), ta)
		done <- err
	}()
	<-g.started

	assert.True(t, ed.Busy(ta))
	_, err := ed.Improve(context.Background(), ta)
	assert.ErrorIs(t, err, ErrBusy)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ed.Improve(ctx, tb)
	assert.ErrorIs(t, err, context.Canceled, "other targets are not blocked")

	close(g.release)
	require.NoError(t, <-done)
	assert.False(t, ed.Busy(ta))
	assert.Equal(t, "Improved.", ed.Snapshot().Experience[0].Description)
}

func TestEditor_ImproveDiscardedWhenEntityRemoved(t *testing.T) {
	g := newGatedImprover("Improved.", nil)
	ed := NewEditor(g, nil)
	d := ed.AddEducation()

	done := make(chan error, 1)
	go func() {
		_, err := ed.Improve(context.Background(), Target{Kind: string(KindEducation), ID: d.ID})
		done <- err
	}()
	<-g.started
	_, err := ed.Remove(KindEducation, d.ID)
	require.NoError(t, err)
	close(g.release)

	require.NoError(t, <-done)
	assert.Empty(t, ed.Snapshot().Education)
}

func TestEditor_Export(t *testing.T) {
	_, err := NewEditor(nil, nil).Export(context.Background(), "en")
	assert.ErrorIs(t, err, ErrExportUnavailable)

	fr := &fakeRenderer{out: []byte("%PDF")}
	ed := NewEditor(nil, NewExporter(newPreviewer(), fr))
	_, _, err = ed.SetPersonal(model.FieldName, "Ana")
	require.NoError(t, err)
	a, err := ed.Export(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, ArtifactName, a.Name)
	assert.Contains(t, fr.html, "Ana")
	assert.Equal(t, "Ana", ed.Preview("en").Name)
}

type panickingImprover struct{}

func (panickingImprover) Improve(context.Context, string, string) (string, error) {
	panic("provider blew up")
}

func TestEditor_ImprovePanicReleasesBusy(t *testing.T) {
	ed := NewEditor(panickingImprover{}, nil)
	target := Target{Kind: TargetSummary}

	assert.Panics(t, func() { _, _ = ed.Improve(context.Background(), target) })
	assert.False(t, ed.Busy(target))

	ed.improver = instantImprover{out: "Recovered."}
	r, err := ed.Improve(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, "Recovered.", r.PersonalInfo.Summary)
}
