package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"resume-builder/internal/model"
	"resume-builder/templates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	out  []byte
	err  error
	html string
}

func (f *fakeRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	f.html = html
	return f.out, f.err
}

type blankViews struct{}

func (blankViews) Render(io.Writer, string, interface{}, ...string) error { return nil }

func newPreviewer() *Previewer {
	return NewPreviewer(templates.NewEngine(), templates.Stylesheet())
}

func TestPreviewer_RenderHTML(t *testing.T) {
	r := model.New()
	r.PersonalInfo.Name = "Ana <Souza>"
	r.Skills = []model.Skill{{ID: "s", Name: "Go", Level: model.SkillIntermediate}}

	html, err := newPreviewer().RenderHTML(BuildPreview(r, LabelsFor("en")))
	require.NoError(t, err)
	assert.Contains(t, html, "Ana &lt;Souza&gt;")
	assert.Contains(t, html, "Go</span> - Intermediate")
	assert.Contains(t, html, "No experience added.")
	assert.Contains(t, html, "210mm")
}

func TestExporter_Export(t *testing.T) {
	fr := &fakeRenderer{out: []byte("%PDF-1.7")}
	a, err := NewExporter(newPreviewer(), fr).Export(context.Background(), model.New(), "pt")
	require.NoError(t, err)
	assert.Equal(t, "curriculo.pdf", a.Name)
	assert.Equal(t, "application/pdf", a.ContentType)
	assert.Equal(t, []byte("%PDF-1.7"), a.Data)
	assert.Contains(t, fr.html, "Seu Nome")
}

func TestExporter_Errors(t *testing.T) {
	_, err := NewExporter(newPreviewer(), &fakeRenderer{}).Export(context.Background(), model.New(), "en")
	assert.ErrorIs(t, err, ErrEmptyDocument)

	cause := errors.New("chrome not found")
	_, err = NewExporter(newPreviewer(), &fakeRenderer{err: cause}).Export(context.Background(), model.New(), "en")
	assert.ErrorIs(t, err, cause)

	_, err = NewExporter(NewPreviewer(blankViews{}, nil), &fakeRenderer{out: []byte("x")}).Export(context.Background(), model.New(), "en")
	assert.ErrorIs(t, err, ErrEmptyRenderTarget)
}
