package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"resume-builder/internal/model"
)

// ArtifactName is the fixed download name of an export.
const ArtifactName = "curriculo.pdf"

var (
	ErrEmptyRenderTarget = errors.New("export: preview rendered no content")
	ErrEmptyDocument     = errors.New("export: renderer produced an empty document")
)

// Renderer prints an HTML page to PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Views is satisfied by the fiber html engine.
type Views interface {
	Render(out io.Writer, name string, binding interface{}, layout ...string) error
}

// PreviewPage is the view name the preview is rendered with.
const PreviewPage = "preview"

// Previewer renders a View through the shared views engine.
type Previewer struct {
	views      Views
	stylesheet template.CSS
}

func NewPreviewer(views Views, stylesheet []byte) *Previewer {
	return &Previewer{views: views, stylesheet: template.CSS(stylesheet)}
}

// Binding is the data passed to the preview page.
func (p *Previewer) Binding(v View) map[string]interface{} {
	return map[string]interface{}{
		"View":       v,
		"Stylesheet": p.stylesheet,
	}
}

func (p *Previewer) RenderHTML(v View) (string, error) {
	var buf bytes.Buffer
	if err := p.views.Render(&buf, PreviewPage, p.Binding(v)); err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return buf.String(), nil
}

// Artifact is an exported document ready for download.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// Exporter turns a résumé into a PDF artifact.
type Exporter struct {
	previewer *Previewer
	renderer  Renderer
}

func NewExporter(p *Previewer, r Renderer) *Exporter {
	return &Exporter{previewer: p, renderer: r}
}

func (e *Exporter) Export(ctx context.Context, r model.Resume, lang string) (Artifact, error) {
	html, err := e.previewer.RenderHTML(BuildPreview(r, LabelsFor(lang)))
	if err != nil {
		return Artifact{}, err
	}
	if strings.TrimSpace(html) == "" {
		return Artifact{}, ErrEmptyRenderTarget
	}

	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return Artifact{}, fmt.Errorf("export: %w", err)
	}
	if len(pdf) == 0 {
		return Artifact{}, ErrEmptyDocument
	}
	return Artifact{Name: ArtifactName, ContentType: "application/pdf", Data: pdf}, nil
}
