package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"resume-builder/internal/domain"
	ai "resume-builder/pkg/ai"
	"resume-builder/pkg/ai/completion"

	"github.com/google/uuid"
)

// ImprovementsRepo records improvement calls. Save failures never fail the
// call itself.
type ImprovementsRepo interface {
	Save(ctx context.Context, rec *domain.ImprovementRecord) error
}

// Improver is the server side of the text-improvement gateway.
type Improver struct {
	completer completion.Completer
	repo      ImprovementsRepo
	provider  string
	language  string
	timeout   time.Duration
	now       func() time.Time
}

func NewImprover(c completion.Completer, repo ImprovementsRepo, provider, language string, timeout time.Duration) *Improver {
	if timeout <= 0 {
		timeout = ai.DefaultTimeout
	}
	return &Improver{completer: c, repo: repo, provider: provider, language: language, timeout: timeout, now: time.Now}
}

// Improve returns the improved text for a field. Blank text and unknown field
// types fail with *ai.ValidationError before the provider is called.
func (i *Improver) Improve(ctx context.Context, text, fieldType string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &ai.ValidationError{Field: "text", Message: "text required"}
	}
	ft, err := ai.ParseFieldType(fieldType)
	if err != nil {
		return "", err
	}

	started := i.now()
	rec := &domain.ImprovementRecord{
		ID:         uuid.New(),
		FieldType:  string(ft),
		Provider:   i.provider,
		InputChars: utf8.RuneCountInString(text),
		CreatedAt:  started,
	}

	cctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	out, err := i.completer.Complete(cctx, ai.BuildPrompt(text, ft, i.language))
	out = strings.TrimSpace(out)
	if err == nil && out == "" {
		err = ai.ErrNoUsableText
	}

	rec.Duration = i.now().Sub(started)
	switch {
	case err == nil:
		rec.Status = domain.StatusSucceeded
		rec.OutputChars = utf8.RuneCountInString(out)
	case errors.Is(err, completion.ErrMissingAPIKey):
		rec.Status = domain.StatusRejected
		rec.Error = err.Error()
	default:
		rec.Status = domain.StatusFailed
		rec.Error = err.Error()
	}
	i.record(rec)

	if err != nil {
		slog.Warn("Text improvement failed", "field_type", ft, "provider", i.provider, "error", err)
		return "", err
	}
	slog.Info("Text improved", "field_type", ft, "input_chars", rec.InputChars, "output_chars", rec.OutputChars, "duration", rec.Duration)
	return out, nil
}

func (i *Improver) record(rec *domain.ImprovementRecord) {
	if i.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := i.repo.Save(ctx, rec); err != nil {
		slog.Warn("Failed to record improvement", "id", rec.ID, "error", err)
	}
}
