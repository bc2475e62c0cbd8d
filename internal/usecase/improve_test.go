package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"resume-builder/internal/domain"
	ai "resume-builder/pkg/ai"
	"resume-builder/pkg/ai/completion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	mu      sync.Mutex
	out     string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.out, f.err
}

type memRepo struct {
	mu      sync.Mutex
	records []domain.ImprovementRecord
	err     error
}

func (m *memRepo) Save(_ context.Context, rec *domain.ImprovementRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, *rec)
	return m.err
}

func TestImprover_Success(t *testing.T) {
	fc := &fakeCompleter{out: "  Seasoned engineer.  "}
	repo := &memRepo{}
	got, err := NewImprover(fc, repo, "openai", "en", time.Second).Improve(context.Background(), "i code", "summary")
	require.NoError(t, err)
	assert.Equal(t, "Seasoned engineer.", got)

	require.Len(t, fc.prompts, 1)
	assert.Contains(t, fc.prompts[0], "i code")
	assert.Contains(t, fc.prompts[0], "500")

	require.Len(t, repo.records, 1)
	rec := repo.records[0]
	assert.Equal(t, domain.StatusSucceeded, rec.Status)
	assert.Equal(t, "summary", rec.FieldType)
	assert.Equal(t, 6, rec.InputChars)
	assert.Equal(t, 18, rec.OutputChars)
}

func TestImprover_RejectsBeforeCalling(t *testing.T) {
	fc := &fakeCompleter{out: "x"}
	imp := NewImprover(fc, nil, "openai", "en", time.Second)

	_, err := imp.Improve(context.Background(), "   ", "summary")
	var ve *ai.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "text required", ve.Message)

	_, err = imp.Improve(context.Background(), "text", "hobbies")
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, fc.prompts)
}

func TestImprover_Failures(t *testing.T) {
	repo := &memRepo{}
	upstream := &completion.UpstreamError{Provider: "openai", StatusCode: 429, Message: "rate limited"}

	_, err := NewImprover(&fakeCompleter{err: upstream}, repo, "openai", "en", time.Second).Improve(context.Background(), "x", "experience")
	assert.EqualError(t, err, "rate limited")

	_, err = NewImprover(&fakeCompleter{out: "  "}, repo, "openai", "en", time.Second).Improve(context.Background(), "x", "")
	assert.ErrorIs(t, err, ai.ErrNoUsableText)

	_, err = NewImprover(&fakeCompleter{err: completion.ErrMissingAPIKey}, repo, "openai", "en", time.Second).Improve(context.Background(), "x", "skills")
	assert.ErrorIs(t, err, completion.ErrMissingAPIKey)

	require.Len(t, repo.records, 3)
	assert.Equal(t, domain.StatusFailed, repo.records[0].Status)
	assert.Equal(t, "rate limited", repo.records[0].Error)
	assert.Equal(t, domain.StatusFailed, repo.records[1].Status)
	assert.Equal(t, domain.StatusRejected, repo.records[2].Status)
}

func TestImprover_RepoFailureIsIgnored(t *testing.T) {
	repo := &memRepo{err: errors.New("db down")}
	got, err := NewImprover(&fakeCompleter{out: "ok"}, repo, "gemini", "pt", time.Second).Improve(context.Background(), "x", "education")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}
