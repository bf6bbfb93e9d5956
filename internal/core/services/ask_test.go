package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
)

// mockSearcher implements driving.SearchService for ask tests.
type mockSearcher struct {
	results   []domain.SearchResult
	searchErr error
	lastQuery string
	lastTopK  int
}

func (m *mockSearcher) Search(
	_ context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.lastQuery = query
	m.lastTopK = opts.TopK
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.results, nil
}

func TestAsk_EmptyQuestion(t *testing.T) {
	llm := &mockGeneration{}
	svc := NewAskService(&mockSearcher{}, llm, 0)

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := svc.Ask(context.Background(), q)
		assert.ErrorIs(t, err, domain.ErrEmptyQuestion, "question %q", q)
	}
	assert.Zero(t, llm.calls)
}

func TestAsk_NoResultsReturnsFallback(t *testing.T) {
	llm := &mockGeneration{answer: "should not be used"}
	svc := NewAskService(&mockSearcher{}, llm, 0)

	answer, err := svc.Ask(context.Background(), "what is entropy?")
	require.NoError(t, err)

	assert.Equal(t, NoInformationMessage, answer)
	assert.Zero(t, llm.calls, "no generation call when nothing was retrieved")
}

func TestAsk_ComposesLabeledContext(t *testing.T) {
	searcher := &mockSearcher{results: []domain.SearchResult{
		{Document: "entropy always increases", Source: "physics", Distance: 0.1},
		{Document: "heat flows from hot to cold", Source: "thermo", Distance: 0.2},
	}}
	llm := &mockGeneration{answer: "the answer"}
	svc := NewAskService(searcher, llm, 0)

	answer, err := svc.Ask(context.Background(), "what is entropy?")
	require.NoError(t, err)
	assert.Equal(t, "the answer", answer)

	assert.Equal(t, 1, llm.calls)
	assert.Equal(t, "what is entropy?", searcher.lastQuery)
	assert.Equal(t, domain.DefaultTopK, searcher.lastTopK)

	// Passages appear as labeled blocks, blank-line separated, in the
	// order search returned them.
	assert.Contains(t, llm.lastUser, "Source 1 (physics): entropy always increases\n\nSource 2 (thermo): heat flows from hot to cold")
	assert.Contains(t, llm.lastUser, "Question: what is entropy?")
	assert.NotEmpty(t, llm.lastSystem)
}

func TestAsk_QuestionTrimmed(t *testing.T) {
	searcher := &mockSearcher{results: []domain.SearchResult{
		{Document: "text", Source: "a"},
	}}
	svc := NewAskService(searcher, &mockGeneration{answer: "ok"}, 5)

	_, err := svc.Ask(context.Background(), "  why?  ")
	require.NoError(t, err)
	assert.Equal(t, "why?", searcher.lastQuery)
	assert.Equal(t, 5, searcher.lastTopK)
}

func TestAsk_GenerationFailure(t *testing.T) {
	searcher := &mockSearcher{results: []domain.SearchResult{
		{Document: "text", Source: "a"},
	}}
	llm := &mockGeneration{generateErr: errors.New("upstream 500")}
	svc := NewAskService(searcher, llm, 0)

	_, err := svc.Ask(context.Background(), "question?")
	require.ErrorIs(t, err, domain.ErrGeneration)

	// No retry: exactly one generation attempt.
	assert.Equal(t, 1, llm.calls)
}

func TestAsk_SearchFailurePropagates(t *testing.T) {
	searcher := &mockSearcher{searchErr: errors.New("registry unreadable")}
	llm := &mockGeneration{}
	svc := NewAskService(searcher, llm, 0)

	_, err := svc.Ask(context.Background(), "question?")
	require.Error(t, err)
	assert.Zero(t, llm.calls)
}

func TestAsk_AnswerReturnedVerbatim(t *testing.T) {
	searcher := &mockSearcher{results: []domain.SearchResult{
		{Document: "text", Source: "a"},
	}}
	llm := &mockGeneration{answer: "  raw output\nwith whitespace  "}
	svc := NewAskService(searcher, llm, 0)

	answer, err := svc.Ask(context.Background(), "question?")
	require.NoError(t, err)
	assert.Equal(t, "  raw output\nwith whitespace  ", answer)
}
