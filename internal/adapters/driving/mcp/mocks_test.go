package mcp

import (
	"context"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
)

type mockSearchService struct {
	results  []domain.SearchResult
	err      error
	lastOpts domain.SearchOptions
	queries  []string
}

func (m *mockSearchService) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	m.queries = append(m.queries, query)
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

type mockAskService struct {
	answer    string
	err       error
	questions []string
}

func (m *mockAskService) Ask(_ context.Context, question string) (string, error) {
	m.questions = append(m.questions, question)
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

type mockRegistryService struct {
	records []domain.CollectionRecord
	err     error
}

func (m *mockRegistryService) Collections(_ context.Context) ([]domain.CollectionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}
