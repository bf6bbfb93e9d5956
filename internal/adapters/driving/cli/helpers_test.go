package cli

import (
	"bytes"
	"context"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
)

// executeCommand runs the root command with the given args and captures
// combined output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// setupTestServices swaps the package-level services for the given mocks
// and returns a restore function for defer.
func setupTestServices(ingest *mockIngestService, search *mockSearchService, registry *mockRegistryService, ask *mockAskService) func() {
	prevIngest := ingestService
	prevSearch := searchService
	prevRegistry := registryService
	prevAsk := askService

	// A nil *mock assigned directly would produce a non-nil interface,
	// defeating the not-configured guards under test.
	ingestService, searchService, registryService, askService = nil, nil, nil, nil
	if ingest != nil {
		ingestService = ingest
	}
	if search != nil {
		searchService = search
	}
	if registry != nil {
		registryService = registry
	}
	if ask != nil {
		askService = ask
	}

	return func() {
		ingestService = prevIngest
		searchService = prevSearch
		registryService = prevRegistry
		askService = prevAsk
	}
}

type mockIngestService struct {
	ingestFileFunc      func(ctx context.Context, path string) (string, error)
	ingestDirectoryFunc func(ctx context.Context, root string) ([]string, error)
}

func (m *mockIngestService) IngestFile(ctx context.Context, path string) (string, error) {
	if m.ingestFileFunc != nil {
		return m.ingestFileFunc(ctx, path)
	}
	return "", nil
}

func (m *mockIngestService) IngestDirectory(ctx context.Context, root string) ([]string, error) {
	if m.ingestDirectoryFunc != nil {
		return m.ingestDirectoryFunc(ctx, root)
	}
	return nil, nil
}

type mockSearchService struct {
	searchFunc func(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}

func (m *mockSearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, opts)
	}
	return nil, nil
}

type mockRegistryService struct {
	collectionsFunc func(ctx context.Context) ([]domain.CollectionRecord, error)
}

func (m *mockRegistryService) Collections(ctx context.Context) ([]domain.CollectionRecord, error) {
	if m.collectionsFunc != nil {
		return m.collectionsFunc(ctx)
	}
	return nil, nil
}

type mockAskService struct {
	askFunc func(ctx context.Context, question string) (string, error)
}

func (m *mockAskService) Ask(ctx context.Context, question string) (string, error) {
	if m.askFunc != nil {
		return m.askFunc(ctx, question)
	}
	return "", nil
}
