package services

import (
	"context"
	"fmt"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driven"
)

// --- Mock implementations of the driven ports ---

// mockParser implements driven.DocumentParser for testing.
type mockParser struct {
	chunks   map[string][]string // path -> chunk texts
	parseErr error
	calls    []string
}

func (m *mockParser) Parse(_ context.Context, path string) ([]string, error) {
	m.calls = append(m.calls, path)
	if m.parseErr != nil {
		return nil, m.parseErr
	}
	return m.chunks[path], nil
}

func (m *mockParser) Name() string { return "mock-parser" }

// mockEmbedder implements driven.EmbeddingService for testing.
// It returns a deterministic vector derived from the text length so
// tests can tell embeddings apart.
type mockEmbedder struct {
	embedErr   error
	failOnText string // return embedErr only for this text ("" = always when set)
	calls      []string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.calls = append(m.calls, text)
	if m.embedErr != nil && (m.failOnText == "" || m.failOnText == text) {
		return nil, m.embedErr
	}
	return []float32{float32(len(text)), 1, 0}, nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := m.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (m *mockEmbedder) Dimensions() int             { return 3 }
func (m *mockEmbedder) ModelName() string           { return "mock-embed" }
func (m *mockEmbedder) Ping(_ context.Context) error { return nil }
func (m *mockEmbedder) Close() error                { return nil }

// mockVectorStore implements driven.VectorStore for testing.
type mockVectorStore struct {
	created   []string
	batches   map[string]driven.AddBatch
	hits      map[string][]driven.QueryHit // collection -> hits
	createErr error
	addErr    error
	queryErr  map[string]error // per-collection query failures
	queries   []string         // collections queried, in order
}

func newMockVectorStore() *mockVectorStore {
	return &mockVectorStore{
		batches:  make(map[string]driven.AddBatch),
		hits:     make(map[string][]driven.QueryHit),
		queryErr: make(map[string]error),
	}
}

func (m *mockVectorStore) CreateCollection(_ context.Context, name string) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, name)
	return nil
}

func (m *mockVectorStore) Add(_ context.Context, collection string, batch driven.AddBatch) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.batches[collection] = batch
	return nil
}

func (m *mockVectorStore) Query(
	_ context.Context, collection string, _ []float32, topK int,
) ([]driven.QueryHit, error) {
	m.queries = append(m.queries, collection)
	if err := m.queryErr[collection]; err != nil {
		return nil, err
	}
	hits := m.hits[collection]
	if topK < len(hits) {
		hits = hits[:topK]
	}
	return hits, nil
}

func (m *mockVectorStore) Ping(_ context.Context) error { return nil }
func (m *mockVectorStore) Close() error                 { return nil }

// mockRegistry implements driven.CollectionRegistry in memory.
type mockRegistry struct {
	records   []domain.CollectionRecord
	appendErr error
	loadErr   error
	resetErr  error
	resets    int
}

func (m *mockRegistry) Append(_ context.Context, record domain.CollectionRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockRegistry) LoadAll(_ context.Context) ([]domain.CollectionRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.records, nil
}

func (m *mockRegistry) Reset(_ context.Context) error {
	if m.resetErr != nil {
		return m.resetErr
	}
	m.resets++
	m.records = nil
	return nil
}

func (m *mockRegistry) Close() error { return nil }

// mockGeneration implements driven.GenerationService for testing.
type mockGeneration struct {
	answer      string
	generateErr error
	calls       int
	lastSystem  string
	lastUser    string
}

func (m *mockGeneration) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.calls++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.answer, nil
}

func (m *mockGeneration) ModelName() string           { return "mock-llm" }
func (m *mockGeneration) Ping(_ context.Context) error { return nil }
func (m *mockGeneration) Close() error                { return nil }

// hit builds a QueryHit with the given text and distance.
func hit(text string, distance float64) driven.QueryHit {
	return driven.QueryHit{
		ID:       fmt.Sprintf("id-%s", text),
		Document: text,
		Distance: distance,
	}
}
