// Package chroma provides a vector store adapter using the Chroma REST API.
package chroma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driven"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the Chroma vector store.
type Config struct {
	// BaseURL is the Chroma server URL (default: http://localhost:8000).
	BaseURL string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// VectorStore stores and queries embeddings via a Chroma server.
// Chroma addresses collections by server-assigned UUID, not by name,
// so resolved IDs are cached per collection name.
type VectorStore struct {
	client  *http.Client
	baseURL string

	mu  sync.Mutex
	ids map[string]string // collection name -> Chroma collection ID
}

// createCollectionRequest is the Chroma create-collection request format.
type createCollectionRequest struct {
	Name        string `json:"name"`
	GetOrCreate bool   `json:"get_or_create"`
}

// collectionResponse is the Chroma collection response format.
type collectionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// addRequest is the Chroma add request format.
type addRequest struct {
	IDs        []string               `json:"ids"`
	Documents  []string               `json:"documents"`
	Embeddings [][]float32            `json:"embeddings"`
	Metadatas  []domain.ChunkMetadata `json:"metadatas"`
}

// queryRequest is the Chroma query request format.
type queryRequest struct {
	QueryEmbeddings [][]float32 `json:"query_embeddings"`
	NResults        int         `json:"n_results"`
	Include         []string    `json:"include"`
}

// queryResponse is the Chroma query response format. Results are nested
// one level per query embedding; a single embedding is always sent.
type queryResponse struct {
	IDs       [][]string               `json:"ids"`
	Documents [][]string               `json:"documents"`
	Distances [][]float64              `json:"distances"`
	Metadatas [][]domain.ChunkMetadata `json:"metadatas"`
}

// errorResponse is the Chroma error response format.
type errorResponse struct {
	Error string `json:"error"`
}

// NewVectorStore creates a new Chroma vector store client.
func NewVectorStore(cfg Config) *VectorStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &VectorStore{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		ids:     make(map[string]string),
	}
}

// CreateCollection creates an empty collection with the given name.
// Creation is idempotent: an existing collection with the same name is
// reused.
func (s *VectorStore) CreateCollection(ctx context.Context, name string) error {
	_, err := s.resolveCollection(ctx, name)
	return err
}

// Add writes a batch of chunks into the named collection.
func (s *VectorStore) Add(ctx context.Context, collection string, batch driven.AddBatch) error {
	if len(batch.IDs) == 0 {
		return nil
	}
	if len(batch.IDs) != len(batch.Documents) ||
		len(batch.IDs) != len(batch.Embeddings) ||
		len(batch.IDs) != len(batch.Metadatas) {
		return fmt.Errorf("chroma: batch slices have mismatched lengths")
	}

	id, err := s.resolveCollection(ctx, collection)
	if err != nil {
		return err
	}

	reqBody := addRequest{
		IDs:        batch.IDs,
		Documents:  batch.Documents,
		Embeddings: batch.Embeddings,
		Metadatas:  batch.Metadatas,
	}
	return s.postJSON(ctx, fmt.Sprintf("/api/v1/collections/%s/add", id), reqBody, nil)
}

// Query returns the topK nearest neighbours within the named collection,
// ordered by ascending distance.
func (s *VectorStore) Query(ctx context.Context, collection string, embedding []float32, topK int) ([]driven.QueryHit, error) {
	id, err := s.resolveCollection(ctx, collection)
	if err != nil {
		return nil, err
	}

	reqBody := queryRequest{
		QueryEmbeddings: [][]float32{embedding},
		NResults:        topK,
		Include:         []string{"documents", "distances", "metadatas"},
	}

	var resp queryResponse
	if err := s.postJSON(ctx, fmt.Sprintf("/api/v1/collections/%s/query", id), reqBody, &resp); err != nil {
		return nil, err
	}

	if len(resp.IDs) == 0 {
		return nil, nil
	}

	ids := resp.IDs[0]
	hits := make([]driven.QueryHit, 0, len(ids))
	for i := range ids {
		hit := driven.QueryHit{ID: ids[i]}
		if len(resp.Documents) > 0 && i < len(resp.Documents[0]) {
			hit.Document = resp.Documents[0][i]
		}
		if len(resp.Distances) > 0 && i < len(resp.Distances[0]) {
			hit.Distance = resp.Distances[0][i]
		}
		if len(resp.Metadatas) > 0 && i < len(resp.Metadatas[0]) {
			hit.Metadata = resp.Metadatas[0][i]
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// Ping validates the server is reachable via the heartbeat endpoint.
func (s *VectorStore) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/v1/heartbeat", http.NoBody)
	if err != nil {
		return fmt.Errorf("chroma: failed to create ping request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("chroma: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chroma: server returned status %d", resp.StatusCode)
	}
	return nil
}

// Close releases resources.
func (s *VectorStore) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

// resolveCollection returns the Chroma ID for a collection name,
// creating the collection on first use.
func (s *VectorStore) resolveCollection(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	if id, ok := s.ids[name]; ok {
		s.mu.Unlock()
		return id, nil
	}
	s.mu.Unlock()

	reqBody := createCollectionRequest{Name: name, GetOrCreate: true}
	var resp collectionResponse
	if err := s.postJSON(ctx, "/api/v1/collections", reqBody, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("chroma: server returned no collection id for %q", name)
	}

	s.mu.Lock()
	s.ids[name] = resp.ID
	s.mu.Unlock()
	return resp.ID, nil
}

// postJSON sends a JSON POST request and optionally decodes the response.
func (s *VectorStore) postJSON(ctx context.Context, path string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("chroma error (status %d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("chroma error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
