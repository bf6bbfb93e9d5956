// Package memory provides an in-process vector store using brute-force
// cosine distance. It backs tests and offline development; production
// deployments use the Chroma adapter.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/askdocs/askdocs-cli/internal/core/ports/driven"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

type entry struct {
	hit       driven.QueryHit
	embedding []float32
}

// VectorStore holds named collections of embedded chunks in memory.
type VectorStore struct {
	mu          sync.RWMutex
	collections map[string][]entry
}

// NewVectorStore creates an empty in-memory vector store.
func NewVectorStore() *VectorStore {
	return &VectorStore{collections: make(map[string][]entry)}
}

// CreateCollection creates an empty collection. Existing collections
// are left untouched.
func (s *VectorStore) CreateCollection(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[name]; !ok {
		s.collections[name] = nil
	}
	return nil
}

// Add writes a batch of chunks into the named collection.
func (s *VectorStore) Add(_ context.Context, collection string, batch driven.AddBatch) error {
	if len(batch.IDs) != len(batch.Documents) ||
		len(batch.IDs) != len(batch.Embeddings) ||
		len(batch.IDs) != len(batch.Metadatas) {
		return fmt.Errorf("memory: batch slices have mismatched lengths")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[collection]; !ok {
		return fmt.Errorf("memory: collection %q does not exist", collection)
	}
	for i := range batch.IDs {
		s.collections[collection] = append(s.collections[collection], entry{
			hit: driven.QueryHit{
				ID:       batch.IDs[i],
				Document: batch.Documents[i],
				Metadata: batch.Metadatas[i],
			},
			embedding: batch.Embeddings[i],
		})
	}
	return nil
}

// Query returns the topK nearest neighbours by cosine distance.
func (s *VectorStore) Query(_ context.Context, collection string, embedding []float32, topK int) ([]driven.QueryHit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.collections[collection]
	if !ok {
		return nil, fmt.Errorf("memory: collection %q does not exist", collection)
	}

	hits := make([]driven.QueryHit, 0, len(entries))
	for _, e := range entries {
		h := e.hit
		h.Distance = cosineDistance(embedding, e.embedding)
		hits = append(hits, h)
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })

	if topK > 0 && len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

// Ping always succeeds.
func (s *VectorStore) Ping(_ context.Context) error { return nil }

// Close releases resources.
func (s *VectorStore) Close() error { return nil }

// cosineDistance is 1 minus cosine similarity; zero vectors are treated
// as maximally distant.
func cosineDistance(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
