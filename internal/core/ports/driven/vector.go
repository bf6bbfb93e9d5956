package driven

import (
	"context"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
)

// VectorStore provides named-collection vector storage and
// nearest-neighbour search. Each ingested document owns exactly one
// collection; federated search queries collections independently.
//
// Implementations may include:
//   - Chroma (REST API)
//   - In-memory store for tests
type VectorStore interface {
	// CreateCollection creates an empty collection with the given name.
	// It is called before any writes for the collection.
	CreateCollection(ctx context.Context, name string) error

	// Add writes a batch of chunks into the named collection. The batch
	// slices are parallel sequences indexed identically.
	Add(ctx context.Context, collection string, batch AddBatch) error

	// Query returns the topK nearest neighbours to the embedding within
	// the named collection, ordered by ascending distance.
	Query(ctx context.Context, collection string, embedding []float32, topK int) ([]QueryHit, error)

	// Ping validates the store is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// AddBatch is one batch write into a collection. All slices have equal
// length; element i describes one stored chunk.
type AddBatch struct {
	// IDs are the per-chunk identifiers, unique within the collection.
	IDs []string

	// Documents are the chunk texts.
	Documents []string

	// Embeddings are the chunk vectors.
	Embeddings [][]float32

	// Metadatas are the chunk adjacency metadata records.
	Metadatas []domain.ChunkMetadata
}

// QueryHit is a single nearest-neighbour match from one collection.
type QueryHit struct {
	// ID is the stored chunk identifier.
	ID string

	// Document is the stored chunk text.
	Document string

	// Distance is the vector distance to the query; lower is closer.
	Distance float64

	// Metadata is the chunk metadata stored at ingestion time.
	Metadata domain.ChunkMetadata
}
