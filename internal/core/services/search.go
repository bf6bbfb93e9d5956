package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driven"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driving"
	"github.com/askdocs/askdocs-cli/internal/logger"
)

// Ensure SearchService implements the interfaces.
var (
	_ driving.SearchService   = (*SearchService)(nil)
	_ driving.RegistryService = (*SearchService)(nil)
)

// SearchService performs federated semantic search: one query embedding,
// fanned out across every registered collection, merged by distance.
type SearchService struct {
	registry driven.CollectionRegistry
	embedder driven.EmbeddingService
	vectors  driven.VectorStore
}

// NewSearchService creates a new federated search service.
func NewSearchService(
	registry driven.CollectionRegistry,
	embedder driven.EmbeddingService,
	vectors driven.VectorStore,
) *SearchService {
	return &SearchService{
		registry: registry,
		embedder: embedder,
		vectors:  vectors,
	}
}

// Search queries every registered collection for its topK nearest
// neighbours and returns the merged hits sorted by ascending distance,
// capped at topK*2.
//
// The query embedding is computed exactly once and reused for every
// collection. A failure in one collection (deleted out-of-band, store
// hiccup) is logged and skipped; it never aborts the overall search. An
// empty registry returns an empty result without touching any
// collaborator.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Federated Search")

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	topK := opts.EffectiveTopK()
	logger.Debug("Query: %q, topK: %d", query, topK)

	records, err := s.registry.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading registry: %w", err)
	}
	if len(records) == 0 {
		logger.Debug("Registry is empty, nothing to search")
		return []domain.SearchResult{}, nil
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", domain.ErrEmbedding, err)
	}

	merged := make([]domain.SearchResult, 0, len(records)*topK)
	for _, rec := range records {
		hits, err := s.vectors.Query(ctx, rec.ID, embedding, topK)
		if err != nil {
			// Collection-scoped failure: skip, keep searching the rest.
			logger.Warn("collection %s (%s): %v", rec.ID, rec.Source, err)
			continue
		}
		for _, hit := range hits {
			merged = append(merged, domain.SearchResult{
				Document:   hit.Document,
				Distance:   hit.Distance,
				Metadata:   hit.Metadata,
				Source:     rec.Source,
				Collection: rec.ID,
			})
		}
	}

	// Stable sort keeps insertion order for exact distance ties, which
	// makes one sorted call deterministic given identical inputs.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Distance < merged[j].Distance
	})

	if limit := topK * 2; len(merged) > limit {
		merged = merged[:limit]
	}

	logger.Debug("Merged %d results from %d collections", len(merged), len(records))
	return merged, nil
}

// Collections returns the ordered registry records.
func (s *SearchService) Collections(ctx context.Context) ([]domain.CollectionRecord, error) {
	records, err := s.registry.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading registry: %w", err)
	}
	return records, nil
}
