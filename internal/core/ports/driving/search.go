package driving

import (
	"context"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
)

// SearchService performs federated semantic search across every
// registered collection.
type SearchService interface {
	// Search embeds the query once, queries each registered collection
	// for its nearest neighbours, and returns the merged hits sorted by
	// ascending distance, capped at TopK*2. An empty registry yields an
	// empty result, not an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}

// RegistryService exposes the registry contents to operators.
type RegistryService interface {
	// Collections returns the ordered registry records.
	Collections(ctx context.Context) ([]domain.CollectionRecord, error)
}
