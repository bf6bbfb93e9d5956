package driven

import (
	"context"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
)

// CollectionRegistry is the durable, append-only record of searchable
// collections. It is the sole source of truth for federated search: a
// collection missing from the registry is unreachable even if it still
// exists in the vector store.
//
// The public contract is independent of the backing choice; the
// line-delimited file is one concrete backing, a SQLite table another.
type CollectionRegistry interface {
	// Append durably persists one record. Appends for different files
	// must not corrupt prior entries; each record is written atomically.
	Append(ctx context.Context, record domain.CollectionRecord) error

	// LoadAll returns the full ordered sequence of records. A registry
	// that has never been written returns an empty sequence, not an
	// error.
	LoadAll(ctx context.Context) ([]domain.CollectionRecord, error)

	// Reset irreversibly deletes all records. Used only at the start of
	// a full re-ingestion; a reset failure aborts the ingestion run.
	Reset(ctx context.Context) error

	// Close releases resources.
	Close() error
}
