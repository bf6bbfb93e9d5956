package driving

import "context"

// IngestService builds the searchable corpus.
//
// Re-ingestion fully replaces the corpus: IngestDirectory resets the
// collection registry before processing. It is an exclusive maintenance
// operation and must not run concurrently with search traffic; this is an
// operational constraint, not an in-process lock.
type IngestService interface {
	// IngestFile ingests a single document into a newly created vector
	// collection and registers it. Returns the collection id, or an
	// error when the file contributed nothing (parse failure, zero
	// non-empty chunks, registry-append failure).
	IngestFile(ctx context.Context, path string) (string, error)

	// IngestDirectory resets the registry, then walks root recursively
	// and ingests every regular file sequentially. Per-file failures are
	// logged and skipped; the returned slice holds the collection ids of
	// the files that succeeded.
	IngestDirectory(ctx context.Context, root string) ([]string, error)
}
