package services

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driven"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driving"
	"github.com/askdocs/askdocs-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService turns documents into per-document vector collections.
// One file produces one collection; the collection registry records which
// collections exist and is rebuilt wholesale on directory ingestion.
type IngestService struct {
	parser   driven.DocumentParser
	embedder driven.EmbeddingService
	vectors  driven.VectorStore
	registry driven.CollectionRegistry
}

// NewIngestService creates a new ingestion service.
func NewIngestService(
	parser driven.DocumentParser,
	embedder driven.EmbeddingService,
	vectors driven.VectorStore,
	registry driven.CollectionRegistry,
) *IngestService {
	return &IngestService{
		parser:   parser,
		embedder: embedder,
		vectors:  vectors,
		registry: registry,
	}
}

// IngestDirectory resets the registry and ingests every regular file
// under root, strictly one at a time. Sequential processing bounds
// embedding-service concurrency and keeps rate-limit handling simple.
// Per-file failures are logged and skipped; a registry reset failure
// aborts the whole run.
func (s *IngestService) IngestDirectory(ctx context.Context, root string) ([]string, error) {
	logger.Section("Ingestion")
	logger.Info("Corpus root: %s", root)

	if err := s.registry.Reset(ctx); err != nil {
		return nil, fmt.Errorf("resetting registry: %w", err)
	}

	collections := []string{}
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		id, err := s.IngestFile(ctx, path)
		if err != nil {
			// File-scoped failure: a partial corpus is an acceptable
			// outcome, the batch continues.
			logger.Warn("skipping %s: %v", path, err)
			return nil
		}

		logger.Info("Ingested %s -> %s", path, id)
		collections = append(collections, id)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %s: %w", root, walkErr)
	}

	logger.Info("Created %d collections", len(collections))
	return collections, nil
}

// IngestFile runs the ingestion pipeline for one document: parse into
// ordered chunks, embed each non-empty chunk, attach adjacency and
// boundary-overlap metadata, write everything into a newly created
// collection in one batch, then register the collection.
//
// The collection is created before any writes. If no chunk survives the
// empty-text filter, the created collection is abandoned unregistered and
// can never appear in search.
func (s *IngestService) IngestFile(ctx context.Context, path string) (string, error) {
	source := domain.SourceLabel(path)
	collectionID := newCollectionID(path)
	fileName := filepath.Base(path)

	texts, err := s.parser.Parse(ctx, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrParse, path, err)
	}
	logger.Debug("Parsed %s into %d chunks", fileName, len(texts))

	if err := s.vectors.CreateCollection(ctx, collectionID); err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", domain.ErrVectorStore, collectionID, err)
	}

	batch, err := s.buildBatch(ctx, collectionID, fileName, source, texts)
	if err != nil {
		return "", err
	}
	if len(batch.IDs) == 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrEmptyDocument, path)
	}

	if err := s.vectors.Add(ctx, collectionID, batch); err != nil {
		return "", fmt.Errorf("%w: writing %s: %v", domain.ErrVectorStore, collectionID, err)
	}

	record := domain.CollectionRecord{ID: collectionID, Source: source}
	if err := s.registry.Append(ctx, record); err != nil {
		return "", fmt.Errorf("registering %s: %w", collectionID, err)
	}

	logger.Debug("Stored %d chunks in %s", len(batch.IDs), collectionID)
	return collectionID, nil
}

// buildBatch embeds the non-empty chunks of one file and assembles the
// parallel id/text/embedding/metadata sequences for the batch write.
// Chunks keep their original extraction indices; adjacency references
// therefore point at the preceding/following *stored* chunk by its
// original index, skipping dropped empties.
func (s *IngestService) buildBatch(
	ctx context.Context, collectionID, fileName, source string, texts []string,
) (driven.AddBatch, error) {
	batch := driven.AddBatch{}
	total := len(texts)

	prevIndex := -1
	prevText := ""

	for i, raw := range texts {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		embedding, err := s.embedder.Embed(ctx, text)
		if err != nil {
			// Aborts ingestion of the current file only.
			return driven.AddBatch{}, fmt.Errorf("%w: chunk %d of %s: %v", domain.ErrEmbedding, i, fileName, err)
		}

		meta := domain.ChunkMetadata{
			ChunkIndex:  i,
			FileName:    fileName,
			TotalChunks: total,
			WordCount:   domain.WordCount(text),
			Source:      source,
		}

		if prevIndex >= 0 {
			meta.PreviousChunk = domain.ChunkRef(prevIndex)
			batch.Metadatas[len(batch.Metadatas)-1].NextChunk = domain.ChunkRef(i)

			// Overlap is computed against the previous stored chunk,
			// not the previous raw chunk, since empties are skipped.
			if overlap := domain.TrailingOverlap(prevText, text); domain.SignificantOverlap(overlap) {
				meta.HasOverlap = true
				meta.OverlapWith = domain.ChunkRef(prevIndex)
				meta.OverlapLength = len(overlap)
			}
		}

		batch.IDs = append(batch.IDs, fmt.Sprintf("%s-chunk-%d", collectionID, i))
		batch.Documents = append(batch.Documents, text)
		batch.Embeddings = append(batch.Embeddings, embedding)
		batch.Metadatas = append(batch.Metadatas, meta)

		prevIndex = i
		prevText = text
	}

	return batch, nil
}

// newCollectionID builds a collection id from the sanitised filename
// stem, a millisecond timestamp and a short random suffix. Collisions are
// theoretically possible and tolerated; ids are not security tokens.
func newCollectionID(path string) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s-%d-%s", domain.CollectionPrefix(path), time.Now().UnixMilli(), suffix)
}
