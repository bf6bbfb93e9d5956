package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
)

func newIngestFixture() (*IngestService, *mockParser, *mockEmbedder, *mockVectorStore, *mockRegistry) {
	parser := &mockParser{chunks: make(map[string][]string)}
	embedder := &mockEmbedder{}
	vectors := newMockVectorStore()
	registry := &mockRegistry{}
	svc := NewIngestService(parser, embedder, vectors, registry)
	return svc, parser, embedder, vectors, registry
}

func TestIngestFile_HappyPath(t *testing.T) {
	svc, parser, _, vectors, registry := newIngestFixture()

	parser.chunks["/corpus/physics_notes.pdf"] = []string{
		"first chunk of the document text here",
		"document text here continues with more words",
	}

	id, err := svc.IngestFile(context.Background(), "/corpus/physics_notes.pdf")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "physics-notes-"), "id should start with sanitised stem: %s", id)
	require.Len(t, vectors.created, 1)
	assert.Equal(t, id, vectors.created[0])

	batch, ok := vectors.batches[id]
	require.True(t, ok, "batch should be written to the created collection")
	require.Len(t, batch.IDs, 2)
	require.Len(t, batch.Documents, 2)
	require.Len(t, batch.Embeddings, 2)
	require.Len(t, batch.Metadatas, 2)

	first := batch.Metadatas[0]
	assert.Equal(t, 0, first.ChunkIndex)
	assert.Equal(t, "physics_notes.pdf", first.FileName)
	assert.Equal(t, 2, first.TotalChunks)
	assert.Equal(t, 7, first.WordCount)
	assert.Equal(t, "", first.PreviousChunk)
	assert.Equal(t, "chunk_1", first.NextChunk)
	assert.Equal(t, "physics", first.Source)

	second := batch.Metadatas[1]
	assert.Equal(t, 1, second.ChunkIndex)
	assert.Equal(t, "chunk_0", second.PreviousChunk)
	assert.Equal(t, "", second.NextChunk)

	// "document text here" is 18 characters - a real boundary overlap,
	// but below the 20-character significance threshold.
	assert.False(t, second.HasOverlap)
	assert.Equal(t, 0, second.OverlapLength)

	require.Len(t, registry.records, 1)
	assert.Equal(t, domain.CollectionRecord{ID: id, Source: "physics"}, registry.records[0])
}

func TestIngestFile_SignificantOverlapRecorded(t *testing.T) {
	svc, parser, _, vectors, _ := newIngestFixture()

	parser.chunks["notes.txt"] = []string{
		"intro words then the shared boundary sequence of words",
		"the shared boundary sequence of words continues afterwards",
	}

	id, err := svc.IngestFile(context.Background(), "notes.txt")
	require.NoError(t, err)

	batch := vectors.batches[id]
	require.Len(t, batch.Metadatas, 2)

	meta := batch.Metadatas[1]
	overlap := "the shared boundary sequence of words"
	assert.True(t, meta.HasOverlap)
	assert.Equal(t, "chunk_0", meta.OverlapWith)
	assert.Equal(t, len(overlap), meta.OverlapLength)
}

func TestIngestFile_EmptyChunksDroppedWithoutShiftingIndices(t *testing.T) {
	svc, parser, embedder, vectors, _ := newIngestFixture()

	parser.chunks["doc.pdf"] = []string{
		"alpha beta gamma delta",
		"   ", // dropped
		"",    // dropped
		"gamma delta epsilon zeta",
	}

	id, err := svc.IngestFile(context.Background(), "doc.pdf")
	require.NoError(t, err)

	// Only the two non-empty chunks were embedded.
	assert.Len(t, embedder.calls, 2)

	batch := vectors.batches[id]
	require.Len(t, batch.Metadatas, 2)

	// Survivors keep their original extraction indices.
	assert.Equal(t, 0, batch.Metadatas[0].ChunkIndex)
	assert.Equal(t, 3, batch.Metadatas[1].ChunkIndex)
	assert.Equal(t, 4, batch.Metadatas[0].TotalChunks)

	// Adjacency links skip the dropped empties.
	assert.Equal(t, "chunk_3", batch.Metadatas[0].NextChunk)
	assert.Equal(t, "chunk_0", batch.Metadatas[1].PreviousChunk)

	// Chunk ids carry the original indices too.
	assert.Equal(t, id+"-chunk-0", batch.IDs[0])
	assert.Equal(t, id+"-chunk-3", batch.IDs[1])
}

func TestIngestFile_AllChunksEmpty(t *testing.T) {
	svc, parser, _, vectors, registry := newIngestFixture()

	parser.chunks["empty.pdf"] = []string{"", "   ", "\t\n"}

	_, err := svc.IngestFile(context.Background(), "empty.pdf")
	require.ErrorIs(t, err, domain.ErrEmptyDocument)

	// The collection was created, then abandoned: no batch write, no
	// registry entry, so it can never be searched.
	assert.Len(t, vectors.created, 1)
	assert.Empty(t, vectors.batches)
	assert.Empty(t, registry.records)
}

func TestIngestFile_ParseFailure(t *testing.T) {
	svc, parser, _, vectors, registry := newIngestFixture()

	parser.parseErr = errors.New("unsupported format")

	_, err := svc.IngestFile(context.Background(), "broken.xyz")
	require.ErrorIs(t, err, domain.ErrParse)

	// Nothing was created or registered.
	assert.Empty(t, vectors.created)
	assert.Empty(t, registry.records)
}

func TestIngestFile_EmbeddingFailureAbortsFileOnly(t *testing.T) {
	svc, parser, embedder, vectors, registry := newIngestFixture()

	parser.chunks["doc.pdf"] = []string{"good chunk text", "bad chunk text"}
	embedder.embedErr = errors.New("rate limited")
	embedder.failOnText = "bad chunk text"

	_, err := svc.IngestFile(context.Background(), "doc.pdf")
	require.ErrorIs(t, err, domain.ErrEmbedding)

	// No partial batch is written and the collection stays unregistered.
	assert.Empty(t, vectors.batches)
	assert.Empty(t, registry.records)
}

func TestIngestFile_RegistryAppendFailure(t *testing.T) {
	svc, parser, _, _, registry := newIngestFixture()

	parser.chunks["doc.pdf"] = []string{"some chunk text"}
	registry.appendErr = errors.New("disk full")

	_, err := svc.IngestFile(context.Background(), "doc.pdf")
	require.Error(t, err)
	assert.Empty(t, registry.records)
}

func TestIngestDirectory_ResetsAndSkipsFailures(t *testing.T) {
	svc, parser, _, _, registry := newIngestFixture()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_one.txt"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_two.txt"), []byte("x"), 0600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "c_three.txt"), []byte("x"), 0600))

	// b_two parses to nothing and must be skipped without aborting.
	parser.chunks[filepath.Join(dir, "a_one.txt")] = []string{"alpha chunk text"}
	parser.chunks[filepath.Join(dir, "b_two.txt")] = []string{""}
	parser.chunks[filepath.Join(dir, "nested", "c_three.txt")] = []string{"gamma chunk text"}

	// Pre-existing registry content must be cleared.
	registry.records = []domain.CollectionRecord{{ID: "stale", Source: "old"}}

	ids, err := svc.IngestDirectory(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, registry.resets)
	assert.Len(t, ids, 2)
	require.Len(t, registry.records, 2)
	assert.Equal(t, "a", registry.records[0].Source)
	assert.Equal(t, "c", registry.records[1].Source)
}

func TestIngestDirectory_ResetFailureAborts(t *testing.T) {
	svc, parser, _, _, registry := newIngestFixture()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.txt"), []byte("x"), 0600))
	parser.chunks[filepath.Join(dir, "doc.txt")] = []string{"chunk text"}

	registry.resetErr = errors.New("permission denied")

	_, err := svc.IngestDirectory(context.Background(), dir)
	require.Error(t, err)

	// Nothing was parsed: a stale registry must not be silently reused.
	assert.Empty(t, parser.calls)
}
