package domain

import (
	"fmt"
	"strings"
)

// Chunk is one unit of extracted document text as returned by the parsing
// collaborator, before any filtering.
type Chunk struct {
	// Index is the 0-based position in the original extraction order.
	// Dropping an empty chunk does not shift the indices of survivors.
	Index int

	// Text is the raw chunk text.
	Text string
}

// ChunkRef names a chunk by its original extraction index. The reference
// is stored in adjacency metadata (previous_chunk, next_chunk,
// overlap_with).
func ChunkRef(index int) string {
	return fmt.Sprintf("chunk_%d", index)
}

// ChunkMetadata is stored alongside each embedding in the vector
// collection. Adjacency references use original extraction indices, so
// previous/next links remain correct even when empty chunks between two
// stored chunks were dropped.
type ChunkMetadata struct {
	// ChunkIndex is the original 0-based extraction index.
	ChunkIndex int `json:"chunk_index"`

	// FileName is the base name of the ingested file.
	FileName string `json:"file_name"`

	// TotalChunks is the number of chunks the parser extracted from the
	// file, counting empty chunks that were later dropped.
	TotalChunks int `json:"total_chunks"`

	// WordCount is the number of whitespace-delimited tokens in the
	// stored chunk text.
	WordCount int `json:"word_count"`

	// PreviousChunk references the preceding stored chunk, "" if none.
	PreviousChunk string `json:"previous_chunk"`

	// NextChunk references the following stored chunk, "" if none.
	NextChunk string `json:"next_chunk"`

	// HasOverlap reports whether a significant boundary overlap with the
	// previous stored chunk was detected.
	HasOverlap bool `json:"has_overlap"`

	// OverlapWith references the chunk the overlap was detected against,
	// "" if none.
	OverlapWith string `json:"overlap_with"`

	// OverlapLength is the character length of the detected overlap
	// string, 0 if none.
	OverlapLength int `json:"overlap_length"`

	// Source is the provenance label of the owning collection.
	Source string `json:"source"`
}

// WordCount counts whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
