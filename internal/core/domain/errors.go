package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyQuestion indicates a question was empty or whitespace-only.
	// This is a client error, the 400-equivalent of the taxonomy.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrParse indicates the document-parsing collaborator failed for a
	// file. Batch ingestion treats this as "this file contributed
	// nothing" and continues.
	ErrParse = errors.New("document parsing failed")

	// ErrEmbedding indicates the embedding collaborator failed. During
	// ingestion this aborts the current file only.
	ErrEmbedding = errors.New("embedding failed")

	// ErrVectorStore indicates a vector-store operation failed. During
	// federated search a per-collection failure is skipped, never fatal
	// for the overall search.
	ErrVectorStore = errors.New("vector store operation failed")

	// ErrGeneration indicates the generation collaborator failed.
	// Terminal for the request; never retried.
	ErrGeneration = errors.New("answer generation failed")

	// ErrEmptyDocument indicates a file yielded zero non-empty chunks.
	// The created collection is abandoned and never registered.
	ErrEmptyDocument = errors.New("document produced no chunks")

	// ErrInvalidSourceLabel indicates a derived source label (or
	// collection id) contains the '|' record separator and cannot be
	// persisted by the line-oriented registry.
	ErrInvalidSourceLabel = errors.New("invalid source label")
)
