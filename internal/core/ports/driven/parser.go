package driven

import "context"

// DocumentParser extracts an ordered sequence of text chunks from a file.
// Layout understanding, OCR and format support are entirely the
// collaborator's concern; the core imposes no extension filtering and
// treats an unsupported format as a parse failure for that file.
//
// Implementations may include:
//   - Unstructured-compatible partition API (PDF, DOCX, HTML, ...)
//   - Local plaintext splitter for UTF-8 text files
type DocumentParser interface {
	// Parse returns the chunk texts of the file at path, in extraction
	// order. Chunk texts may be empty; the ingestion pipeline drops
	// empty chunks without shifting the indices of survivors.
	Parse(ctx context.Context, path string) ([]string, error)

	// Name returns a short identifier for the parser backend.
	Name() string
}
