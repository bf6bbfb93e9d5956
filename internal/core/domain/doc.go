// Package domain defines the core business entities for askdocs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CollectionRecord: One registered vector collection and its source label
//   - ChunkMetadata: Adjacency and overlap metadata stored with each chunk
//   - SearchResult: A single federated-search hit
//
// It also holds the pure chunk-boundary overlap detector, which has no
// collaborator dependencies and is used by the ingestion pipeline.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
