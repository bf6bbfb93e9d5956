// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentParser: Extracts ordered text chunks from a file
//   - EmbeddingService: Generates vector embeddings
//   - VectorStore: Named-collection vector storage and nearest-neighbour query
//   - CollectionRegistry: Durable record of searchable collections
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - GenerationService: Answer synthesis. Without it, search works but
//     the question-answering entry points are disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
