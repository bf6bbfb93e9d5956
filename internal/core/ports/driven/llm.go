package driven

import "context"

// GenerationService synthesises an answer from a structured prompt.
// This is an optional service - when nil, the question-answering entry
// points are disabled while ingestion and search keep working.
//
// Implementations may include:
//   - OpenAI (GPT-4o, GPT-4o-mini)
//   - Anthropic (Claude)
//   - Ollama (local models)
type GenerationService interface {
	// Generate produces a completion for the given system instruction and
	// user prompt. The output is returned verbatim; the core performs no
	// post-processing and no retries.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
