package driving

import "context"

// AskService answers natural-language questions about the ingested
// corpus.
type AskService interface {
	// Ask validates the question, retrieves relevant passages via
	// federated search, composes the context block and invokes the
	// generation collaborator once. An empty or whitespace-only question
	// returns domain.ErrEmptyQuestion. When no passages are retrieved the
	// fixed no-information message is returned without a generation
	// call.
	Ask(ctx context.Context, question string) (string, error)
}
