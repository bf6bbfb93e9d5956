package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driven"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driving"
	"github.com/askdocs/askdocs-cli/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// NoInformationMessage is returned when federated search yields no
// passages. No generation call is made in that case.
const NoInformationMessage = "No relevant information was found in the ingested documents."

// GenerationFailedMessage is the generic message transports surface when
// the generation collaborator fails. The failure is never retried.
const GenerationFailedMessage = "The answer could not be generated. Please try again later."

// systemPrompt is the fixed instruction given to the generation
// collaborator for every question.
const systemPrompt = "You are a helpful assistant that answers questions " +
	"strictly from the provided document excerpts. If the excerpts do not " +
	"contain the answer, say so instead of guessing."

// userPromptTemplate embeds the retrieved context block and the question.
const userPromptTemplate = `Use the following document excerpts to answer the question.

%s

Question: %s`

// AskService composes answers: it retrieves passages through federated
// search, assembles them into a bounded context block and invokes the
// generation collaborator once.
type AskService struct {
	search driving.SearchService
	llm    driven.GenerationService
	topK   int
}

// NewAskService creates a new ask service. topK values <= 0 fall back to
// domain.DefaultTopK.
func NewAskService(search driving.SearchService, llm driven.GenerationService, topK int) *AskService {
	if topK <= 0 {
		topK = domain.DefaultTopK
	}
	return &AskService{
		search: search,
		llm:    llm,
		topK:   topK,
	}
}

// Ask answers a question about the ingested corpus. The generation
// output is returned verbatim with no post-processing.
func (s *AskService) Ask(ctx context.Context, question string) (string, error) {
	logger.Section("Ask")

	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.ErrEmptyQuestion
	}

	results, err := s.search.Search(ctx, question, domain.SearchOptions{TopK: s.topK})
	if err != nil {
		return "", fmt.Errorf("retrieving context: %w", err)
	}

	if len(results) == 0 {
		logger.Debug("No passages retrieved, returning fallback")
		return NoInformationMessage, nil
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, contextBlock(results), question)
	logger.Debug("Composed context from %d passages", len(results))

	answer, err := s.llm.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}
	return answer, nil
}

// contextBlock concatenates the retrieved passages as labeled blocks in
// distance-ascending order, joined with a blank line.
func contextBlock(results []domain.SearchResult) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Source %d (%s): %s", i+1, r.Source, r.Document)
	}
	return b.String()
}
