package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
	"github.com/askdocs/askdocs-cli/internal/core/services"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question from the ingested documents",
	Long: `Answer a natural-language question using the ingested corpus.

Relevant passages are retrieved from every collection and handed to the
configured generation provider. When nothing relevant is found, a fixed
no-information message is printed instead of calling the provider.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if askService == nil {
		return errors.New("question answering is not configured; set up a generation provider first")
	}

	answer, err := askService.Ask(cmd.Context(), question)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuestion):
			return errors.New("question must not be empty")
		case errors.Is(err, domain.ErrGeneration):
			cmd.Println(services.GenerationFailedMessage)
			return nil
		default:
			return fmt.Errorf("ask failed: %w", err)
		}
	}

	cmd.Println(answer)
	return nil
}
