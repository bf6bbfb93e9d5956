package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askdocs/askdocs-cli/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat over the ingested documents",
	Long: `Opens an interactive session where each question is answered from
the ingested corpus. Questions are independent; no conversation history
is sent to the generation provider.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) (err error) {
	if askService == nil {
		return errors.New("question answering is not configured; set up a generation provider first")
	}

	// The terminal is in the alternate screen while the session runs; a
	// panic there would leave it unusable without this recovery.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("chat session panicked: %v", r)
		}
	}()

	return tui.Run(askService)
}
