// Package cli implements the askdocs command-line interface.
// Commands hold their collaborators in package-level service variables
// so tests can swap them for mocks; production wiring happens once in
// InitServices before the root command runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/askdocs/askdocs-cli/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "askdocs",
	Short: "Ask questions about your documents",
	Long: `askdocs ingests local documents into per-document vector collections
and answers natural-language questions by searching across all of them.

Typical workflow:
  askdocs ingest ./docs     # index a directory (replaces the corpus)
  askdocs ask "question"    # answer a question from the corpus
  askdocs search "query"    # inspect raw retrieval results
  askdocs chat              # interactive question session`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}
