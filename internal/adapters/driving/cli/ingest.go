package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [path]",
	Short: "Ingest documents into the corpus",
	Long: `Ingest a file or directory into the searchable corpus.

Passing a directory REPLACES the corpus: the collection registry is reset
before ingestion, then every regular file under the directory is ingested
sequentially. Files that fail to parse or embed are logged and skipped.

Passing a single file adds it to the existing corpus without a reset.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	path := args[0]

	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("inspecting path: %w", err)
	}

	ctx := cmd.Context()

	if info.IsDir() {
		ids, err := ingestService.IngestDirectory(ctx, path)
		if err != nil {
			return fmt.Errorf("ingest failed: %w", err)
		}
		cmd.Printf("Ingested %d document(s).\n", len(ids))
		return nil
	}

	id, err := ingestService.IngestFile(ctx, path)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	cmd.Printf("Ingested into collection %s.\n", id)
	return nil
}
