package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var collectionsJSON bool

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List ingested collections",
	Long:  `Lists every collection in the registry, in ingestion order.`,
	Args:  cobra.NoArgs,
	RunE:  runCollections,
}

func init() {
	collectionsCmd.Flags().BoolVar(&collectionsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(collectionsCmd)
}

func runCollections(cmd *cobra.Command, _ []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	records, err := registryService.Collections(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing collections: %w", err)
	}

	if collectionsJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No collections. Run 'askdocs ingest' first.")
		return nil
	}

	for _, rec := range records {
		cmd.Printf("  %s  (%s)\n", rec.ID, rec.Source)
	}
	cmd.Printf("\n%d collection(s).\n", len(records))
	return nil
}
