package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "github.com/askdocs/askdocs-cli/internal/adapters/driving/mcp"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the corpus to MCP clients",
	Long: `Starts an MCP server exposing the corpus to agent clients.

By default the server speaks over stdio, which is what editor and agent
integrations expect. Pass --port to serve streamable HTTP instead.`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "serve over HTTP on this port instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	server, err := mcpserver.NewServer(&mcpserver.Ports{
		Search:   searchService,
		Ask:      askService,
		Registry: registryService,
	})
	if err != nil {
		return fmt.Errorf("creating mcp server: %w", err)
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		cmd.Printf("MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
