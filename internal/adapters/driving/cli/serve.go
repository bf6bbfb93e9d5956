package cli

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/askdocs/askdocs-cli/internal/adapters/driving/httpapi"
	"github.com/askdocs/askdocs-cli/internal/logger"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the corpus over HTTP",
	Long: `Starts an HTTP server exposing the corpus to local frontends.

Endpoints:
  POST /ask          Answer a question from the corpus
  POST /search       Federated semantic search
  GET  /collections  List ingested collections
  GET  /health       Liveness check`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	handler := httpapi.NewHandler(searchService, askService, registryService)
	router := httpapi.NewRouter(handler)

	addr := fmt.Sprintf(":%d", servePort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	cmd.Printf("Listening on http://localhost%s\n", addr)
	logger.Debug("http server starting on %s", addr)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
