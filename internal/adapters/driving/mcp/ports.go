package mcp

import (
	"github.com/askdocs/askdocs-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides federated search across collections.
	Search driving.SearchService

	// Ask answers questions against the corpus. Optional: when nil the
	// ask tool is not registered (no generation provider configured).
	Ask driving.AskService

	// Registry exposes the ingested collection records. Optional.
	Registry driving.RegistryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Ask and Registry are optional
	return nil
}
