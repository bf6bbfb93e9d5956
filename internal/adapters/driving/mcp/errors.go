// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants query the ingested document corpus and ask
// questions against it.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
