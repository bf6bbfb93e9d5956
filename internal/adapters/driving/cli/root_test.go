package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	prev := version
	version = "1.2.3"
	defer func() { version = prev }()

	out, err := executeCommand("version")

	require.NoError(t, err)
	assert.Contains(t, out, "askdocs version 1.2.3")
}

func TestRootHelpListsCommands(t *testing.T) {
	out, err := executeCommand("--help")

	require.NoError(t, err)
	for _, name := range []string{"ingest", "ask", "search", "collections", "chat", "serve", "mcp", "version"} {
		assert.Contains(t, out, name)
	}
}

func TestChatNotConfigured(t *testing.T) {
	restore := setupTestServices(nil, nil, nil, nil)
	defer restore()

	_, err := executeCommand("chat")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestServeNotConfigured(t *testing.T) {
	restore := setupTestServices(nil, nil, nil, nil)
	defer restore()

	_, err := executeCommand("serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}

func TestMCPServeNotConfigured(t *testing.T) {
	restore := setupTestServices(nil, nil, nil, nil)
	defer restore()

	_, err := executeCommand("mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}
