package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
)

func readResourceRequest(uri string) *mcp.ReadResourceRequest {
	req := &mcp.ReadResourceRequest{}
	req.Params = &mcp.ReadResourceParams{URI: uri}
	return req
}

func TestHandleCollectionsResource_ListsRecords(t *testing.T) {
	srv, err := NewServer(&Ports{
		Search: &mockSearchService{},
		Registry: &mockRegistryService{records: []domain.CollectionRecord{
			{ID: "physics-1-abc", Source: "physics"},
			{ID: "thermo-2-def", Source: "thermo"},
		}},
	})
	require.NoError(t, err)

	result, err := srv.handleCollectionsResource(context.Background(), readResourceRequest(uriScheme+"collections"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, "physics-1-abc")
	assert.Contains(t, result.Contents[0].Text, "thermo")
}

func TestHandleCollectionsResource_NoRegistry(t *testing.T) {
	srv, err := NewServer(&Ports{Search: &mockSearchService{}})
	require.NoError(t, err)

	result, err := srv.handleCollectionsResource(context.Background(), readResourceRequest(uriScheme+"collections"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "[]", result.Contents[0].Text)
}
