package prompts

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractReviewHandler(t *testing.T) {
	var req mcp.GetPromptRequest
	req.Params.Arguments = map[string]string{"file_path": "/tmp/lease.pdf", "focus": "termination"}

	result, err := contractReviewHandler(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Contract review of /tmp/lease.pdf", result.Description)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, mcp.RoleUser, result.Messages[0].Role)

	content, ok := result.Messages[0].Content.(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, content.Text, "contract_analyze_file tool on /tmp/lease.pdf")
	assert.Contains(t, content.Text, "Pay particular attention to: termination.")
}

func TestContractReviewHandlerRequiresFile(t *testing.T) {
	var req mcp.GetPromptRequest
	req.Params.Arguments = map[string]string{}

	_, err := contractReviewHandler(context.Background(), req)
	assert.Error(t, err)
}
