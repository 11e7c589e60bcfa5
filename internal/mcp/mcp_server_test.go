package mcp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threesixty-dev/threesixty/internal/contract"
	mcp_internal "github.com/threesixty-dev/threesixty/internal/mcp"
	"github.com/threesixty-dev/threesixty/schema"
)

// failingLoader always fails fetching, to exercise handler error paths.
type failingLoader struct{}

func (failingLoader) Fetch(_ context.Context, _ string) ([]byte, error) {
	return nil, errors.New("boom")
}

func (failingLoader) Parse(_ []byte) (*schema.Workbook, error) {
	return nil, errors.New("boom")
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		Source:      "survey.xlsx",
		ResultLimit: contract.DefaultResultLimit,
	}

	// A nil manager is fine since caching is optional in the pipeline
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseCfg, failingLoader{}, mgr)

	ctx := context.Background()

	t.Run("get_manager_detail missing manager", func(t *testing.T) {
		tool := s.GetTool("get_manager_detail")
		require.NotNil(t, tool, "Tool get_manager_detail should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_manager_detail",
				Arguments: map[string]any{
					"manager": "", // Missing required
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "manager is required")
	})

	t.Run("get_leaderboard fetch failure", func(t *testing.T) {
		tool := s.GetTool("get_leaderboard")
		require.NotNil(t, tool, "Tool get_leaderboard should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_leaderboard",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "aggregation failed")
	})

	t.Run("get_digest fetch failure", func(t *testing.T) {
		tool := s.GetTool("get_digest")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_digest",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})

	t.Run("all tools registered", func(t *testing.T) {
		for _, name := range []string{"get_leaderboard", "get_competencies", "get_manager_detail", "get_digest"} {
			assert.NotNil(t, s.GetTool(name), "Tool %s should exist", name)
		}
	})
}
