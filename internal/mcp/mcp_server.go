// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/threesixty-dev/threesixty/internal/contract"
)

// NewMCPServer initializes and configures the review analytics MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, loader contract.WorkbookLoader, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"360 Review Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		loader:  loader,
		mgr:     mgr,
	}

	// --- 1. Tool: get_leaderboard ---
	s.AddTool(mcp.NewTool("get_leaderboard",
		mcp.WithDescription("Rank managers by their overall 360-review score with per-category averages."),
		mcp.WithString("managers", mcp.Description("Comma-separated manager names to include (defaults to all).")),
		mcp.WithString("relationships", mcp.Description("Comma-separated relationship types to include (defaults to all).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetLeaderboard)

	// --- 2. Tool: get_competencies ---
	s.AddTool(mcp.NewTool("get_competencies",
		mcp.WithDescription("Break down average scores per survey question across the response collection."),
		mcp.WithString("managers", mcp.Description("Comma-separated manager names to include.")),
		mcp.WithString("relationships", mcp.Description("Comma-separated relationship types to include.")),
	), h.handleGetCompetencies)

	// --- 3. Tool: get_manager_detail ---
	s.AddTool(mcp.NewTool("get_manager_detail",
		mcp.WithDescription("Get the summary, competency breakdown and free-text feedback for one manager."),
		mcp.WithString("manager", mcp.Description("The manager to report on."), mcp.Required()),
	), h.handleGetManagerDetail)

	// --- 4. Tool: get_digest ---
	s.AddTool(mcp.NewTool("get_digest",
		mcp.WithDescription("Produce a plain-text digest of the review data suitable as assistant context."),
		mcp.WithString("managers", mcp.Description("Comma-separated manager names to include.")),
		mcp.WithString("relationships", mcp.Description("Comma-separated relationship types to include.")),
	), h.handleGetDigest)

	return s
}

// StartMCPServer starts the review analytics MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, loader contract.WorkbookLoader, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, loader, mgr)
	return server.ServeStdio(s)
}
