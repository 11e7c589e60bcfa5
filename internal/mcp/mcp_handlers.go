package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/threesixty-dev/threesixty/core"
	"github.com/threesixty-dev/threesixty/internal/contract"
	"github.com/threesixty-dev/threesixty/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	loader  contract.WorkbookLoader
	mgr     contract.CacheManager
}

// applyFilterArgs copies the optional filter arguments onto a cloned config.
func (h *toolHandler) applyFilterArgs(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if m := request.GetString("managers", ""); m != "" {
		cfg.Managers = contract.SplitList(m)
	}
	if r := request.GetString("relationships", ""); r != "" {
		cfg.Relationships = contract.SplitList(r)
	}
	return cfg
}

func (h *toolHandler) handleGetLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.applyFilterArgs(request)
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	out, err := core.GetAggregates(ctx, cfg, h.loader, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	ranked := out.Summaries
	if len(ranked) > cfg.ResultLimit {
		ranked = ranked[:cfg.ResultLimit]
	}

	payload := struct {
		Stats    schema.OverallStats     `json:"stats"`
		Managers []schema.ManagerSummary `json:"managers"`
	}{Stats: out.Stats, Managers: ranked}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCompetencies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.applyFilterArgs(request)

	out, err := core.GetAggregates(ctx, cfg, h.loader, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(out.Competencies, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetManagerDetail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	manager := request.GetString("manager", "")
	if manager == "" {
		return mcp.NewToolResultError("manager is required"), nil
	}

	cfg := h.baseCfg.Clone()
	cfg.Managers = []string{manager}

	out, err := core.GetAggregates(ctx, cfg, h.loader, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}
	if len(out.Summaries) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no responses found for manager %q", manager)), nil
	}

	payload := struct {
		Summary       schema.ManagerSummary   `json:"summary"`
		Competencies  []schema.CompetencyScore `json:"competencies"`
		Relationships map[string]int           `json:"relationships"`
		Feedback      schema.FeedbackThemes    `json:"feedback"`
	}{
		Summary:       out.Summaries[0],
		Competencies:  out.Competencies,
		Relationships: out.Relationships,
		Feedback:      out.Feedback,
	}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetDigest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.applyFilterArgs(request)

	out, err := core.GetAggregates(ctx, cfg, h.loader, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	digest := core.BuildDigest(out.Summaries, out.Stats, out.Competencies)
	return mcp.NewToolResultText(digest), nil
}
