package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/heatgrid/core"
	"github.com/huangsam/heatgrid/internal/contract"
	"github.com/huangsam/heatgrid/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.ProfileClient
}

func (h *toolHandler) handleGetContributionHeatmap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	slug, err := contract.ParseSlug(strings.TrimSpace(request.GetString("slug", "")))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if slug == "" {
		return mcp.NewToolResultError("invalid parameters: slug is required"), nil
	}
	year, err := contract.ParseYear(strings.TrimSpace(request.GetString("year", "")))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	cfg.Slug, cfg.Year = slug, year

	heatmap, err := core.GetHeatmapResults(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("heatmap extraction failed: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(schema.NewHeatmapResult(cfg.Slug, cfg.Year, heatmap), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode heatmap: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
