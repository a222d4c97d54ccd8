// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/heatgrid/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HeatmapToolName is the name of the tool that returns a contribution heatmap.
const HeatmapToolName = "get_contribution_heatmap"

// NewMCPServer initializes and configures the heatgrid MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.ProfileClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Heatgrid Contribution Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	s.AddTool(mcp.NewTool(HeatmapToolName,
		mcp.WithDescription("Scrape the contribution calendar of a GitHub profile and return it as a week-by-day matrix of activity levels with summary statistics."),
		mcp.WithString("slug", mcp.Description("GitHub profile slug, e.g. 'huangsam'."), mcp.Required()),
		mcp.WithString("year", mcp.Description("Calendar year to fetch, e.g. '2022'. Defaults to the last twelve months.")),
	), h.handleGetContributionHeatmap)

	return s
}

// StartMCPServer starts the heatgrid MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.ProfileClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
