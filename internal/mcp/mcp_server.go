// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/stargaze/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Stargaze MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Stargaze Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_quarter_ranking ---
	s.AddTool(mcp.NewTool("get_quarter_ranking",
		mcp.WithDescription("Rank stored repositories by their best 90-day relative star gain within a quarter."),
		mcp.WithString("quarter", mcp.Description("Quarter key like '2025-Q1' (defaults to the configured quarter).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked rows returned.")),
		mcp.WithArray("repos", mcp.Description("Repositories to rank as 'owner/name' (defaults to all stored repos).")),
	), h.handleGetQuarterRanking)

	// --- 2. Tool: get_star_forecast ---
	s.AddTool(mcp.NewTool("get_star_forecast",
		mcp.WithDescription("Project weekly star counts for repositories using their stored history."),
		mcp.WithArray("repos", mcp.Description("Repositories to forecast as 'owner/name' (defaults to all stored repos).")),
		mcp.WithNumber("horizon", mcp.Description("Number of future weeks to project (defaults to 12).")),
	), h.handleGetStarForecast)

	return s
}

// StartMCPServer starts the Stargaze MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
