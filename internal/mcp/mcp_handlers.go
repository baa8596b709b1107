package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/stargaze/core"
	"github.com/huangsam/stargaze/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleGetQuarterRanking(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if q := request.GetString("quarter", ""); q != "" {
		if err := contract.RevalidateQuarter(cfg, q); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid quarter: %v", err)), nil
		}
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	if repos := request.GetStringSlice("repos", nil); len(repos) > 0 {
		cfg.Repos = repos
	}

	ranking, err := core.BuildQuarterRanking(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(ranking, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetStarForecast(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if repos := request.GetStringSlice("repos", nil); len(repos) > 0 {
		cfg.Repos = repos
	}
	if hz := request.GetInt("horizon", 0); hz != 0 {
		if hz < 1 || hz > contract.MaxHorizon {
			return mcp.NewToolResultError(fmt.Sprintf("horizon must be between 1 and %d", contract.MaxHorizon)), nil
		}
		cfg.Horizon = hz
	}

	rows, err := core.BuildForecasts(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("forecast failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
