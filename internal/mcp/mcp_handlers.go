package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/topsis/core"
	"github.com/huangsam/topsis/internal/contract"
	"github.com/huangsam/topsis/internal/outwriter"
	"github.com/huangsam/topsis/internal/tableio"
	"github.com/huangsam/topsis/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleRankAlternatives(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	spec, err := contract.ParseCriteriaSpec(request.GetString("weights", ""), request.GetString("impacts", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	cfg.Weights = spec.Weights
	cfg.Impacts = spec.Impacts
	cfg.NamedCriteria = nil

	if d := request.GetString("degenerate", ""); d != "" {
		policy := schema.DegeneratePolicy(strings.ToLower(d))
		if _, ok := schema.ValidDegeneratePolicies[policy]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: degenerate must be error or zero, got %q", d)), nil
		}
		cfg.Degenerate = policy
	}
	if cfg.Degenerate == "" {
		cfg.Degenerate = schema.ErrorPolicy
	}

	table, err := tableio.ReadCSV(strings.NewReader(request.GetString("data", "")))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid data: %v", err)), nil
	}

	result, err := core.GetRankResults(core.WithSuppressHeader(ctx), cfg, table)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	enriched := schema.EnrichResult(result, request.GetBool("sorted", false))
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDescribeMethod(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spec, err := contract.ParseCriteriaSpec(request.GetString("weights", ""), request.GetString("impacts", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	model, err := outwriter.BuildMethodRenderModel(spec, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid criteria: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(model, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
