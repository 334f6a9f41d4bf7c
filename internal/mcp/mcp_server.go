// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/topsis/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the TOPSIS MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"TOPSIS Ranking Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: rank_alternatives ---
	s.AddTool(mcp.NewTool("rank_alternatives",
		mcp.WithDescription("Rank alternatives with TOPSIS. The data is a CSV table whose first column labels each alternative and whose other columns are numeric criteria."),
		mcp.WithString("data", mcp.Description("CSV text with a header row."), mcp.Required()),
		mcp.WithString("weights", mcp.Description("Comma-separated weights, one per criterion column (e.g. '1,1,2')."), mcp.Required()),
		mcp.WithString("impacts", mcp.Description("Comma-separated impacts, '+' for benefit and '-' for cost (e.g. '+,-,+')."), mcp.Required()),
		mcp.WithString("degenerate", mcp.Description("What to do when an alternative sits on both reference points. Defaults to 'error'."), mcp.Enum("error", "zero")),
		mcp.WithBoolean("sorted", mcp.Description("Return rows ordered by rank instead of input order.")),
	), h.handleRankAlternatives)

	// --- 2. Tool: describe_method ---
	s.AddTool(mcp.NewTool("describe_method",
		mcp.WithDescription("Describe the TOPSIS procedure, optionally with the normalized form of the given criteria."),
		mcp.WithString("weights", mcp.Description("Comma-separated weights.")),
		mcp.WithString("impacts", mcp.Description("Comma-separated impacts ('+' or '-').")),
	), h.handleDescribeMethod)

	return s
}

// StartMCPServer starts the TOPSIS MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, version string) error {
	s := NewMCPServer(baseCfg, version)
	return server.ServeStdio(s)
}
