// Package main provides the entry point for the autofix CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	autofixmcp "github.com/gorewood/autofix/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run autofix as a Model Context Protocol (MCP) server over stdio.

This exposes project inspection as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).
All tools are read-only; setup commands are never executed.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "autofix": {
        "command": "autofix",
        "args": ["serve"]
      }
    }
  }

Available tools: detect, plan, doctor`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := autofixmcp.NewServer(buildVersion(), newRunner())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
