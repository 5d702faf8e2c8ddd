// Package mcp provides a Model Context Protocol server for autofix.
// It exposes project inspection as MCP tools that any MCP-capable agent
// can use: detecting toolchains, planning setup commands, and checking
// tool availability. All tools are read-only; the server never executes
// setup commands.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/autofix/internal/exec"
)

// NewServer creates an MCP server with all autofix tools registered.
// The runner is used for read-only probes (PATH lookups, interpreter
// package checks); planning never mutates the workspace.
func NewServer(version string, runner exec.Runner) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "autofix",
		Version: version,
	}, nil)
	registerTools(server, runner)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all autofix tools to the server.
func registerTools(server *mcp.Server, runner exec.Runner) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Detect project toolchains in a directory by marker files. Returns the matched toolchains, the resolved Node package manager, and the lockfiles found.",
		Annotations: readOnlyAnnotations(),
	}, handleDetect())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "plan",
		Description: "Plan the setup steps autofix would run for a directory without executing anything. Returns each step with its severity, skip reason, and the exact commands.",
		Annotations: readOnlyAnnotations(),
	}, handlePlan(runner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "doctor",
		Description: "Check availability of the external tools the detected toolchains need (python3, npm/yarn/pnpm, cargo, flutter, dart, git).",
		Annotations: readOnlyAnnotations(),
	}, handleDoctor(runner))
}
