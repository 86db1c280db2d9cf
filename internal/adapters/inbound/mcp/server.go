package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewAutoHealMCPServer exposes the heal pipeline for projectPath over MCP:
// the autoheal_scan, autoheal_heal and autoheal_suggest tools plus the
// effective config and current issues as read-only resources. Commits are
// never made from MCP.
func NewAutoHealMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"autoheal",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
