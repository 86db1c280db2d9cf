package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/autoheal/autoheal/internal/adapters/outbound/config"
)

const (
	configURI = "autoheal://config"
	issuesURI = "autoheal://issues"
)

// registerResources registers all autoheal MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			configURI,
			"Effective Config",
			mcplib.WithResourceDescription("The .autoheal.yaml settings merged onto the defaults"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	s.AddResource(
		mcplib.NewResource(
			issuesURI,
			"Issues",
			mcplib.WithResourceDescription("Current naming and structure issues in the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleIssuesResource(projectPath),
	)
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return jsonResource(configURI, cfg)
	}
}

func handleIssuesResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc, err := newService(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		issues, err := svc.Analyze(projectPath)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		return jsonResource(issuesURI, issues)
	}
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
