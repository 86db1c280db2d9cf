package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/autoheal/autoheal/internal/adapters/outbound/config"
	"github.com/autoheal/autoheal/internal/adapters/outbound/healer"
	"github.com/autoheal/autoheal/internal/adapters/outbound/logging"
	"github.com/autoheal/autoheal/internal/adapters/outbound/scanner"
	"github.com/autoheal/autoheal/internal/application"
	"github.com/autoheal/autoheal/internal/domain"
	"github.com/autoheal/autoheal/internal/domain/naming"
)

// registerTools registers all autoheal MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("autoheal_scan",
			mcplib.WithDescription("Lists invalid file names and missing deployment files in the project as JSON"),
		),
		handleScan(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("autoheal_heal",
			mcplib.WithDescription("Renames invalid files and creates missing deployment files. Returns the run result as JSON."),
			mcplib.WithBoolean("dry_run", mcplib.Description("Report issues without changing anything")),
		),
		handleHeal(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("autoheal_suggest",
			mcplib.WithDescription("Returns the normalized form of a file name using the project's rules"),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("File name to normalize, e.g. \"My Photo.JPG\""),
			),
		),
		handleSuggest(projectPath),
	)
}

// serverLogger writes to stderr; stdout carries the MCP protocol.
func serverLogger() domain.Logger {
	return logging.New(logging.Options{Out: os.Stderr, Err: os.Stderr, Color: logging.ColorNever})
}

// newService loads the project config and wires a HealService without a
// publisher. Commits are left to the caller.
func newService(projectPath string) (*application.HealService, error) {
	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return nil, err
	}
	log := serverLogger()
	svc := application.NewHealService(
		scanner.New(cfg.RuleSet(), log),
		healer.New(log),
		nil,
		cfg.Commit,
		log,
	)
	return svc, nil
}

func handleScan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc, err := newService(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		issues, err := svc.Analyze(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(issues)
	}
}

func handleHeal(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dryRun, _ := request.GetArguments()["dry_run"].(bool)

		svc, err := newService(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		result, err := svc.Run(ctx, projectPath, domain.RunOptions{DryRun: dryRun})
		if err != nil {
			return errorResult(fmt.Sprintf("heal failed: %v", err)), nil
		}
		if result.Report != nil && result.Report.HasErrors() {
			data, _ := json.MarshalIndent(result, "", "  ")
			return errorResult(string(data)), nil
		}
		return jsonResult(result)
	}
}

func handleSuggest(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult("name parameter is required"), nil
		}
		name = strings.TrimSpace(name)
		if name == "" || strings.ContainsAny(name, `/\`) {
			return errorResult(fmt.Sprintf("%q is not a bare file name", name)), nil
		}

		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		return textResult(naming.New(cfg.RuleSet()).Suggest(name)), nil
	}
}

// jsonResult marshals v to indented JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
