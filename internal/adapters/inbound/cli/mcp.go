package cli

import (
	mcpadapter "github.com/autoheal/autoheal/internal/adapters/inbound/mcp"
	"github.com/autoheal/autoheal/internal/application"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve scan, heal and suggest to coding assistants",
		Long:  "Commands for exposing autoheal to MCP (Model Context Protocol) clients.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

// newMCPServeCmd resolves the project before serving so a bad --path fails
// immediately instead of on the first tool call.
func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Start the autoheal MCP server on stdio",
		Long:    "Serve the autoheal_scan, autoheal_heal and autoheal_suggest tools over stdio. Logs go to stderr.",
		Example: "  autoheal mcp serve --path ./site",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := application.ResolveProjectPath(projectPath)
			if err != nil {
				return err
			}
			return server.ServeStdio(mcpadapter.NewAutoHealMCPServer(absPath))
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project to scan and heal")

	return cmd
}
