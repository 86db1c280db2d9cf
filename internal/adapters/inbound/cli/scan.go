package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autoheal/autoheal/internal/adapters/outbound/tui"
)

func newScanCmd(g *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "List naming and structure issues without fixing them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := g.newLogger(cmd, jsonOutput)
			if err != nil {
				return err
			}

			svc, absPath, err := newHealService(pathArg(args), log)
			if err != nil {
				return err
			}

			issues, err := svc.Analyze(absPath)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), issues)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderIssues(absPath, issues))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
