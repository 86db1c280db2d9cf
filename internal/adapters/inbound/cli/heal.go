package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autoheal/autoheal/internal/adapters/outbound/tui"
	"github.com/autoheal/autoheal/internal/domain"
)

func newHealCmd(g *globalOptions) *cobra.Command {
	var (
		dryRun     bool
		commitFlag bool
		token      string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "heal [path]",
		Short: "Rename badly named files and create missing deployment files",
		Long: "Scan the project, rename files to lower-case kebab-case with corrected extensions,\n" +
			"create missing deployment files from templates, and optionally commit and push.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := g.newLogger(cmd, jsonOutput)
			if err != nil {
				return err
			}

			svc, absPath, err := newHealService(pathArg(args), log)
			if err != nil {
				return err
			}

			if commitFlag && token == "" {
				token = lookupToken(absPath)
				if token == "" {
					log.Warn("no token found in AUTOHEAL_GITHUB_TOKEN or GITHUB_TOKEN, pushing without credentials")
				}
			}

			result, err := svc.Run(cmd.Context(), absPath, domain.RunOptions{
				DryRun: dryRun,
				Commit: commitFlag,
				Token:  token,
			})
			if err != nil {
				return fmt.Errorf("heal failed: %w", err)
			}

			if jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				renderRunResult(cmd, absPath, result)
			}

			if result.Report != nil && result.Report.HasErrors() {
				return fmt.Errorf("healing recorded %d errors", len(result.Report.Errors))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report issues without changing anything")
	cmd.Flags().BoolVar(&commitFlag, "commit", false, "Commit and push the healed project")
	cmd.Flags().StringVar(&token, "token", "", "Access token for pushing (defaults to AUTOHEAL_GITHUB_TOKEN or GITHUB_TOKEN)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func renderRunResult(cmd *cobra.Command, root string, result *domain.RunResult) {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, tui.RenderIssues(root, result.Issues))

	switch result.Status {
	case domain.RunDryRun:
		fmt.Fprint(out, tui.RenderDryRunHint())
	case domain.RunHealed:
		fmt.Fprint(out, tui.RenderHealingReport(root, result.Report))
	}
	if result.Publish != nil {
		fmt.Fprint(out, tui.RenderPublishResult(result.Publish))
	}
}
