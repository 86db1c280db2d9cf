package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autoheal/autoheal/internal/adapters/outbound/config"
	"github.com/autoheal/autoheal/internal/application"
	"github.com/autoheal/autoheal/internal/domain/naming"
)

func newSuggestCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "suggest NAME...",
		Short: "Print the normalized form of one or more file names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := application.ResolveProjectPath(projectPath)
			if err != nil {
				return err
			}
			cfg, err := config.New().Load(absPath)
			if err != nil {
				return err
			}

			n := naming.New(cfg.RuleSet())
			for _, name := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", name, n.Suggest(name))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project whose .autoheal.yaml rules apply")

	return cmd
}
