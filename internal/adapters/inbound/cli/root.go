package cli

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose bool
	color   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "autoheal",
		Short: "Fix file naming and project structure before you deploy",
		Long: "autoheal scans a project directory for badly named files and missing deployment\n" +
			"files, renames and creates them, and can commit and push the result.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print debug logs")
	cmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "Color output (auto, always, never)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newHealCmd(opts))
	cmd.AddCommand(newScanCmd(opts))
	cmd.AddCommand(newSuggestCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
