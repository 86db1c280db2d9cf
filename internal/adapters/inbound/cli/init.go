package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/autoheal/autoheal/internal/adapters/outbound/config"
	"github.com/autoheal/autoheal/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		target string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .autoheal.yaml configuration file",
		Long:  "Create a .autoheal.yaml with the default rules for a deployment target.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(pathArg(args))
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			content, err := generateConfig(domain.Target(target))
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", string(domain.TargetNetlify), "Deployment target (netlify, web, none)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .autoheal.yaml")

	return cmd
}

func generateConfig(target domain.Target) ([]byte, error) {
	cfg := domain.DefaultConfig()
	cfg.Target = target
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	header := "# autoheal configuration\n\n"
	footer := `
# exclude_paths:
#   - dist
#   - vendor

# corrections:
#   index.jx: index.js

# extension_fixes:
#   .jx: .js
`
	return append(append([]byte(header), body...), footer...), nil
}
