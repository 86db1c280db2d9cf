package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/autoheal/autoheal/internal/adapters/outbound/config"
	"github.com/autoheal/autoheal/internal/adapters/outbound/healer"
	"github.com/autoheal/autoheal/internal/adapters/outbound/logging"
	"github.com/autoheal/autoheal/internal/adapters/outbound/publisher"
	"github.com/autoheal/autoheal/internal/adapters/outbound/scanner"
	"github.com/autoheal/autoheal/internal/application"
	"github.com/autoheal/autoheal/internal/domain"
)

// Token environment variables, checked in order.
var tokenEnvVars = []string{"AUTOHEAL_GITHUB_TOKEN", "GITHUB_TOKEN"}

// newLogger builds the logger for a command. With --json, log lines go to
// stderr so stdout stays machine-readable.
func (g *globalOptions) newLogger(cmd *cobra.Command, jsonOutput bool) (*logging.Logger, error) {
	mode, err := logging.ParseColorMode(g.color)
	if err != nil {
		return nil, err
	}
	var out io.Writer = cmd.OutOrStdout()
	if jsonOutput {
		out = cmd.ErrOrStderr()
	}
	return logging.New(logging.Options{
		Out:     out,
		Err:     cmd.ErrOrStderr(),
		Color:   mode,
		Verbose: g.verbose,
	}), nil
}

// newHealService resolves the project, loads its config and wires the
// scanner, healer and publisher around it.
func newHealService(path string, log domain.Logger) (*application.HealService, string, error) {
	absPath, err := application.ResolveProjectPath(path)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.New().Load(absPath)
	if err != nil {
		return nil, "", err
	}
	log.Debug("target %s, %d excluded paths", cfg.Target, len(cfg.ExcludePaths))

	svc := application.NewHealService(
		scanner.New(cfg.RuleSet(), log),
		healer.New(log),
		publisher.New(log),
		cfg.Commit,
		log,
	)
	return svc, absPath, nil
}

// lookupToken returns the first non-empty token from the environment after
// loading .env from the working directory and the project root. Existing
// environment variables are never overridden.
func lookupToken(projectPath string) string {
	_ = godotenv.Load()
	if _, err := os.Stat(filepath.Join(projectPath, ".env")); err == nil {
		_ = godotenv.Load(filepath.Join(projectPath, ".env"))
	}
	for _, name := range tokenEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
