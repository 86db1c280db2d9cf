package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/autoheal/autoheal/internal/domain"
)

// FileName is the per-project configuration file.
const FileName = ".autoheal.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .autoheal.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .autoheal.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate before merging so typos in the raw input are caught.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit values on top of the defaults.
// Explicit (non-zero) values always win.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if override.Target != "" {
		result.Target = override.Target
	}
	if len(override.ExcludePaths) > 0 {
		result.ExcludePaths = override.ExcludePaths
	}
	if len(override.Corrections) > 0 {
		result.Corrections = override.Corrections
	}
	if len(override.ExtensionFixes) > 0 {
		result.ExtensionFixes = override.ExtensionFixes
	}
	if len(override.SkipFiles) > 0 {
		result.SkipFiles = override.SkipFiles
	}
	result.SplitCamelCase = override.SplitCamelCase

	if override.Commit.AuthorName != "" {
		result.Commit.AuthorName = override.Commit.AuthorName
	}
	if override.Commit.AuthorEmail != "" {
		result.Commit.AuthorEmail = override.Commit.AuthorEmail
	}
	if override.Commit.Remote != "" {
		result.Commit.Remote = override.Commit.Remote
	}

	return result
}
