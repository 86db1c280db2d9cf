package domain

import (
	"fmt"
	"strings"
)

// Target identifies the deployment platform whose required files are checked.
type Target string

const (
	TargetNetlify Target = "netlify"
	TargetWeb     Target = "web"
	TargetNone    Target = "none"
)

// ValidTargets enumerates all recognized deployment targets.
var ValidTargets = []Target{TargetNetlify, TargetWeb, TargetNone}

// ProjectConfig holds project-level configuration loaded from .autoheal.yaml.
type ProjectConfig struct {
	Target         Target            `yaml:"target"           json:"target,omitempty"`
	ExcludePaths   []string          `yaml:"exclude_paths"    json:"exclude_paths,omitempty"`
	Corrections    map[string]string `yaml:"corrections"      json:"corrections,omitempty"`
	ExtensionFixes map[string]string `yaml:"extension_fixes"  json:"extension_fixes,omitempty"`
	SkipFiles      []string          `yaml:"skip_files"       json:"skip_files,omitempty"`
	SplitCamelCase bool              `yaml:"split_camel_case" json:"split_camel_case,omitempty"`
	Commit         CommitConfig      `yaml:"commit"           json:"commit,omitempty"`
}

// CommitConfig controls the identity and remote used when publishing.
type CommitConfig struct {
	AuthorName  string `yaml:"author_name"  json:"author_name,omitempty"`
	AuthorEmail string `yaml:"author_email" json:"author_email,omitempty"`
	Remote      string `yaml:"remote"       json:"remote,omitempty"`
}

const (
	DefaultAuthorName  = "autoheal"
	DefaultAuthorEmail = "autoheal@users.noreply.github.com"
	DefaultRemote      = "origin"
)

// DefaultConfig returns the configuration used when no .autoheal.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Target: TargetNetlify,
		Commit: CommitConfig{
			AuthorName:  DefaultAuthorName,
			AuthorEmail: DefaultAuthorEmail,
			Remote:      DefaultRemote,
		},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Target != "" && !isValidTarget(c.Target) {
		return fmt.Errorf("unknown target %q (valid: netlify, web, none)", c.Target)
	}

	for from, to := range c.Corrections {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return fmt.Errorf("corrections entry %q -> %q must not be empty", from, to)
		}
		if strings.ContainsAny(to, `/\`) {
			return fmt.Errorf("correction %q -> %q must be a bare file name", from, to)
		}
	}

	for from, to := range c.ExtensionFixes {
		if !strings.HasPrefix(from, ".") || !strings.HasPrefix(to, ".") {
			return fmt.Errorf("extension_fixes entry %q -> %q must start with a dot", from, to)
		}
		if from != strings.ToLower(from) {
			return fmt.Errorf("extension_fixes key %q must be lower-case", from)
		}
	}

	for _, p := range c.ExcludePaths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("exclude_paths must not contain empty entries")
		}
		if strings.ContainsAny(strings.TrimSuffix(p, "/"), `/\`) {
			return fmt.Errorf("exclude_paths entry %q must be a directory name, not a path", p)
		}
	}

	return nil
}

// RuleSet builds the immutable rule table from the defaults overlaid with
// this config's explicit entries.
func (c ProjectConfig) RuleSet() RuleSet {
	rules := DefaultRuleSet()

	for from, to := range c.Corrections {
		rules.corrections[from] = to
	}
	for from, to := range c.ExtensionFixes {
		rules.extensionFixes[from] = to
	}
	for _, f := range c.SkipFiles {
		rules.skipFiles[f] = true
	}
	for _, p := range c.ExcludePaths {
		rules.ignoreDirs[strings.TrimSuffix(p, "/")] = true
	}
	if c.Target != "" {
		rules.target = c.Target
	}
	rules.splitCamelCase = c.SplitCamelCase

	return rules
}

func isValidTarget(t Target) bool {
	for _, v := range ValidTargets {
		if t == v {
			return true
		}
	}
	return false
}
