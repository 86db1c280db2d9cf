package domain

import (
	"context"
	"errors"
)

// ErrNotDirectory is returned when a project path is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// ProjectScanner walks a project and reports naming and structure issues.
type ProjectScanner interface {
	Scan(projectPath string) (*IssueSet, error)
}

// ProjectHealer applies the fixes described by an IssueSet.
type ProjectHealer interface {
	Heal(projectPath string, issues *IssueSet) *HealingReport
}

// RepoPublisher stages, commits and pushes the working tree.
type RepoPublisher interface {
	Publish(ctx context.Context, projectPath string, req PublishRequest) PublishResult
}

// PublisherFunc adapts a plain function to RepoPublisher.
type PublisherFunc func(ctx context.Context, projectPath string, req PublishRequest) PublishResult

func (f PublisherFunc) Publish(ctx context.Context, projectPath string, req PublishRequest) PublishResult {
	return f(ctx, projectPath, req)
}

// ConfigLoader loads project-level configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// Logger is the leveled logger handed to each component at construction.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
