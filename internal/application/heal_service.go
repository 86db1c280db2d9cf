package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/autoheal/autoheal/internal/domain"
)

// HealService orchestrates the healing pipeline:
// scan → (stop on dry run) → heal → optional publish.
type HealService struct {
	scanner   domain.ProjectScanner
	healer    domain.ProjectHealer
	publisher domain.RepoPublisher
	commit    domain.CommitConfig
	log       domain.Logger
}

// NewHealService wires the pipeline. publisher may be nil, in which case
// commit requests are ignored with a warning.
func NewHealService(
	scanner domain.ProjectScanner,
	healer domain.ProjectHealer,
	publisher domain.RepoPublisher,
	commit domain.CommitConfig,
	log domain.Logger,
) *HealService {
	return &HealService{
		scanner:   scanner,
		healer:    healer,
		publisher: publisher,
		commit:    commit,
		log:       log,
	}
}

// ResolveProjectPath returns the absolute project path, failing when it
// does not exist or is not a directory.
func ResolveProjectPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("opening project: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", absPath, domain.ErrNotDirectory)
	}
	return absPath, nil
}

// Analyze scans the project without changing anything.
func (s *HealService) Analyze(projectPath string) (*domain.IssueSet, error) {
	absPath, err := ResolveProjectPath(projectPath)
	if err != nil {
		return nil, err
	}

	s.log.Info("analyzing project structure in %s", absPath)
	issues, err := s.scanner.Scan(absPath)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return issues, nil
}

// Run executes the whole pipeline. Per-file failures end up in the
// report; only startup and scan failures are returned as errors.
func (s *HealService) Run(ctx context.Context, projectPath string, opts domain.RunOptions) (*domain.RunResult, error) {
	absPath, err := ResolveProjectPath(projectPath)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		s.log.Info("dry run: no changes will be made")
	}

	issues, err := s.Analyze(absPath)
	if err != nil {
		return nil, err
	}

	if issues.IsEmpty() {
		s.log.Success("no issues found")
		return &domain.RunResult{Status: domain.RunHealthy, Issues: issues}, nil
	}
	s.log.Info("found %d issues", issues.Total())

	if opts.DryRun {
		return &domain.RunResult{Status: domain.RunDryRun, Issues: issues}, nil
	}

	s.log.Info("applying fixes")
	report := s.healer.Heal(absPath, issues)
	result := &domain.RunResult{Status: domain.RunHealed, Issues: issues, Report: report}

	if opts.Commit {
		result.Publish = s.publish(ctx, absPath, report, opts.Token)
	}

	s.log.Info("auto-healing completed: %d renamed, %d created, %d errors",
		len(report.RenamedFiles), len(report.CreatedFiles), len(report.Errors))
	return result, nil
}

func (s *HealService) publish(ctx context.Context, absPath string, report *domain.HealingReport, token string) *domain.PublishResult {
	switch {
	case s.publisher == nil:
		s.log.Warn("commit requested but no publisher is configured")
		return nil
	case report.HasErrors():
		s.log.Warn("skipping commit: healing recorded %d errors", len(report.Errors))
		return nil
	case !report.Changed():
		return &domain.PublishResult{Status: domain.PublishNoChanges}
	}

	s.log.Info("committing changes")
	res := s.publisher.Publish(ctx, absPath, domain.PublishRequest{
		Message: domain.CommitMessage,
		Token:   token,
		Commit:  s.commit,
	})
	return &res
}
