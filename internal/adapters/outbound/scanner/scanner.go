package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/autoheal/autoheal/internal/domain"
	"github.com/autoheal/autoheal/internal/domain/naming"
)

// FileScanner implements domain.ProjectScanner by walking the filesystem.
type FileScanner struct {
	rules      domain.RuleSet
	normalizer *naming.Normalizer
	log        domain.Logger
}

func New(rules domain.RuleSet, log domain.Logger) *FileScanner {
	return &FileScanner{
		rules:      rules,
		normalizer: naming.New(rules),
		log:        log,
	}
}

func (s *FileScanner) Scan(projectPath string) (*domain.IssueSet, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", absPath, domain.ErrNotDirectory)
	}

	issues := &domain.IssueSet{}

	err = filepath.WalkDir(absPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absPath {
				return err
			}
			s.log.Warn("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != absPath && s.rules.IsIgnoredDir(d.Name()) {
				s.log.Debug("ignoring directory %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		name := d.Name()
		if s.rules.IsSkippedFile(name) {
			return nil
		}

		suggestion := s.normalizer.Suggest(name)
		if suggestion == name {
			return nil
		}

		issues.InvalidFilenames = append(issues.InvalidFilenames, domain.InvalidFilename{
			Path:         path,
			OriginalName: name,
			Suggestion:   suggestion,
			Reason:       naming.Reason(suggestion),
		})
		s.log.Debug("flagged %s -> %s", path, suggestion)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.checkRequired(absPath, issues)

	return issues, nil
}

// checkRequired records root-level files the deployment target needs.
func (s *FileScanner) checkRequired(root string, issues *domain.IssueSet) {
	target := s.rules.Target()
	for _, file := range s.rules.RequiredFiles() {
		if _, err := os.Stat(filepath.Join(root, file)); err == nil {
			continue
		}
		if issues.HasMissing(file) {
			continue
		}
		issues.MissingFiles = append(issues.MissingFiles, domain.MissingFile{
			File:   file,
			Reason: fmt.Sprintf("required for %s deployment", target),
		})
	}
}
