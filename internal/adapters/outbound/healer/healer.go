// Package healer applies scan results to the filesystem: it renames
// misnamed files and creates missing deployment files from templates.
package healer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/autoheal/autoheal/internal/domain"
)

// ErrTargetExists is returned when a rename would overwrite another file.
var ErrTargetExists = errors.New("target already exists")

// FileHealer implements domain.ProjectHealer.
type FileHealer struct {
	log domain.Logger
}

func New(log domain.Logger) *FileHealer {
	return &FileHealer{log: log}
}

// Heal renames every invalid file and then creates every missing file, in
// the order received. Each item fails on its own: errors are recorded in
// the report and never stop the remaining items.
func (h *FileHealer) Heal(projectPath string, issues *domain.IssueSet) *domain.HealingReport {
	report := &domain.HealingReport{
		RenamedFiles: []domain.RenamedFile{},
		CreatedFiles: []string{},
		Errors:       []string{},
	}
	if issues == nil {
		return report
	}

	for _, issue := range issues.InvalidFilenames {
		oldPath := resolve(projectPath, issue.Path)
		renamed, err := h.rename(oldPath, issue.Suggestion)
		if err != nil {
			msg := fmt.Sprintf("renaming %s: %v", oldPath, err)
			report.Errors = append(report.Errors, msg)
			h.log.Error("%s", msg)
			continue
		}
		if renamed == nil {
			h.log.Debug("skipping case-only rename %s -> %s", issue.OriginalName, issue.Suggestion)
			continue
		}
		report.RenamedFiles = append(report.RenamedFiles, *renamed)
		h.log.Success("fixed: %s -> %s", filepath.Base(renamed.From), filepath.Base(renamed.To))
	}

	for _, missing := range issues.MissingFiles {
		path := filepath.Join(projectPath, missing.File)
		created, err := h.create(path, missing.File)
		if err != nil {
			msg := fmt.Sprintf("creating %s: %v", missing.File, err)
			report.Errors = append(report.Errors, msg)
			h.log.Error("%s", msg)
			continue
		}
		if !created {
			h.log.Debug("%s already exists, not overwriting", path)
			continue
		}
		report.CreatedFiles = append(report.CreatedFiles, path)
		h.log.Success("created: %s", missing.File)
	}

	return report
}

// rename moves oldPath to newName in the same directory by copy and
// delete. It returns nil without error when the names differ only in case.
func (h *FileHealer) rename(oldPath, newName string) (*domain.RenamedFile, error) {
	if strings.EqualFold(filepath.Base(oldPath), newName) {
		return nil, nil
	}
	newPath := filepath.Join(filepath.Dir(oldPath), newName)

	oldInfo, err := os.Lstat(oldPath)
	if err != nil {
		return nil, err
	}

	newInfo, err := os.Lstat(newPath)
	switch {
	case err == nil && os.SameFile(oldInfo, newInfo):
		// Same entry under another spelling on a case-insensitive filesystem.
		if err := os.Rename(oldPath, newPath); err != nil {
			return nil, err
		}
		return &domain.RenamedFile{From: oldPath, To: newPath}, nil
	case err == nil:
		return nil, fmt.Errorf("%s: %w", newPath, ErrTargetExists)
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}

	if err := copyFile(oldPath, newPath); err != nil {
		return nil, err
	}

	newInfo, err = os.Stat(newPath)
	if err != nil {
		return nil, err
	}
	if current, err := os.Stat(oldPath); err == nil && !os.SameFile(current, newInfo) {
		if err := os.Remove(oldPath); err != nil {
			return nil, fmt.Errorf("copied to %s but could not remove original: %w", newPath, err)
		}
	}

	return &domain.RenamedFile{From: oldPath, To: newPath}, nil
}

// create writes the template for name at path unless something already
// exists there. It reports whether a file was written.
func (h *FileHealer) create(path, name string) (bool, error) {
	if _, err := os.Lstat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, err
	}
	_, werr := f.WriteString(domain.TemplateFor(name))
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return false, werr
	}
	return true, nil
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
