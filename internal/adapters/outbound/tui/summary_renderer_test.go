package tui_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autoheal/autoheal/internal/adapters/outbound/tui"
	"github.com/autoheal/autoheal/internal/domain"
)

const root = "/srv/site"

func sampleReport() *domain.HealingReport {
	return &domain.HealingReport{
		RenamedFiles: []domain.RenamedFile{
			{From: filepath.Join(root, "index.jx"), To: filepath.Join(root, "index.js")},
			{From: filepath.Join(root, "src", "Bad File.js"), To: filepath.Join(root, "src", "bad-file.js")},
		},
		CreatedFiles: []string{filepath.Join(root, "netlify.toml")},
		Errors:       []string{"renaming /srv/site/gone.jx: no such file or directory"},
	}
}

func TestRenderHealingReport_ContainsCounts(t *testing.T) {
	output := tui.RenderHealingReport(root, sampleReport())
	assert.Contains(t, output, "Auto-healing summary")
	assert.Contains(t, output, "Files renamed")
	assert.Contains(t, output, "Files created")
	assert.Contains(t, output, "Errors")
	assert.Contains(t, output, "2")
	assert.Contains(t, output, "1")
}

func TestRenderHealingReport_ListsRelativePaths(t *testing.T) {
	output := tui.RenderHealingReport(root, sampleReport())
	assert.Contains(t, output, "src/bad-file.js")
	assert.Contains(t, output, "netlify.toml")
	assert.NotContains(t, output, filepath.Join(root, "netlify.toml"))
}

func TestRenderHealingReport_ListsErrors(t *testing.T) {
	output := tui.RenderHealingReport(root, sampleReport())
	assert.Contains(t, output, "renaming /srv/site/gone.jx")
}

func TestRenderHealingReport_Empty(t *testing.T) {
	output := tui.RenderHealingReport(root, &domain.HealingReport{})
	assert.Contains(t, output, "Files renamed")
	assert.NotContains(t, output, "✗")
}

func TestRenderPublishResult(t *testing.T) {
	tests := []struct {
		name     string
		res      domain.PublishResult
		expected string
	}{
		{"success", domain.PublishResult{Status: domain.PublishSuccess, Commit: "0123456789abcdef"}, "0123456"},
		{"no changes", domain.PublishResult{Status: domain.PublishNoChanges}, "nothing to commit"},
		{"push failed", domain.PublishResult{Status: domain.PublishPushFailed, Error: "remote not found"}, "remote not found"},
		{"error", domain.PublishResult{Status: domain.PublishError, Error: "repository does not exist"}, "git operation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tui.RenderPublishResult(&tt.res)
			assert.Contains(t, output, "Publish")
			assert.Contains(t, output, tt.expected)
		})
	}
}
