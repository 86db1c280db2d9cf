package tui_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autoheal/autoheal/internal/adapters/outbound/tui"
	"github.com/autoheal/autoheal/internal/domain"
)

func sampleIssues() *domain.IssueSet {
	return &domain.IssueSet{
		InvalidFilenames: []domain.InvalidFilename{
			{Path: filepath.Join(root, "index.jx"), OriginalName: "index.jx", Suggestion: "index.js", Reason: "should be index.js"},
			{Path: filepath.Join(root, "assets", "My Logo.PNG"), OriginalName: "My Logo.PNG", Suggestion: "my-logo.png", Reason: "should be my-logo.png"},
		},
		MissingFiles: []domain.MissingFile{
			{File: "netlify.toml", Reason: "required for netlify deployment"},
		},
	}
}

func TestRenderIssues_ContainsHeader(t *testing.T) {
	output := tui.RenderIssues(root, sampleIssues())
	assert.Contains(t, output, "autoheal")
	assert.Contains(t, output, "Found 3 issues")
}

func TestRenderIssues_ContainsRenames(t *testing.T) {
	output := tui.RenderIssues(root, sampleIssues())
	assert.Contains(t, output, "Invalid Filenames")
	assert.Contains(t, output, "(2)")
	assert.Contains(t, output, "index.jx")
	assert.Contains(t, output, "index.js")
	assert.Contains(t, output, "my-logo.png")
	assert.Contains(t, output, "assets/")
}

func TestRenderIssues_ContainsMissingFiles(t *testing.T) {
	output := tui.RenderIssues(root, sampleIssues())
	assert.Contains(t, output, "Missing Files")
	assert.Contains(t, output, "netlify.toml")
	assert.Contains(t, output, "required for netlify deployment")
}

func TestRenderIssues_Empty(t *testing.T) {
	output := tui.RenderIssues(root, &domain.IssueSet{})
	assert.Contains(t, output, "No issues found")
	assert.NotContains(t, output, "Invalid Filenames")
	assert.NotContains(t, output, "Missing Files")
}

func TestRenderDryRunHint(t *testing.T) {
	assert.Contains(t, tui.RenderDryRunHint(), "--dry-run")
}
