package application_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoheal/autoheal/internal/adapters/outbound/healer"
	"github.com/autoheal/autoheal/internal/adapters/outbound/logging"
	"github.com/autoheal/autoheal/internal/adapters/outbound/scanner"
	"github.com/autoheal/autoheal/internal/application"
	"github.com/autoheal/autoheal/internal/domain"
)

var deploymentFixture = map[string]string{
	"index.jx":         "console.log('This should be .js');",
	"readme.txt":       "Project description",
	"Bad File Name.js": "console.log('spaces in filename');",
	"my@file#123.html": "special chars in name",
	"netlify.toml":     "[build]\npublish = 'dist'",
}

func writeFixture(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return dir
}

// recordingPublisher captures publish calls instead of touching git.
type recordingPublisher struct {
	calls    []domain.PublishRequest
	response domain.PublishResult
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, req domain.PublishRequest) domain.PublishResult {
	p.calls = append(p.calls, req)
	return p.response
}

func newHealService(pub domain.RepoPublisher) *application.HealService {
	return newHealServiceFor(domain.DefaultConfig(), pub)
}

func newHealServiceFor(cfg domain.ProjectConfig, pub domain.RepoPublisher) *application.HealService {
	log := logging.Nop()
	return application.NewHealService(
		scanner.New(cfg.RuleSet(), log),
		healer.New(log),
		pub,
		cfg.Commit,
		log,
	)
}

func TestHealService_DryRunReportsWithoutTouchingFiles(t *testing.T) {
	dir := writeFixture(t, deploymentFixture)

	result, err := newHealService(nil).Run(context.Background(), dir, domain.RunOptions{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, domain.RunDryRun, result.Status)
	assert.Len(t, result.Issues.InvalidFilenames, 4)
	assert.Empty(t, result.Issues.MissingFiles)
	assert.Nil(t, result.Report)

	for name := range deploymentFixture {
		assert.FileExists(t, filepath.Join(dir, name), "dry run must not touch %s", name)
	}
}

func TestHealService_FullHeal(t *testing.T) {
	dir := writeFixture(t, deploymentFixture)

	result, err := newHealService(nil).Run(context.Background(), dir, domain.RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.RunHealed, result.Status)
	require.NotNil(t, result.Report)
	assert.Len(t, result.Report.RenamedFiles, 4)
	assert.Empty(t, result.Report.CreatedFiles)
	assert.Empty(t, result.Report.Errors)

	expected := map[string]string{
		"index.js":         "index.jx",
		"README.md":        "readme.txt",
		"bad-file-name.js": "Bad File Name.js",
		"my-file-123.html": "my@file#123.html",
	}
	for newName, oldName := range expected {
		data, err := os.ReadFile(filepath.Join(dir, newName))
		require.NoError(t, err)
		assert.Equal(t, deploymentFixture[oldName], string(data), "content of %s", newName)
		assert.NoFileExists(t, filepath.Join(dir, oldName))
	}

	data, err := os.ReadFile(filepath.Join(dir, "netlify.toml"))
	require.NoError(t, err)
	assert.Equal(t, deploymentFixture["netlify.toml"], string(data), "netlify.toml is untouched")

	again, err := newHealService(nil).Run(context.Background(), dir, domain.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.RunHealthy, again.Status, "a healed project has no issues")
}

func TestHealService_CreatesMissingManifest(t *testing.T) {
	dir := writeFixture(t, map[string]string{"index.html": "<html></html>"})

	result, err := newHealService(nil).Run(context.Background(), dir, domain.RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.RunHealed, result.Status)
	assert.Equal(t, []string{filepath.Join(dir, "netlify.toml")}, result.Report.CreatedFiles)
	assert.FileExists(t, filepath.Join(dir, "netlify.toml"))
}

func TestHealService_CaseOnlyManifestIsCreated(t *testing.T) {
	dir := writeFixture(t, map[string]string{"Netlify.toml": "[build]"})
	if _, err := os.Stat(filepath.Join(dir, "netlify.toml")); err == nil {
		t.Skip("filesystem is case-insensitive")
	}

	result, err := newHealService(nil).Run(context.Background(), dir, domain.RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.RunHealed, result.Status)
	assert.True(t, result.Issues.HasMissing("netlify.toml"))
	assert.Empty(t, result.Report.RenamedFiles, "case-only renames are skipped")
	assert.Empty(t, result.Report.Errors)
	assert.Equal(t, []string{filepath.Join(dir, "netlify.toml")}, result.Report.CreatedFiles)
	assert.FileExists(t, filepath.Join(dir, "netlify.toml"))
}

func TestHealService_RenameSatisfiesRequiredFile(t *testing.T) {
	dir := writeFixture(t, map[string]string{"index.htm": "<html></html>"})
	cfg := domain.DefaultConfig()
	cfg.Target = domain.TargetWeb

	result, err := newHealServiceFor(cfg, nil).Run(context.Background(), dir, domain.RunOptions{})
	require.NoError(t, err)

	assert.True(t, result.Issues.HasMissing("index.html"))
	require.Len(t, result.Report.RenamedFiles, 1)
	assert.Empty(t, result.Report.Errors)
	assert.Equal(t, []string{filepath.Join(dir, "package.json")}, result.Report.CreatedFiles,
		"index.html comes from the rename, not the template")
	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestHealService_HealthyProject(t *testing.T) {
	dir := writeFixture(t, map[string]string{"netlify.toml": "", "index.html": ""})
	pub := &recordingPublisher{}

	result, err := newHealService(pub).Run(context.Background(), dir, domain.RunOptions{Commit: true})
	require.NoError(t, err)

	assert.Equal(t, domain.RunHealthy, result.Status)
	assert.Nil(t, result.Publish)
	assert.Empty(t, pub.calls, "nothing to publish when nothing was healed")
}

func TestHealService_CommitPublishesAfterHeal(t *testing.T) {
	dir := writeFixture(t, deploymentFixture)
	pub := &recordingPublisher{response: domain.PublishResult{Status: domain.PublishSuccess, Commit: "abc1234"}}

	result, err := newHealService(pub).Run(context.Background(), dir, domain.RunOptions{Commit: true, Token: "secret"})
	require.NoError(t, err)

	require.Len(t, pub.calls, 1)
	assert.Equal(t, domain.CommitMessage, pub.calls[0].Message)
	assert.Equal(t, "secret", pub.calls[0].Token)
	assert.Equal(t, domain.DefaultRemote, pub.calls[0].Commit.Remote)
	require.NotNil(t, result.Publish)
	assert.Equal(t, domain.PublishSuccess, result.Publish.Status)
}

func TestHealService_NoCommitWithoutFlag(t *testing.T) {
	dir := writeFixture(t, deploymentFixture)
	pub := &recordingPublisher{}

	result, err := newHealService(pub).Run(context.Background(), dir, domain.RunOptions{})
	require.NoError(t, err)

	assert.Empty(t, pub.calls)
	assert.Nil(t, result.Publish)
}

func TestHealService_NoCommitWhenHealingFailed(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"netlify.toml": "",
		"My File.js":   "new",
		"my-file.js":   "existing",
	})
	pub := &recordingPublisher{}

	result, err := newHealService(pub).Run(context.Background(), dir, domain.RunOptions{Commit: true})
	require.NoError(t, err)

	assert.True(t, result.Report.HasErrors())
	assert.Empty(t, pub.calls)
	assert.Nil(t, result.Publish)
}

func TestHealService_PublisherFuncMock(t *testing.T) {
	dir := writeFixture(t, deploymentFixture)
	called := false
	pub := domain.PublisherFunc(func(_ context.Context, path string, _ domain.PublishRequest) domain.PublishResult {
		called = true
		return domain.PublishResult{Status: domain.PublishPushFailed, Error: "rejected"}
	})

	result, err := newHealService(pub).Run(context.Background(), dir, domain.RunOptions{Commit: true})
	require.NoError(t, err)

	assert.True(t, called)
	assert.Equal(t, domain.PublishPushFailed, result.Publish.Status)
	assert.Equal(t, domain.RunHealed, result.Status, "publish failure is not a run failure")
}

func TestHealService_StartupFailures(t *testing.T) {
	svc := newHealService(nil)

	_, err := svc.Run(context.Background(), filepath.Join(t.TempDir(), "missing"), domain.RunOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	_, err = svc.Run(context.Background(), file, domain.RunOptions{})
	assert.ErrorIs(t, err, domain.ErrNotDirectory)
}

func TestHealService_Analyze(t *testing.T) {
	dir := writeFixture(t, deploymentFixture)

	issues, err := newHealService(nil).Analyze(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, issues.Count(domain.KindInvalidFilename))
	assert.Equal(t, 0, issues.Count(domain.KindMissingFile))
}
