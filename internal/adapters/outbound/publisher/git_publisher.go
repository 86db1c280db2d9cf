// Package publisher commits and pushes healed projects with go-git.
package publisher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/autoheal/autoheal/internal/domain"
)

// tokenUser is the basic-auth user name GitHub accepts alongside a token.
const tokenUser = "x-access-token"

// GitPublisher implements domain.RepoPublisher using go-git.
type GitPublisher struct {
	log domain.Logger
	now func() time.Time
}

func New(log domain.Logger) *GitPublisher {
	return &GitPublisher{log: log, now: time.Now}
}

// Publish stages everything, commits with req.Message and pushes to the
// configured remote. It never returns a Go error; failures are classified
// into the result status.
func (g *GitPublisher) Publish(ctx context.Context, projectPath string, req domain.PublishRequest) domain.PublishResult {
	repo, err := git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return g.fail(domain.PublishError, fmt.Errorf("opening git repo: %w", err))
	}

	wt, err := repo.Worktree()
	if err != nil {
		return g.fail(domain.PublishError, fmt.Errorf("opening worktree: %w", err))
	}

	status, err := wt.Status()
	if err != nil {
		return g.fail(domain.PublishError, fmt.Errorf("reading status: %w", err))
	}
	if status.IsClean() {
		g.log.Info("working tree clean, nothing to commit")
		return domain.PublishResult{Status: domain.PublishNoChanges}
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return g.fail(domain.PublishError, fmt.Errorf("staging changes: %w", err))
	}

	hash, err := wt.Commit(req.Message, &git.CommitOptions{
		All:    true,
		Author: g.signature(req.Commit),
	})
	if err != nil {
		return g.fail(domain.PublishError, fmt.Errorf("committing: %w", err))
	}
	g.log.Info("committed %s", hash.String()[:7])

	remote := req.Commit.Remote
	if remote == "" {
		remote = domain.DefaultRemote
	}
	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		Auth:       authFor(req.Token),
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		res := g.fail(domain.PublishPushFailed, fmt.Errorf("pushing to %s: %w", remote, err))
		res.Commit = hash.String()
		return res
	}

	g.log.Success("changes committed and pushed to %s", remote)
	return domain.PublishResult{Status: domain.PublishSuccess, Commit: hash.String()}
}

func (g *GitPublisher) signature(c domain.CommitConfig) *object.Signature {
	name, email := c.AuthorName, c.AuthorEmail
	if name == "" {
		name = domain.DefaultAuthorName
	}
	if email == "" {
		email = domain.DefaultAuthorEmail
	}
	return &object.Signature{Name: name, Email: email, When: g.now()}
}

func (g *GitPublisher) fail(status domain.PublishStatus, err error) domain.PublishResult {
	g.log.Error("git operation failed: %v", err)
	return domain.PublishResult{Status: status, Error: err.Error()}
}

func authFor(token string) transport.AuthMethod {
	if token == "" {
		return nil
	}
	return &http.BasicAuth{Username: tokenUser, Password: token}
}
