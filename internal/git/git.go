// Package git is the version-control collaborator. Both queries are
// single blocking attempts: if git is missing, the directory is not a
// repository, or there is no commit yet, they degrade to empty results
// instead of returning errors.
package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// CommandRunner executes a git subcommand in dir and returns its stdout.
// Tests substitute a fake; production uses the git binary.
type CommandRunner func(ctx context.Context, dir string, args ...string) ([]byte, error)

func runGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	return cmd.Output() //nolint:wrapcheck // callers degrade on any failure
}

// Client queries the repository at a fixed directory.
type Client struct {
	run CommandRunner
	dir string
}

// New creates a client backed by the git binary.
func New(dir string) *Client {
	return &Client{dir: dir, run: runGit}
}

// NewWithRunner creates a client with a custom runner, for tests.
func NewWithRunner(dir string, run CommandRunner) *Client {
	return &Client{dir: dir, run: run}
}

// StagedFiles returns the relative paths of files staged for commit, or
// nil when the query fails or nothing is staged.
func (c *Client) StagedFiles(ctx context.Context) []string {
	out, err := c.run(ctx, c.dir, "diff", "--cached", "--name-only")
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("could not list staged files")
		return nil
	}

	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// LastCommitMessage returns the full message of HEAD, or "" when there is
// no commit yet or the query fails.
func (c *Client) LastCommitMessage(ctx context.Context) string {
	out, err := c.run(ctx, c.dir, "log", "--format=%B", "-n", "1", "HEAD")
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("could not read last commit message")
		return ""
	}
	return strings.TrimSpace(string(out))
}
