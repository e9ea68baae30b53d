// Package setup bootstraps the development environment: it verifies
// poetry, installs dependencies, registers the pre-commit hooks, and runs
// an initial all-files check.
package setup

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/turnstile/internal/config"
)

// CommandRunner executes a tool in dir and returns its combined output.
type CommandRunner func(ctx context.Context, dir string, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput() //nolint:wrapcheck // callers wrap with step context
}

// Manager runs the setup steps against a project directory.
type Manager struct {
	fs         afero.Fs
	out        io.Writer
	run        CommandRunner
	dir        string
	configPath string
}

// New creates a setup manager using the real command runner.
func New(fs afero.Fs, out io.Writer, dir, configPath string) *Manager {
	return NewWithRunner(fs, out, dir, configPath, runCommand)
}

// NewWithRunner creates a setup manager with a custom runner, for tests.
func NewWithRunner(fs afero.Fs, out io.Writer, dir, configPath string, run CommandRunner) *Manager {
	return &Manager{fs: fs, out: out, run: run, dir: dir, configPath: configPath}
}

// Run executes the full setup flow. The first failed required step stops
// the run; the initial all-files check only reports.
func (m *Manager) Run(ctx context.Context) error {
	if err := m.step(ctx, "Checking Poetry installation", "poetry", "--version"); err != nil {
		_, _ = fmt.Fprintln(m.out, "Poetry is not installed, see https://python-poetry.org/docs/#installation")
		return err
	}

	if err := m.step(ctx, "Installing dependencies", "poetry", "install"); err != nil {
		return err
	}

	if err := m.step(ctx, "Installing pre-commit hooks", "poetry", "run", "pre-commit", "install"); err != nil {
		return err
	}

	// Exercises the freshly installed hooks; findings here are expected
	// on a dirty tree, so a failure only warns.
	if err := m.step(ctx, "Running initial pre-commit check",
		"poetry", "run", "pre-commit", "run", "--all-files"); err != nil {
		color.New(color.FgYellow).Fprintln(m.out,
			"Pre-commit found issues, run 'poetry run pre-commit run --all-files' to see details")
	}

	if err := m.ensureConfig(); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintln(m.out, "Development environment setup complete")
	return nil
}

// step runs one command, printing a progress line and the failure output
// when the command exits non-zero.
func (m *Manager) step(ctx context.Context, description, name string, args ...string) error {
	_, _ = fmt.Fprintf(m.out, "%s...\n", description)

	out, err := m.run(ctx, m.dir, name, args...)
	if err != nil {
		color.New(color.FgRed).Fprintf(m.out, "%s failed\n", description)
		if trimmed := strings.TrimSpace(string(out)); trimmed != "" {
			_, _ = fmt.Fprintf(m.out, "   %s\n", trimmed)
		}
		zerolog.Ctx(ctx).Debug().Err(err).Str("step", description).Msg("setup step failed")
		return fmt.Errorf("%s: %w", strings.ToLower(description[:1])+description[1:], err)
	}

	color.New(color.FgGreen).Fprintf(m.out, "%s completed\n", description)
	return nil
}

// ensureConfig writes the starter config file when none exists yet.
func (m *Manager) ensureConfig() error {
	if _, err := m.fs.Stat(m.configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	data, err := config.DefaultYAML()
	if err != nil {
		return err //nolint:wrapcheck // already descriptive
	}
	if err := afero.WriteFile(m.fs, m.configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file to %s: %w", m.configPath, err)
	}

	_, _ = fmt.Fprintf(m.out, "Wrote starter config to %s\n", m.configPath)
	return nil
}
