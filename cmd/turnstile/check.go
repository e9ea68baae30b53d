package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/turnstile/internal/checker"
	"github.com/wizzomafizzo/turnstile/internal/config"
	"github.com/wizzomafizzo/turnstile/internal/git"
	"github.com/wizzomafizzo/turnstile/internal/logging"
	"github.com/wizzomafizzo/turnstile/internal/project"
	"github.com/wizzomafizzo/turnstile/internal/report"
)

// newCheckCommand creates the check command.
func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check staged files and the last commit message",
		Long: "Check staged files and the last commit message against project conventions. " +
			"Exits 0 when no blocking errors are found.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			strict, err := cmd.Flags().GetBool("strict")
			if err != nil {
				return fmt.Errorf("failed to get strict flag: %w", err)
			}
			return runCheck(cmd, strict)
		},
	}

	cmd.Flags().Bool("strict", false, "Treat warnings as errors")
	return cmd
}

func runCheck(cmd *cobra.Command, strict bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	fs := afero.NewOsFs()

	root, err := project.FindRoot()
	if err != nil {
		return fmt.Errorf("failed to locate project root: %w", err)
	}

	configPath, err := configPathFromCommand(cmd, root)
	if err != nil {
		return err
	}
	cfg, err := config.Load(fs, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Logging is best effort; an unwritable data dir must not block a
	// commit.
	if lctx, logErr := logging.New(ctx, fs, logging.Config{
		Level:    logging.ParseLevel(cfg.Logging.Level),
		Rotation: cfg.Logging,
	}); logErr == nil {
		ctx = lctx
	}

	repo := git.New(root)
	files := checker.ChangeSet(repo.StagedFiles(ctx))
	if len(files) == 0 {
		_, _ = fmt.Fprintln(out, "No staged files to check")
		return nil
	}

	commit := checker.ParseCommitMessage(repo.LastCommitMessage(ctx))

	verdict := checker.New(fs, root, cfg).Evaluate(ctx, files, commit)
	if strict {
		verdict = verdict.Strict()
	}

	report.Write(out, verdict)

	if !verdict.Pass() {
		return &ExitError{Code: 1}
	}
	return nil
}
