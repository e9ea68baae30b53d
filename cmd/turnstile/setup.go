package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/turnstile/internal/project"
	"github.com/wizzomafizzo/turnstile/internal/prompt"
	"github.com/wizzomafizzo/turnstile/internal/setup"
)

// newSetupCommand creates the setup command.
func newSetupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up the development environment",
		Long:  "Install dependencies with poetry, register pre-commit hooks, and write a starter config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			yes, err := cmd.Flags().GetBool("yes")
			if err != nil {
				return fmt.Errorf("failed to get yes flag: %w", err)
			}
			return runSetup(cmd, yes)
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func runSetup(cmd *cobra.Command, yes bool) error {
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

	if !yes {
		ok, promptErr := prompt.Confirm("Set up the development environment in " + root + "?")
		if promptErr != nil {
			return promptErr
		}
		if !ok {
			_, _ = fmt.Fprintln(out, "Setup cancelled")
			return nil
		}
	}

	manager := setup.New(fs, out, root, configPath)
	if err := manager.Run(cmd.Context()); err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}
	return nil
}
