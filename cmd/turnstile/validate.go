package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/turnstile/internal/config"
	"github.com/wizzomafizzo/turnstile/internal/project"
)

// newValidateCommand creates the validate command.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := project.FindRoot()
			if err != nil {
				return fmt.Errorf("failed to locate project root: %w", err)
			}

			configPath, err := configPathFromCommand(cmd, root)
			if err != nil {
				return err
			}

			if _, err := config.Load(afero.NewOsFs(), configPath); err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration valid: %s\n", configPath)
			return nil
		},
	}
}
