package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/turnstile/internal/project"
)

// newStatusCommand creates the status command.
func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show config and hook status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := project.FindRoot()
			if err != nil {
				return fmt.Errorf("failed to locate project root: %w", err)
			}

			configPath, err := configPathFromCommand(cmd, root)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), buildStatus(afero.NewOsFs(), root, configPath))
			if err != nil {
				return fmt.Errorf("failed to print status: %w", err)
			}
			return nil
		},
	}
}

func buildStatus(fs afero.Fs, root, configPath string) string {
	var status strings.Builder

	writeString := func(s string) {
		_, _ = status.WriteString(s)
	}

	writeString("Turnstile Status:\n")
	writeString("=================\n\n")

	writeString(fmt.Sprintf("Project root: %s\n", root))

	if exists, _ := afero.Exists(fs, configPath); exists {
		writeString("Config file: EXISTS\n")
		writeString(fmt.Sprintf("   Location: %s\n", configPath))
	} else {
		writeString("Config file: NOT FOUND (defaults in effect)\n")
		writeString(fmt.Sprintf("   Expected: %s\n", configPath))
	}

	hookPath := filepath.Join(root, ".git", "hooks", "pre-commit")
	if exists, _ := afero.Exists(fs, hookPath); exists {
		writeString("Pre-commit hook: INSTALLED\n")
	} else {
		writeString("Pre-commit hook: NOT INSTALLED (run 'turnstile setup')\n")
	}

	return status.String()
}
