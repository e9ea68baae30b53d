package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// newRootCommand creates the main root command that shows help by default.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "turnstile",
		Short:         "Pre-commit convention gate",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "turnstile.yml", "Path to config file")

	rootCmd.AddCommand(
		newCheckCommand(),
		newSetupCommand(),
		newStatusCommand(),
		newValidateCommand(),
	)

	return rootCmd
}

// configPathFromCommand resolves the --config flag against the project
// root when it is relative.
func configPathFromCommand(cmd *cobra.Command, root string) (string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", fmt.Errorf("failed to get config flag: %w", err)
	}
	return resolveConfigPath(configPath, root), nil
}

func resolveConfigPath(configPath, root string) string {
	if filepath.IsAbs(configPath) {
		return configPath
	}
	return filepath.Join(root, configPath)
}
