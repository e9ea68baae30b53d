package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Default returns the default turnstile configuration. The checks values
// are long-standing project conventions; the docstring window in
// particular is a heuristic constant that flagging behavior depends on.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			SourceDir: "src",
			SourceExt: ".py",
			TestsDir:  "tests",
		},
		Checks: ChecksConfig{
			MaxLineLength:   120,
			DocstringWindow: 200,
			RequiredFiles: []string{
				"pyproject.toml",
				"README.md",
				"CONTRIBUTING.md",
				".pre-commit-config.yaml",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// DefaultYAML returns the default configuration as YAML bytes, used to
// write a starter config file during setup.
func DefaultYAML() ([]byte, error) {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
