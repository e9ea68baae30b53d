// Package config loads the turnstile configuration file. Every field has
// a default; the file only overrides tunables, it cannot disable checks.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project ProjectConfig `yaml:"project"`
	Checks  ChecksConfig  `yaml:"checks"`
	Logging LoggingConfig `yaml:"logging"`
}

// ProjectConfig describes the layout of the checked project.
type ProjectConfig struct {
	SourceDir string `yaml:"source_dir"`
	SourceExt string `yaml:"source_ext"`
	TestsDir  string `yaml:"tests_dir"`
}

// ChecksConfig holds the tunable constants of the rule set. The defaults
// are the historical values; changing them changes which commits pass.
type ChecksConfig struct {
	MaxLineLength   int      `yaml:"max_line_length"`
	DocstringWindow int      `yaml:"docstring_window"`
	RequiredFiles   []string `yaml:"required_files"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// Load reads the config file at path, falling back to the defaults when
// the file does not exist.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return LoadFromYAML(data)
}

// LoadFromYAML parses config from YAML bytes over the defaults.
func LoadFromYAML(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

// Validate performs config validation.
func (c *Config) Validate() error {
	if c.Project.SourceDir == "" || strings.Contains(c.Project.SourceDir, "/") {
		return errors.New("project.source_dir must be a single directory name")
	}
	if !strings.HasPrefix(c.Project.SourceExt, ".") {
		return fmt.Errorf("project.source_ext must start with a dot, got %q", c.Project.SourceExt)
	}
	if c.Project.TestsDir == "" {
		return errors.New("project.tests_dir cannot be empty")
	}
	if c.Checks.MaxLineLength <= 0 {
		return fmt.Errorf("checks.max_line_length must be positive, got %d", c.Checks.MaxLineLength)
	}
	if c.Checks.DocstringWindow <= 0 {
		return fmt.Errorf("checks.docstring_window must be positive, got %d", c.Checks.DocstringWindow)
	}
	if len(c.Checks.RequiredFiles) == 0 {
		return errors.New("checks.required_files cannot be empty")
	}
	return nil
}
