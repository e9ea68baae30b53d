package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(afero.NewMemMapFs(), "/repo/turnstile.yml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	yamlContent := `project:
  source_dir: lib
checks:
  max_line_length: 100
`
	require.NoError(t, afero.WriteFile(fs, "/repo/turnstile.yml", []byte(yamlContent), 0o600))

	cfg, err := Load(fs, "/repo/turnstile.yml")
	require.NoError(t, err)

	assert.Equal(t, "lib", cfg.Project.SourceDir)
	assert.Equal(t, 100, cfg.Checks.MaxLineLength)

	// Untouched fields keep their defaults.
	assert.Equal(t, ".py", cfg.Project.SourceExt)
	assert.Equal(t, 200, cfg.Checks.DocstringWindow)
	assert.Len(t, cfg.Checks.RequiredFiles, 4)
}

func TestLoadFromYAMLInvalidSyntax(t *testing.T) {
	t.Parallel()

	_, err := LoadFromYAML([]byte("project: [not: a: mapping"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty source dir", func(c *Config) { c.Project.SourceDir = "" }},
		{"nested source dir", func(c *Config) { c.Project.SourceDir = "src/app" }},
		{"extension without dot", func(c *Config) { c.Project.SourceExt = "py" }},
		{"empty tests dir", func(c *Config) { c.Project.TestsDir = "" }},
		{"zero line length", func(c *Config) { c.Checks.MaxLineLength = 0 }},
		{"negative docstring window", func(c *Config) { c.Checks.DocstringWindow = -1 }},
		{"no required files", func(c *Config) { c.Checks.RequiredFiles = nil }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Default().Validate())
}

func TestDefaultYAMLRoundTrips(t *testing.T) {
	t.Parallel()

	data, err := DefaultYAML()
	require.NoError(t, err)

	cfg, err := LoadFromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
