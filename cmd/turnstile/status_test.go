package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStatusNothingInstalled(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	status := buildStatus(fs, "/repo", "/repo/turnstile.yml")

	assert.Contains(t, status, "Turnstile Status:")
	assert.Contains(t, status, "Project root: /repo")
	assert.Contains(t, status, "Config file: NOT FOUND")
	assert.Contains(t, status, "Pre-commit hook: NOT INSTALLED")
}

func TestBuildStatusEverythingPresent(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/turnstile.yml", []byte("project:\n"), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/repo/.git/hooks/pre-commit", []byte("#!/bin/sh\n"), 0o755))

	status := buildStatus(fs, "/repo", "/repo/turnstile.yml")

	assert.Contains(t, status, "Config file: EXISTS")
	assert.Contains(t, status, "Pre-commit hook: INSTALLED")
	assert.NotContains(t, status, "NOT INSTALLED")
}
