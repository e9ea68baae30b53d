package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRootFromGitMarker(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, ".git"), 0o755))
	nested := filepath.Join(tempDir, "src", "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	root, found := FindRootFrom(nested)
	assert.True(t, found)
	assert.Equal(t, tempDir, root)
}

func TestFindRootFromManifestMarker(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "pyproject.toml"), []byte("[tool]\n"), 0o600))

	root, found := FindRootFrom(tempDir)
	assert.True(t, found)
	assert.Equal(t, tempDir, root)
}

func TestFindRootFromNoMarker(t *testing.T) {
	t.Parallel()

	// A bare temp dir has no markers anywhere up to /tmp's root... unless
	// a parent happens to carry one, so check the found root if any.
	tempDir := t.TempDir()
	root, found := FindRootFrom(tempDir)
	if found {
		assert.NotEqual(t, tempDir, root)
	}
}
