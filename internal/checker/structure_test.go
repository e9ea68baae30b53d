package checker

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRequiredFiles(t *testing.T, fs afero.Fs) {
	t.Helper()
	for _, name := range []string{"pyproject.toml", "README.md", "CONTRIBUTING.md", ".pre-commit-config.yaml"} {
		writeRepoFile(t, fs, name, "placeholder\n")
	}
}

func TestStructureAllPresent(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeRequiredFiles(t, fs)
	writeRepoFile(t, fs, "src/__init__.py", "")

	target := newTestTarget(t, fs, nil, CommitMessage{})
	assert.Empty(t, fileStructureRule{}.Check(context.Background(), target))
}

func TestStructureMissingRequiredFiles(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeRepoFile(t, fs, "pyproject.toml", "placeholder\n")
	writeRepoFile(t, fs, "README.md", "placeholder\n")

	target := newTestTarget(t, fs, nil, CommitMessage{})
	findings := fileStructureRule{}.Check(context.Background(), target)

	require.Len(t, findings, 2)
	for _, f := range findings {
		assert.Equal(t, SeverityError, f.Severity)
		assert.Contains(t, f.Message, "missing required file")
	}
	assert.Contains(t, findings[0].Message, "CONTRIBUTING.md")
	assert.Contains(t, findings[1].Message, ".pre-commit-config.yaml")
}

func TestStructureMissingPackageMarker(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeRequiredFiles(t, fs)
	writeRepoFile(t, fs, "src/app.py", "x = 1\n")

	target := newTestTarget(t, fs, nil, CommitMessage{})
	findings := fileStructureRule{}.Check(context.Background(), target)

	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "src/__init__.py missing")
}

func TestStructureNoSourceDirNoMarkerWarning(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeRequiredFiles(t, fs)

	target := newTestTarget(t, fs, nil, CommitMessage{})
	assert.Empty(t, fileStructureRule{}.Check(context.Background(), target))
}
