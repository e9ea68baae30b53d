package checker

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/turnstile/internal/config"
)

const testRoot = "/repo"

func newTestTarget(t *testing.T, fs afero.Fs, files []string, commit CommitMessage) *Target {
	t.Helper()
	return &Target{
		FS:     fs,
		Config: config.Default(),
		Root:   testRoot,
		Files:  files,
		Commit: commit,
	}
}

func writeRepoFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	full := filepath.Join(testRoot, path)
	require.NoError(t, fs.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, afero.WriteFile(fs, full, []byte(content), 0o644))
}

// errorFs fails opening one path, so rules hit their read-failure branch.
type errorFs struct {
	afero.Fs
	failOn string
}

func (e *errorFs) Open(name string) (afero.File, error) {
	if name == e.failOn {
		return nil, fmt.Errorf("open %s: permission denied", name)
	}
	return e.Fs.Open(name) //nolint:wrapcheck // test helper
}
