package checker

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretsEnvFileWithCredentials(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeRepoFile(t, fs, ".env", "DEBUG=1\nAPI_TOKEN=abc123\nDB_PASSWORD=\"hunter2\"\n")

	target := newTestTarget(t, fs, nil, CommitMessage{})
	findings := secretScanRule{}.Check(context.Background(), target)

	// First match wins: one finding regardless of how many keywords hit.
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "sensitive information")
}

func TestSecretsKeywordsCaseInsensitive(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeRepoFile(t, fs, ".env", "Secret = topsecret\n")

	target := newTestTarget(t, fs, nil, CommitMessage{})
	assert.Len(t, secretScanRule{}.Check(context.Background(), target), 1)
}

func TestSecretsCleanEnvFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeRepoFile(t, fs, ".env", "DEBUG=1\nPORT=8080\n")

	target := newTestTarget(t, fs, nil, CommitMessage{})
	assert.Empty(t, secretScanRule{}.Check(context.Background(), target))
}

func TestSecretsNoEnvFile(t *testing.T) {
	t.Parallel()

	target := newTestTarget(t, afero.NewMemMapFs(), nil, CommitMessage{})
	assert.Empty(t, secretScanRule{}.Check(context.Background(), target))
}
