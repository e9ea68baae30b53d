package testutil

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

// Context returns a context carrying a logger that writes through the
// test log, so rule-engine debug output lands next to failures.
func Context(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}
