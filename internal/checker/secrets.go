package checker

import (
	"context"
	"regexp"

	"github.com/spf13/afero"
)

// secretPatterns match common credential keywords assigned to a value.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)password\s*=\s*["']?[^"'\s]+`),
	regexp.MustCompile(`(?i)secret\s*=\s*["']?[^"'\s]+`),
	regexp.MustCompile(`(?i)token\s*=\s*["']?[^"'\s]+`),
	regexp.MustCompile(`(?i)key\s*=\s*["']?[^"'\s]+`),
}

// secretScanRule warns once if the local .env file looks like it holds
// credentials. First match wins; the point is the reminder, not an
// inventory.
type secretScanRule struct{}

func (secretScanRule) Name() string { return "secret-scan" }

func (secretScanRule) Check(_ context.Context, t *Target) []Finding {
	envPath := t.abs(".env")
	if exists, err := afero.Exists(t.FS, envPath); err != nil || !exists {
		return nil
	}

	data, err := afero.ReadFile(t.FS, envPath)
	if err != nil {
		return nil
	}

	for _, pattern := range secretPatterns {
		if pattern.Match(data) {
			return []Finding{warnf(
				".env file may contain sensitive information; ensure it's in .gitignore and not committed")}
		}
	}

	return nil
}
