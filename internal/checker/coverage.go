package checker

import (
	"context"
	"strings"

	"github.com/spf13/afero"
)

// testCoverageRule is a coarse heuristic: source changes ought to come
// with test changes, and the project ought to have a tests directory at
// all. Both findings are advisory.
type testCoverageRule struct{}

func (testCoverageRule) Name() string { return "test-coverage" }

func (testCoverageRule) Check(_ context.Context, t *Target) []Finding {
	srcPrefix := t.Config.Project.SourceDir + "/"

	var srcChanged, testChanged bool
	for _, f := range t.sourceFiles() {
		if strings.HasPrefix(f, srcPrefix) {
			srcChanged = true
		}
		if strings.Contains(f, "test") {
			testChanged = true
		}
	}

	if !srcChanged {
		return nil
	}

	var findings []Finding
	if !testChanged {
		findings = append(findings, warnf(
			"modified source files but no test files; consider adding or updating tests"))
	}

	testsDir := t.abs(t.Config.Project.TestsDir)
	if exists, err := afero.DirExists(t.FS, testsDir); err != nil || !exists {
		findings = append(findings, warnf(
			"no %s directory found; consider creating tests for your code",
			t.Config.Project.TestsDir))
	}

	return findings
}
