package checker

import (
	"context"
	"regexp"
)

var (
	relativeImportPattern = regexp.MustCompile(`from\s+\.\.?\s+import`)
	wildcardImportPattern = regexp.MustCompile(`from\s+\w+\s+import\s+\*`)
)

// importHygieneRule flags relative imports inside the source tree
// (advisory, they are sometimes appropriate) and wildcard imports anywhere
// (blocking).
type importHygieneRule struct{}

func (importHygieneRule) Name() string { return "import-hygiene" }

func (importHygieneRule) Check(_ context.Context, t *Target) []Finding {
	var findings []Finding

	for _, path := range t.sourceFiles() {
		content, ok, err := t.readFile(path)
		if err != nil {
			findings = append(findings, warnf("could not check imports in %s: %v", path, err))
			continue
		}
		if !ok {
			continue
		}

		if t.inSourceDir(path) && relativeImportPattern.MatchString(content) {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				File:     path,
				Message:  "uses relative imports - ensure they're appropriate",
			})
		}

		if wildcardImportPattern.MatchString(content) {
			findings = append(findings, Finding{
				Severity: SeverityError,
				File:     path,
				Message:  "avoid wildcard imports (from module import *)",
			})
		}
	}

	return findings
}
