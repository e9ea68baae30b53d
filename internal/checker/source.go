package checker

import (
	"context"
	"regexp"
	"strings"
)

const shebangLine = "#!/usr/bin/env python3"

var (
	// todoPattern matches work markers behind a comment marker, any case.
	todoPattern = regexp.MustCompile(`(?i)#\s*(TODO|FIXME|XXX|HACK)`)

	// printPattern matches debug prints. Structural syntax, so case matters.
	printPattern = regexp.MustCompile(`\bprint\s*\(`)
)

// sourceFileRule runs the per-file standards scans: shebang presence,
// leftover work markers, debug prints, and overlong lines.
type sourceFileRule struct{}

func (sourceFileRule) Name() string { return "source-standards" }

func (sourceFileRule) Check(_ context.Context, t *Target) []Finding {
	var findings []Finding

	for _, path := range t.sourceFiles() {
		content, ok, err := t.readFile(path)
		if err != nil {
			findings = append(findings, warnf("could not check %s: %v", path, err))
			continue
		}
		if !ok {
			continue
		}

		lines := strings.Split(content, "\n")

		findings = append(findings, checkShebang(t, path, content)...)
		findings = append(findings, checkTodos(path, lines)...)
		findings = append(findings, checkPrints(t, path, lines)...)
		findings = append(findings, checkLongLines(t, path, lines)...)
	}

	return findings
}

func checkShebang(t *Target, path, content string) []Finding {
	if t.inSourceDir(path) && !strings.HasPrefix(content, shebangLine) {
		return []Finding{{Severity: SeverityWarning, File: path, Message: "consider adding shebang line"}}
	}
	return nil
}

func checkTodos(path string, lines []string) []Finding {
	var findings []Finding
	for i, line := range lines {
		if todoPattern.MatchString(line) {
			findings = append(findings, warnAt(path, i+1,
				"found TODO/FIXME comment: %s", strings.TrimSpace(line)))
		}
	}
	return findings
}

func checkPrints(t *Target, path string, lines []string) []Finding {
	if !t.inSourceDir(path) || strings.Contains(path, "test") {
		return nil
	}
	var findings []Finding
	for i, line := range lines {
		// Full-line comments may talk about print() all they like.
		if printPattern.MatchString(line) && !strings.HasPrefix(strings.TrimSpace(line), "#") {
			findings = append(findings, warnAt(path, i+1,
				"use logging instead of print() in source code"))
		}
	}
	return findings
}

func checkLongLines(t *Target, path string, lines []string) []Finding {
	var findings []Finding
	for i, line := range lines {
		if len(line) > t.Config.Checks.MaxLineLength {
			findings = append(findings, warnAt(path, i+1,
				"very long line (%d chars), consider breaking", len(line)))
		}
	}
	return findings
}
