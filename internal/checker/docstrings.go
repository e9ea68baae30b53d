package checker

import (
	"context"
	"regexp"
	"strings"
)

// funcDefPattern captures the function name from a def statement.
var funcDefPattern = regexp.MustCompile(`def\s+([a-zA-Z_]\w*)\s*\(`)

// docstringRule checks source-directory files for module and public
// function docstrings. Both checks are textual heuristics: a triple quote
// near the right place counts, and a docstring further than
// docstring_window characters into a function body is missed on purpose.
type docstringRule struct{}

func (docstringRule) Name() string { return "docstrings" }

func (docstringRule) Check(_ context.Context, t *Target) []Finding {
	var findings []Finding

	for _, path := range t.sourceFiles() {
		if !t.inSourceDir(path) {
			continue
		}

		content, ok, err := t.readFile(path)
		if err != nil {
			findings = append(findings, warnf("could not check docstrings in %s: %v", path, err))
			continue
		}
		if !ok {
			continue
		}

		if !hasModuleDocstring(content) {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				File:     path,
				Message:  "missing module docstring",
			})
		}

		findings = append(findings, checkFunctionDocstrings(t, path, content)...)
	}

	return findings
}

// hasModuleDocstring reports whether the first non-blank, non-comment
// content opens a triple-quoted string.
func hasModuleDocstring(content string) bool {
	stripped := strings.TrimSpace(content)
	if strings.HasPrefix(stripped, `"""`) || strings.HasPrefix(stripped, "'''") {
		return true
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return strings.HasPrefix(line, `"""`) || strings.HasPrefix(line, "'''")
	}
	return false
}

func checkFunctionDocstrings(t *Target, path, content string) []Finding {
	var findings []Finding
	window := t.Config.Checks.DocstringWindow

	for _, match := range funcDefPattern.FindAllStringSubmatchIndex(content, -1) {
		name := content[match[2]:match[3]]
		if strings.HasPrefix(name, "_") {
			continue
		}

		remaining := content[match[1]:]
		if len(remaining) > window {
			remaining = remaining[:window]
		}
		if !strings.Contains(remaining, `"""`) && !strings.Contains(remaining, "'''") {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				File:     path,
				Message:  "function '" + name + "' missing docstring",
			})
		}
	}

	return findings
}
