package checker

import (
	"context"
	"regexp"
	"strings"
)

// headerPattern is the conventional-commit header grammar: a known type,
// an optional lowercase scope, and a 1-50 character description.
var headerPattern = regexp.MustCompile(
	`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)(\([a-z]+\))?: .{1,50}$`,
)

// commitMessageRule validates the most recent commit message against the
// commit template. An empty message is skipped entirely; git's own hooks
// reject those.
type commitMessageRule struct{}

func (commitMessageRule) Name() string { return "commit-message" }

func (commitMessageRule) Check(_ context.Context, t *Target) []Finding {
	if t.Commit.Empty() {
		return nil
	}

	var findings []Finding
	header := t.Commit.Header

	if !headerPattern.MatchString(header) {
		findings = append(findings, errorf(
			"commit message header doesn't follow 'type(scope): description' format: %q "+
				"(example: 'feat(api): Add new endpoint for user data', see CONTRIBUTING.md)",
			header,
		))
	}

	if strings.HasSuffix(header, ".") {
		findings = append(findings, errorf("commit message header should not end with a period"))
	}

	// Second line must be blank to separate header from body.
	if len(t.Commit.Body) > 0 && strings.TrimSpace(t.Commit.Body[0]) != "" {
		findings = append(findings, warnf("commit message should have a blank line after the header"))
	}

	return findings
}
