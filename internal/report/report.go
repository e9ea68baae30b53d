// Package report renders a verdict as the human-readable pre-commit
// summary: errors first, then warnings, then a status line. Nothing
// machine-parses this output.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/turnstile/internal/checker"
)

var (
	errorHeader   = color.New(color.FgRed, color.Bold)
	warningHeader = color.New(color.FgYellow, color.Bold)
	passStatus    = color.New(color.FgGreen)
	failStatus    = color.New(color.FgRed, color.Bold)
)

// Write prints the grouped report for a verdict.
func Write(w io.Writer, v checker.Verdict) {
	if len(v.Errors) > 0 {
		_, _ = errorHeader.Fprintln(w, "ERRORS (must fix):")
		for _, f := range v.Errors {
			_, _ = fmt.Fprintf(w, "  %s\n", f)
		}
		_, _ = fmt.Fprintln(w)
	}

	if len(v.Warnings) > 0 {
		_, _ = warningHeader.Fprintln(w, "WARNINGS (recommended to fix):")
		for _, f := range v.Warnings {
			_, _ = fmt.Fprintf(w, "  %s\n", f)
		}
		_, _ = fmt.Fprintln(w)
	}

	writeStatus(w, v)
}

func writeStatus(w io.Writer, v checker.Verdict) {
	switch {
	case len(v.Errors) == 0 && len(v.Warnings) == 0:
		_, _ = passStatus.Fprintln(w, "All pre-commit checks passed")
	case len(v.Errors) == 0:
		_, _ = passStatus.Fprintln(w, "No blocking errors found, warnings can be addressed later")
	default:
		_, _ = failStatus.Fprintln(w, "Pre-commit checks failed, fix the errors above")
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Tips:")
		_, _ = fmt.Fprintln(w, "  - See CONTRIBUTING.md for detailed guidelines")
		_, _ = fmt.Fprintln(w, "  - Run 'poetry run black src/' to format code")
		_, _ = fmt.Fprintln(w, "  - Run 'poetry run ruff check src/' to check linting")
		_, _ = fmt.Fprintln(w, "  - Run 'poetry run mypy src/' to check types")
	}
}
