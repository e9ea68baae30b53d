package checker

import "fmt"

// Severity classifies a finding as blocking or advisory.
type Severity int

const (
	// SeverityWarning findings are reported but never fail the run.
	SeverityWarning Severity = iota
	// SeverityError findings fail the run.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is a single reported issue. File and Line are optional; Line is
// 1-based when set.
type Finding struct {
	Message  string
	File     string
	Line     int
	Severity Severity
}

// String renders the finding with its location prefix when one exists.
func (f Finding) String() string {
	switch {
	case f.File != "" && f.Line > 0:
		return fmt.Sprintf("%s:%d: %s", f.File, f.Line, f.Message)
	case f.File != "":
		return fmt.Sprintf("%s: %s", f.File, f.Message)
	default:
		return f.Message
	}
}

// Verdict accumulates findings across all rules. Pass is determined by
// errors alone; warnings never block.
type Verdict struct {
	Errors   []Finding
	Warnings []Finding
}

// Pass reports whether the run should succeed.
func (v Verdict) Pass() bool {
	return len(v.Errors) == 0
}

// Strict returns a copy of the verdict with every warning promoted to an
// error.
func (v Verdict) Strict() Verdict {
	errors := make([]Finding, 0, len(v.Errors)+len(v.Warnings))
	errors = append(errors, v.Errors...)
	for _, f := range v.Warnings {
		f.Severity = SeverityError
		errors = append(errors, f)
	}
	return Verdict{Errors: errors}
}

func (v *Verdict) add(f Finding) {
	if f.Severity == SeverityError {
		v.Errors = append(v.Errors, f)
		return
	}
	v.Warnings = append(v.Warnings, f)
}

func errorf(format string, args ...any) Finding {
	return Finding{Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

func warnf(format string, args ...any) Finding {
	return Finding{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

func warnAt(file string, line int, format string, args ...any) Finding {
	return Finding{
		Severity: SeverityWarning,
		File:     file,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	}
}
