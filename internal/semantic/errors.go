package semantic

import (
	"fmt"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
)

// Error is the analyzer's single fail-fast error type: the first
// unresolved name, type mismatch, or control-flow violation stops
// analysis, matching every other stage's "value or one error" contract.
// The security pass is distinct: it collects Warning values and never
// fails the build on its own.
type Error struct {
	Message string
	Span    diagnostics.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Span)
}

func (e *Error) Diagnostic(file, source string) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Message:  e.Message,
		File:     file,
		Span:     e.Span,
		Source:   source,
	}
}

func errorf(span diagnostics.Span, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Span: span}
}

// WarningKind classifies a security pass finding.
type WarningKind int

const (
	WarningMissingAccessControl WarningKind = iota
	WarningReentrancyRisk
	WarningCEIViolation
)

func (k WarningKind) String() string {
	switch k {
	case WarningMissingAccessControl:
		return "missing access control"
	case WarningReentrancyRisk:
		return "reentrancy risk"
	case WarningCEIViolation:
		return "checks-effects-interactions violation"
	default:
		return "unknown"
	}
}

// Warning is one finding from the static security pass.
type Warning struct {
	Kind     WarningKind
	Function string
	Message  string
	Span     diagnostics.Span
}

func (w Warning) Diagnostic(file, source string) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityWarning,
		Message:  w.Message,
		File:     file,
		Span:     w.Span,
		Source:   source,
	}
}
