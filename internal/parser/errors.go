package parser

import (
	"fmt"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
)

// Error is the parser's single error type, carrying enough context to
// render a diagnostics.Diagnostic without the caller needing to know
// which production failed.
type Error struct {
	Message string
	Span    diagnostics.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Span)
}

// Diagnostic converts the parser error into the shared rendering type.
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

func unexpectedToken(got lexer.Token, want string) *Error {
	return errorf(got.Span, "expected %s, got %s", want, got.Type)
}
