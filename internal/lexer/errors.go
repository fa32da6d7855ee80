package lexer

import (
	"fmt"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
)

// Error is implemented by every lexer failure so the driver can render it
// uniformly through internal/diagnostics, mirroring the teacher's
// LexerError -> CompilerError conversion.
type Error interface {
	error
	Diagnostic(file, source string) diagnostics.Diagnostic
}

// InvalidTokenError reports a byte that matches no lexical rule.
type InvalidTokenError struct {
	Span diagnostics.Span
	Byte byte
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %q at %s", e.Byte, e.Span)
}

func (e *InvalidTokenError) Diagnostic(file, source string) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Message:  fmt.Sprintf("invalid character %q", e.Byte),
		File:     file,
		Span:     e.Span,
		Source:   source,
	}
}

// UnterminatedStringError reports a string literal with no closing quote
// before end of line or end of file.
type UnterminatedStringError struct {
	Span diagnostics.Span
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated string literal at %s", e.Span)
}

func (e *UnterminatedStringError) Diagnostic(file, source string) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Message:  "unterminated string literal",
		File:     file,
		Span:     e.Span,
		Source:   source,
	}
}

// IndentationError reports a dedent that does not match any enclosing
// indentation level. Indentation is compared by column only; a tab counts
// as one column, and mixed tabs and spaces are not checked separately.
type IndentationError struct {
	Span    diagnostics.Span
	Message string
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Span)
}

func (e *IndentationError) Diagnostic(file, source string) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Message:  e.Message,
		File:     file,
		Span:     e.Span,
		Source:   source,
	}
}
