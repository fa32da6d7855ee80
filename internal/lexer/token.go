package lexer

import (
	"fmt"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
)

// Token is a single lexical unit. Every token carries its own Span so later
// stages never need to recompute positions from byte offsets, matching the
// teacher's convention of attaching a Position to every token.
type Token struct {
	Type    TokenType
	Literal string
	Span    diagnostics.Span
}

// IndentToken pairs a Token with an indentation Width in columns. The
// indentation processor does not produce it: the INDENT and DEDENT tokens
// it emits are plain Tokens, since the parser only needs the boundary,
// not the amount.
type IndentToken struct {
	Token
	Width int
}

func (t Token) String() string {
	if t.Literal == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
}

// Is reports whether the token has the given type, a small readability
// helper mirrored from the teacher's curTokenIs/peekTokenIs pattern.
func (t Token) Is(tt TokenType) bool {
	return t.Type == tt
}
