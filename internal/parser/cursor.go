// Package parser implements a recursive-descent, precedence-climbing
// parser over the indentation-processed token stream produced by
// internal/lexer, building the strongly-typed tree in internal/ast.
package parser

import "github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"

// TokenCursor provides one-token lookahead and mark/reset backtracking
// over an already-fully-tokenized stream, grounded on the teacher's
// internal/parser/cursor.go TokenCursor but backed directly by a slice
// since internal/lexer.TokenizeIndented materializes the whole stream up
// front rather than exposing a live, resumable lexer.
type TokenCursor struct {
	tokens []lexer.Token
	index  int
}

// NewTokenCursor wraps tokens, positioned at the first token.
func NewTokenCursor(tokens []lexer.Token) *TokenCursor {
	return &TokenCursor{tokens: tokens}
}

// Current returns the token at the cursor, or a synthetic EOF token if the
// cursor has run past the end of the stream.
func (c *TokenCursor) Current() lexer.Token {
	return c.Peek(0)
}

// Peek looks ahead n tokens from the cursor without consuming any,
// returning a synthetic EOF token past the end of the stream.
func (c *TokenCursor) Peek(n int) lexer.Token {
	i := c.index + n
	if i < 0 || i >= len(c.tokens) {
		if len(c.tokens) == 0 {
			return lexer.Token{Type: lexer.EOF}
		}
		return c.tokens[len(c.tokens)-1]
	}
	return c.tokens[i]
}

// Advance consumes and returns the current token.
func (c *TokenCursor) Advance() lexer.Token {
	t := c.Current()
	if c.index < len(c.tokens) {
		c.index++
	}
	return t
}

// Mark returns an opaque position usable with ResetTo, for speculative
// parses that may need to backtrack (e.g. disambiguating a tuple literal
// from a parenthesized expression).
func (c *TokenCursor) Mark() int { return c.index }

// ResetTo rewinds the cursor to a previously recorded Mark.
func (c *TokenCursor) ResetTo(mark int) { c.index = mark }

// AtEnd reports whether the cursor has consumed every token including the
// trailing EOF.
func (c *TokenCursor) AtEnd() bool {
	return c.index >= len(c.tokens) || c.Current().Type == lexer.EOF
}
