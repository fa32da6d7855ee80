package parser

import (
	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
)

// Precedence levels for expression parsing, lowest to highest, grounded
// on the teacher's internal/parser/parser.go precedence-constant table
// and adapted to Quorlin's (much smaller) operator set.
const (
	LOWEST = iota
	OR
	AND
	NOT
	COMPARE
	BITOR
	BITXOR
	BITAND
	SHIFT
	SUM
	PRODUCT
	POWER
	PREFIX
	CALL
	INDEX
	MEMBER
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:         OR,
	lexer.AND:        AND,
	lexer.EQ:         COMPARE,
	lexer.NOT_EQ:     COMPARE,
	lexer.LT:         COMPARE,
	lexer.GT:         COMPARE,
	lexer.LT_EQ:      COMPARE,
	lexer.GT_EQ:      COMPARE,
	lexer.IN:         COMPARE,
	lexer.PIPE:       BITOR,
	lexer.CARET:      BITXOR,
	lexer.AMP:        BITAND,
	lexer.SHL:        SHIFT,
	lexer.SHR:        SHIFT,
	lexer.PLUS:       SUM,
	lexer.MINUS:      SUM,
	lexer.STAR:       PRODUCT,
	lexer.SLASH:      PRODUCT,
	lexer.PERCENT:    PRODUCT,
	lexer.STAR_STAR:  POWER,
	lexer.LPAREN:     CALL,
	lexer.LBRACKET:   INDEX,
	lexer.DOT:        MEMBER,
}

type prefixParseFn func() (ast.Expr, *Error)
type infixParseFn func(ast.Expr) (ast.Expr, *Error)

// Parser holds the cursor over the token stream plus the Pratt-style
// prefix/infix dispatch tables, mirroring the shape of the teacher's
// Parser struct without its DWScript-specific block-recovery machinery:
// Quorlin's grammar has no statement-level error recovery requirement in
// spec.md, so parsing fails fast on the first error like every other
// stage.
type Parser struct {
	cursor *TokenCursor

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New constructs a Parser over an already indentation-processed token
// stream (see lexer.TokenizeIndented).
func New(tokens []lexer.Token) *Parser {
	p := &Parser{cursor: NewTokenCursor(tokens)}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:    p.parseIdentifier,
		lexer.SELF:     p.parseSelf,
		lexer.INT:      p.parseIntLiteral,
		lexer.FLOAT:    p.parseFloatLiteral,
		lexer.STRING:   p.parseStringLiteral,
		lexer.TRUE:     p.parseBoolLiteral,
		lexer.FALSE:    p.parseBoolLiteral,
		lexer.NONE:     p.parseNoneLiteral,
		lexer.MINUS:    p.parseUnaryExpr,
		lexer.NOT:      p.parseUnaryExpr,
		lexer.TILDE:    p.parseUnaryExpr,
		lexer.LPAREN:   p.parseGroupedOrTuple,
		lexer.LBRACKET: p.parseListLiteral,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:      p.parseBinaryExpr,
		lexer.MINUS:     p.parseBinaryExpr,
		lexer.STAR:      p.parseBinaryExpr,
		lexer.SLASH:     p.parseBinaryExpr,
		lexer.PERCENT:   p.parseBinaryExpr,
		lexer.STAR_STAR: p.parseBinaryExpr,
		lexer.EQ:        p.parseBinaryExpr,
		lexer.NOT_EQ:    p.parseBinaryExpr,
		lexer.LT:        p.parseBinaryExpr,
		lexer.GT:        p.parseBinaryExpr,
		lexer.LT_EQ:     p.parseBinaryExpr,
		lexer.GT_EQ:     p.parseBinaryExpr,
		lexer.AND:       p.parseBinaryExpr,
		lexer.OR:        p.parseBinaryExpr,
		lexer.AMP:       p.parseBinaryExpr,
		lexer.PIPE:      p.parseBinaryExpr,
		lexer.CARET:     p.parseBinaryExpr,
		lexer.SHL:       p.parseBinaryExpr,
		lexer.SHR:       p.parseBinaryExpr,
		lexer.IN:        p.parseBinaryExpr,
		lexer.LPAREN:    p.parseCallExpr,
		lexer.LBRACKET:  p.parseIndexExpr,
		lexer.DOT:       p.parseAttributeExpr,
	}

	return p
}

func (p *Parser) cur() lexer.Token       { return p.cursor.Current() }
func (p *Parser) peek(n int) lexer.Token { return p.cursor.Peek(n) }
func (p *Parser) advance() lexer.Token   { return p.cursor.Advance() }

func (p *Parser) curIs(tt lexer.TokenType) bool { return p.cur().Type == tt }

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, *Error) {
	if !p.curIs(tt) {
		return lexer.Token{}, unexpectedToken(p.cur(), tt.String())
	}
	return p.advance(), nil
}

// skipNewlines consumes zero or more Newline tokens, used between
// statements and around blank regions that survive the indent processor
// as logical-line separators.
func (p *Parser) skipNewlines() {
	for p.curIs(lexer.NEWLINE) {
		p.advance()
	}
}

func peekPrecedence(t lexer.Token) int {
	if pr, ok := precedences[t.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseModule parses the entire token stream into a Module: a run of
// import statements followed by top-level items, per spec.md §3's Module
// invariant that imports only ever precede other items.
func ParseModule(tokens []lexer.Token) (*ast.Module, *Error) {
	p := New(tokens)
	return p.parseModule()
}
