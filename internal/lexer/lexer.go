package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
	"golang.org/x/text/unicode/norm"
)

// Option configures a Lexer at construction time, mirroring the teacher's
// functional-options LexerOption pattern in internal/lexer/lexer.go.
type Option func(*Lexer)

// WithoutNormalization disables the default NFC normalization pass, for
// callers (tests, fixtures) that want to feed already-normalized or
// intentionally non-normalized byte sequences through unchanged.
func WithoutNormalization() Option {
	return func(l *Lexer) { l.normalize = false }
}

// Lexer is the raw, indentation-blind tokenizer: it scans runes, tracks
// bracket nesting so Newline tokens are suppressed inside ( [ {, and
// reports a single error per call rather than accumulating a list, since
// each compiler stage returns either a value or one error.
type Lexer struct {
	input     []rune
	pos       int
	line      int
	column    int
	bracket   int
	normalize bool
}

// New constructs a Lexer over source, applying opts. Source is NFC
// normalized by default before scanning, per SPEC_FULL.md's ambient
// Unicode-normalization rule.
func New(source string, opts ...Option) *Lexer {
	l := &Lexer{line: 1, column: 1, normalize: true}
	for _, opt := range opts {
		opt(l)
	}
	if l.normalize {
		source = norm.NFC.String(source)
	}
	l.input = []rune(source)
	return l
}

func (l *Lexer) peek(offset int) rune {
	i := l.pos + offset
	if i < 0 || i >= len(l.input) {
		return 0
	}
	return l.input[i]
}

func (l *Lexer) current() rune { return l.peek(0) }

func (l *Lexer) advance() rune {
	ch := l.current()
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.input) }

func (l *Lexer) spanFrom(startLine, startCol, startPos int) diagnostics.Span {
	return diagnostics.Span{Start: startPos, End: l.pos, Line: startLine, Column: startCol}
}

// NextToken scans and returns the next raw token. Returning (Token{Type:
// EOF}, nil) signals clean end of input; a non-nil error means the
// lexer encountered a byte or sequence it cannot classify.
func (l *Lexer) NextToken() (Token, Error) {
	l.skipIntraLineWhitespaceAndComments()

	startLine, startCol, startPos := l.line, l.column, l.pos

	if l.atEnd() {
		return Token{Type: EOF, Span: l.spanFrom(startLine, startCol, startPos)}, nil
	}

	ch := l.current()

	switch {
	case ch == '\n':
		l.advance()
		span := l.spanFrom(startLine, startCol, startPos)
		if l.bracket > 0 {
			return l.NextToken()
		}
		return Token{Type: NEWLINE, Span: span}, nil
	case ch == '#':
		l.skipLineComment()
		return l.NextToken()
	case ch == '\\' && l.peek(1) == '\n':
		// Explicit line continuation: consume both and keep scanning on
		// the same logical line.
		l.advance()
		l.advance()
		return l.NextToken()
	case unicode.IsLetter(ch) || ch == '_':
		return l.scanIdentifier(startLine, startCol, startPos), nil
	case unicode.IsDigit(ch):
		return l.scanNumber(startLine, startCol, startPos), nil
	case ch == '"' || ch == '\'':
		return l.scanString(startLine, startCol, startPos)
	default:
		return l.scanOperator(startLine, startCol, startPos)
	}
}

// skipIntraLineWhitespaceAndComments consumes spaces, tabs, and carriage
// returns, leading indentation included: the indent processor measures
// indentation from the column of a line's first token. `#` comments are
// skipped by NextToken, not here.
func (l *Lexer) skipIntraLineWhitespaceAndComments() {
	for !l.atEnd() {
		switch l.current() {
		case ' ', '\t', '\r':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	for !l.atEnd() && l.current() != '\n' {
		l.advance()
	}
}

func (l *Lexer) scanIdentifier(line, col, pos int) Token {
	var buf []rune
	for !l.atEnd() && (unicode.IsLetter(l.current()) || unicode.IsDigit(l.current()) || l.current() == '_') {
		buf = append(buf, l.advance())
	}
	lit := string(buf)
	return Token{Type: LookupIdent(lit), Literal: lit, Span: l.spanFrom(line, col, pos)}
}

func (l *Lexer) scanNumber(line, col, pos int) Token {
	var buf []rune
	isFloat := false

	if l.current() == '0' && (l.peek(1) == 'x' || l.peek(1) == 'X') {
		buf = append(buf, l.advance(), l.advance())
		for !l.atEnd() && (isHexDigit(l.current()) || l.current() == '_') {
			if ch := l.advance(); ch != '_' {
				buf = append(buf, ch)
			}
		}
		return Token{Type: INT, Literal: string(buf), Span: l.spanFrom(line, col, pos)}
	}

	for !l.atEnd() && (unicode.IsDigit(l.current()) || l.current() == '_') {
		if ch := l.advance(); ch != '_' {
			buf = append(buf, ch)
		}
	}
	if l.current() == '.' && unicode.IsDigit(l.peek(1)) {
		isFloat = true
		buf = append(buf, l.advance())
		for !l.atEnd() && (unicode.IsDigit(l.current()) || l.current() == '_') {
			if ch := l.advance(); ch != '_' {
				buf = append(buf, ch)
			}
		}
	}

	tt := INT
	if isFloat {
		tt = FLOAT
	}
	return Token{Type: tt, Literal: string(buf), Span: l.spanFrom(line, col, pos)}
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (l *Lexer) scanString(line, col, pos int) (Token, Error) {
	quote := l.advance()
	var buf []rune
	for {
		if l.atEnd() || l.current() == '\n' {
			return Token{}, &UnterminatedStringError{Span: l.spanFrom(line, col, pos)}
		}
		if l.current() == quote {
			l.advance()
			break
		}
		if l.current() == '\\' {
			l.advance()
			buf = append(buf, decodeEscape(l.advance()))
			continue
		}
		buf = append(buf, l.advance())
	}
	return Token{Type: STRING, Literal: string(buf), Span: l.spanFrom(line, col, pos)}, nil
}

func decodeEscape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return r
	}
}

// operatorHandlers dispatches each punctuation start-rune to a scanning
// function, mirroring the teacher's map[rune]tokenHandler dispatch table
// instead of one long switch for multi-character operators.
var operatorHandlers = map[rune]func(*Lexer, int, int, int) Token{
	'+': scanPlus,
	'-': scanMinus,
	'*': scanStar,
	'/': scanSlash,
	'%': scanPercent,
	'=': scanAssign,
	'!': scanBang,
	'<': scanLess,
	'>': scanGreater,
	'&': func(l *Lexer, ln, c, p int) Token { l.advance(); return tok(AMP, l, ln, c, p) },
	'|': func(l *Lexer, ln, c, p int) Token { l.advance(); return tok(PIPE, l, ln, c, p) },
	'^': func(l *Lexer, ln, c, p int) Token { l.advance(); return tok(CARET, l, ln, c, p) },
	'~': func(l *Lexer, ln, c, p int) Token { l.advance(); return tok(TILDE, l, ln, c, p) },
	',': func(l *Lexer, ln, c, p int) Token { l.advance(); return tok(COMMA, l, ln, c, p) },
	':': func(l *Lexer, ln, c, p int) Token { l.advance(); return tok(COLON, l, ln, c, p) },
	'.': func(l *Lexer, ln, c, p int) Token { l.advance(); return tok(DOT, l, ln, c, p) },
	'@': func(l *Lexer, ln, c, p int) Token { l.advance(); return tok(AT, l, ln, c, p) },
	';': func(l *Lexer, ln, c, p int) Token { l.advance(); return tok(SEMICOLON, l, ln, c, p) },
}

func tok(tt TokenType, l *Lexer, line, col, pos int) Token {
	return Token{Type: tt, Literal: tt.String(), Span: l.spanFrom(line, col, pos)}
}

func (l *Lexer) scanOperator(line, col, pos int) (Token, Error) {
	ch := l.current()

	switch ch {
	case '(':
		l.advance()
		l.bracket++
		return tok(LPAREN, l, line, col, pos), nil
	case ')':
		l.advance()
		l.decBracket()
		return tok(RPAREN, l, line, col, pos), nil
	case '[':
		l.advance()
		l.bracket++
		return tok(LBRACKET, l, line, col, pos), nil
	case ']':
		l.advance()
		l.decBracket()
		return tok(RBRACKET, l, line, col, pos), nil
	case '{':
		l.advance()
		l.bracket++
		return tok(LBRACE, l, line, col, pos), nil
	case '}':
		l.advance()
		l.decBracket()
		return tok(RBRACE, l, line, col, pos), nil
	}

	if fn, ok := operatorHandlers[ch]; ok {
		return fn(l, line, col, pos), nil
	}

	badByte := byte(ch)
	if ch > 127 {
		var buf [utf8.UTFMax]byte
		utf8.EncodeRune(buf[:], ch)
		badByte = buf[0]
	}
	l.advance()
	return Token{}, &InvalidTokenError{Span: l.spanFrom(line, col, pos), Byte: badByte}
}

func (l *Lexer) decBracket() {
	if l.bracket > 0 {
		l.bracket--
	}
}

func scanPlus(l *Lexer, line, col, pos int) Token {
	l.advance()
	if l.current() == '=' {
		l.advance()
		return tok(PLUS_ASSIGN, l, line, col, pos)
	}
	return tok(PLUS, l, line, col, pos)
}

func scanMinus(l *Lexer, line, col, pos int) Token {
	l.advance()
	switch l.current() {
	case '=':
		l.advance()
		return tok(MINUS_ASSIGN, l, line, col, pos)
	case '>':
		l.advance()
		return tok(ARROW, l, line, col, pos)
	}
	return tok(MINUS, l, line, col, pos)
}

func scanStar(l *Lexer, line, col, pos int) Token {
	l.advance()
	switch l.current() {
	case '=':
		l.advance()
		return tok(STAR_ASSIGN, l, line, col, pos)
	case '*':
		l.advance()
		return tok(STAR_STAR, l, line, col, pos)
	}
	return tok(STAR, l, line, col, pos)
}

func scanSlash(l *Lexer, line, col, pos int) Token {
	l.advance()
	if l.current() == '=' {
		l.advance()
		return tok(SLASH_ASSIGN, l, line, col, pos)
	}
	return tok(SLASH, l, line, col, pos)
}

func scanPercent(l *Lexer, line, col, pos int) Token {
	l.advance()
	if l.current() == '=' {
		l.advance()
		return tok(PERCENT_ASSIGN, l, line, col, pos)
	}
	return tok(PERCENT, l, line, col, pos)
}

func scanAssign(l *Lexer, line, col, pos int) Token {
	l.advance()
	if l.current() == '=' {
		l.advance()
		return tok(EQ, l, line, col, pos)
	}
	return tok(ASSIGN, l, line, col, pos)
}

func scanBang(l *Lexer, line, col, pos int) Token {
	l.advance()
	if l.current() == '=' {
		l.advance()
		return tok(NOT_EQ, l, line, col, pos)
	}
	return tok(ILLEGAL, l, line, col, pos)
}

func scanLess(l *Lexer, line, col, pos int) Token {
	l.advance()
	switch l.current() {
	case '=':
		l.advance()
		return tok(LT_EQ, l, line, col, pos)
	case '<':
		l.advance()
		return tok(SHL, l, line, col, pos)
	}
	return tok(LT, l, line, col, pos)
}

func scanGreater(l *Lexer, line, col, pos int) Token {
	l.advance()
	switch l.current() {
	case '=':
		l.advance()
		return tok(GT_EQ, l, line, col, pos)
	case '>':
		l.advance()
		return tok(SHR, l, line, col, pos)
	}
	return tok(GT, l, line, col, pos)
}

// Tokenize runs the raw lexer to completion and returns every token
// including a trailing EOF, or the first error encountered. Blank and
// comment-only lines produce only a NEWLINE token, which the indentation
// processor drops without measuring a column for it.
func Tokenize(source string, opts ...Option) ([]Token, Error) {
	l := New(source, opts...)
	var out []Token
	for {
		t, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		if t.Type == EOF {
			return out, nil
		}
	}
}
