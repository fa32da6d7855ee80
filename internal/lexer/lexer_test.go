package lexer

import "testing"

func TestTokenizeBasicOperators(t *testing.T) {
	toks, err := Tokenize("x += 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TokenType{IDENT, PLUS_ASSIGN, INT, NEWLINE, EOF}
	assertTypes(t, toks, want)
}

func TestBracketsSuppressNewline(t *testing.T) {
	toks, err := Tokenize("call(\n  1,\n  2,\n)\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tok := range toks {
		if tok.Type == NEWLINE {
			t.Fatalf("did not expect a Newline token inside parentheses, got %v", toks)
		}
	}
}

func TestSizedTypeRecognition(t *testing.T) {
	toks, err := Tokenize("uint256\nint8\nbytes32\nuint7\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != SIZED_TYPE || toks[0].Literal != "uint256" {
		t.Fatalf("expected uint256 as SIZED_TYPE, got %v", toks[0])
	}
	// uint7 is not a multiple of 8 and must fall back to a plain
	// identifier.
	var lastIdent Token
	for _, tok := range toks {
		if tok.Literal == "uint7" {
			lastIdent = tok
		}
	}
	if lastIdent.Type != IDENT {
		t.Fatalf("expected uint7 to lex as IDENT, got %v", lastIdent.Type)
	}
}

func TestStringEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\nb"` + "\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != STRING || toks[0].Literal != "a\nb" {
		t.Fatalf("expected decoded escape, got %q", toks[0].Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated` + "\n")
	if err == nil {
		t.Fatal("expected an unterminated string error")
	}
	if _, ok := err.(*UnterminatedStringError); !ok {
		t.Fatalf("expected *UnterminatedStringError, got %T", err)
	}
}

func TestInvalidToken(t *testing.T) {
	_, err := Tokenize("x = $\n")
	if err == nil {
		t.Fatal("expected an invalid token error")
	}
}

func assertTypes(t *testing.T, toks []Token, want []TokenType) {
	t.Helper()
	if len(toks) != len(want) {
		t.Fatalf("token count mismatch: got %d want %d (%v)", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Fatalf("token %d: got %v want %v", i, toks[i].Type, w)
		}
	}
}
