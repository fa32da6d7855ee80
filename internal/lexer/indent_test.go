package lexer

import "testing"

func TestIndentDedentPairBalance(t *testing.T) {
	src := "def f():\n    let x = 1\n    if x:\n        return x\n    return 0\n"
	toks, err := TokenizeIndented(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	indents, dedents := 0, 0
	for _, tok := range toks {
		switch tok.Type {
		case INDENT:
			indents++
		case DEDENT:
			dedents++
		}
	}
	if indents != dedents {
		t.Fatalf("unbalanced indent/dedent: %d indents, %d dedents", indents, dedents)
	}
	if indents != 2 {
		t.Fatalf("expected 2 indents for a nested if inside a function, got %d", indents)
	}
}

func TestBlankLinesDoNotAffectIndentation(t *testing.T) {
	src := "def f():\n    let x = 1\n\n    let y = 2\n"
	toks, err := TokenizeIndented(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	indents := 0
	for _, tok := range toks {
		if tok.Type == INDENT {
			indents++
		}
	}
	if indents != 1 {
		t.Fatalf("expected exactly one indent level despite the blank line, got %d", indents)
	}
}

func TestMismatchedDedentIsAnError(t *testing.T) {
	src := "def f():\n    let x = 1\n  let y = 2\n"
	_, err := TokenizeIndented(src)
	if err == nil {
		t.Fatal("expected an indentation error for a dedent with no matching level")
	}
	if _, ok := err.(*IndentationError); !ok {
		t.Fatalf("expected *IndentationError, got %T", err)
	}
}
