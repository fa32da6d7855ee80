package semantic

import (
	"testing"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/parser"
)

func mustAnalyze(t *testing.T, src string) (*Program, []Warning) {
	t.Helper()
	toks, lexErr := lexer.TokenizeIndented(src)
	if lexErr != nil {
		t.Fatalf("lexer error: %v", lexErr)
	}
	mod, parseErr := parser.ParseModule(toks)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	prog, warnings, err := NewAnalyzer().Analyze(mod)
	if err != nil {
		t.Fatalf("analysis error: %v", err)
	}
	return prog, warnings
}

func TestAnalyzeCounterContract(t *testing.T) {
	src := `contract Counter:
    count: uint256

    @external
    def increment(self):
        self.count = self.count + 1

    @view
    def get(self) -> uint256:
        return self.count
`
	prog, _ := mustAnalyze(t, src)
	if len(prog.Contracts) != 1 {
		t.Fatalf("expected 1 contract, got %d", len(prog.Contracts))
	}
	ci := prog.Contracts[0]
	if len(ci.StateVars) != 1 || ci.StateVars[0].Name != "count" {
		t.Fatalf("expected state var count, got %#v", ci.StateVars)
	}
}

func TestAnalyzeRejectsTypeMismatchOnLet(t *testing.T) {
	src := `contract C:
    @external
    def f(self):
        let x: bool = 5
`
	toks, lexErr := lexer.TokenizeIndented(src)
	if lexErr != nil {
		t.Fatalf("lexer error: %v", lexErr)
	}
	mod, parseErr := parser.ParseModule(toks)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	_, _, err := NewAnalyzer().Analyze(mod)
	if err == nil {
		t.Fatalf("expected a type error assigning uint256 literal to bool")
	}
}

func TestAnalyzeRejectsUndefinedName(t *testing.T) {
	src := `contract C:
    @external
    def f(self):
        self.x = 1
`
	toks, lexErr := lexer.TokenizeIndented(src)
	if lexErr != nil {
		t.Fatalf("lexer error: %v", lexErr)
	}
	mod, parseErr := parser.ParseModule(toks)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	_, _, err := NewAnalyzer().Analyze(mod)
	if err == nil {
		t.Fatalf("expected an error for assigning to an undeclared state variable")
	}
}

func TestAnalyzeRejectsViewFunctionMutatingState(t *testing.T) {
	src := `contract C:
    count: uint256

    @view
    def bad(self):
        self.count = 1
`
	toks, lexErr := lexer.TokenizeIndented(src)
	if lexErr != nil {
		t.Fatalf("lexer error: %v", lexErr)
	}
	mod, parseErr := parser.ParseModule(toks)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	_, _, err := NewAnalyzer().Analyze(mod)
	if err == nil {
		t.Fatalf("expected an error for a @view function writing to state")
	}
}

func TestAnalyzeRejectsBreakOutsideLoop(t *testing.T) {
	src := `contract C:
    @external
    def f(self):
        break
`
	toks, lexErr := lexer.TokenizeIndented(src)
	if lexErr != nil {
		t.Fatalf("lexer error: %v", lexErr)
	}
	mod, parseErr := parser.ParseModule(toks)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	_, _, err := NewAnalyzer().Analyze(mod)
	if err == nil {
		t.Fatalf("expected an error for break outside a loop")
	}
}

func TestAnalyzeEmitChecksEventArgTypes(t *testing.T) {
	src := `contract C:
    event Transfer:
        to: address
        amount: uint256

    @external
    def f(self, to: address, amount: uint256):
        emit Transfer(to, amount)
`
	prog, _ := mustAnalyze(t, src)
	ci := prog.Contracts[0]
	if _, ok := ci.Events["Transfer"]; !ok {
		t.Fatalf("expected Transfer event to be registered")
	}
}

func TestAnalyzeAnnotatesExpressionTypes(t *testing.T) {
	src := `contract C:
    count: uint256

    @view
    def get(self) -> uint256:
        return self.count + 1
`
	prog, _ := mustAnalyze(t, src)
	ci := prog.Contracts[0]
	fn := ci.Functions[0]
	ret := fn.Body[0].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.BinaryExpr)
	annotated := bin.GetType()
	if annotated == nil {
		t.Fatalf("expected the analyzer to annotate the return expression's type")
	}
	if _, ok := annotated.Type.(ast.SizedInt); !ok {
		t.Fatalf("expected SizedInt, got %T", annotated.Type)
	}
}
