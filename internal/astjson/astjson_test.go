package astjson_test

import (
	"strings"
	"testing"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/astjson"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/codegen/evm"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/parser"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/semantic"
)

const src = `contract Counter:
    count: uint256

    event Bumped:
        amount: uint256

    @external
    def increment(self):
        self.count = self.count + 1
`

func parse(t *testing.T) *semantic.Program {
	t.Helper()
	toks, lexErr := lexer.TokenizeIndented(src)
	if lexErr != nil {
		t.Fatalf("lexer error: %v", lexErr)
	}
	mod, parseErr := parser.ParseModule(toks)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	prog, _, semErr := semantic.NewAnalyzer().Analyze(mod)
	if semErr != nil {
		t.Fatalf("analysis error: %v", semErr)
	}
	return prog
}

func TestMarshalAndQuery(t *testing.T) {
	prog := parse(t)
	doc, err := astjson.Marshal(prog.Module)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if !strings.Contains(doc, `"kind":"Module"`) {
		t.Fatalf("expected canonical Module kind tag, got %s", doc)
	}

	name, ok := astjson.Query(doc, "items.0.name")
	if !ok {
		t.Fatalf("expected items.0.name to resolve")
	}
	if name != `"Counter"` {
		t.Fatalf("expected contract name Counter, got %s", name)
	}
}

func TestAnnotateStorageLayout(t *testing.T) {
	prog := parse(t)
	doc, err := astjson.Marshal(prog.Module)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	result, genErr := evm.Generate(prog)
	if genErr != nil {
		t.Fatalf("codegen error: %v", genErr)
	}

	annotated, err := astjson.AnnotateStorageLayout(doc, result.Storage)
	if err != nil {
		t.Fatalf("annotate error: %v", err)
	}
	slot, ok := astjson.Query(annotated, "meta.storageLayout.count.slot")
	if !ok || slot != "0" {
		t.Fatalf("expected meta.storageLayout.count.slot to be 0, got %q (ok=%v)", slot, ok)
	}
}

func TestAnnotateEventSignatures(t *testing.T) {
	prog := parse(t)
	doc, err := astjson.Marshal(prog.Module)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	sigs := astjson.EventSignatures(prog.Contracts[0].Events)
	annotated, err := astjson.AnnotateEventSignatures(doc, sigs)
	if err != nil {
		t.Fatalf("annotate error: %v", err)
	}
	got, ok := astjson.Query(annotated, "meta.eventSignatures.Bumped")
	if !ok || got != `"Bumped(uint256)"` {
		t.Fatalf("expected Bumped(uint256) signature, got %q (ok=%v)", got, ok)
	}
}
