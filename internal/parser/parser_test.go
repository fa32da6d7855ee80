package parser

import (
	"testing"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
)

func mustTokenize(t *testing.T, src string) []lexer.Token {
	t.Helper()
	toks, err := lexer.TokenizeIndented(src)
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	return toks
}

func TestParseSimpleContract(t *testing.T) {
	src := `contract Counter:
    count: uint256

    @external
    def increment(self):
        self.count = self.count + 1

    @view
    def get(self) -> uint256:
        return self.count
`
	mod, err := ParseModule(mustTokenize(t, src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(mod.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(mod.Items))
	}
	contract, ok := mod.Items[0].(*ast.ContractDecl)
	if !ok {
		t.Fatalf("expected *ast.ContractDecl, got %T", mod.Items[0])
	}
	if contract.Name != "Counter" {
		t.Fatalf("expected contract Counter, got %s", contract.Name)
	}
	if len(contract.Members) != 3 {
		t.Fatalf("expected 3 members (state var + 2 functions), got %d", len(contract.Members))
	}
	fn, ok := contract.Members[1].(*ast.Function)
	if !ok || fn.Name != "increment" {
		t.Fatalf("expected increment function, got %#v", contract.Members[1])
	}
	if !fn.HasDecorator("external") {
		t.Fatalf("expected increment to carry @external")
	}
}

func TestAugmentedAssignmentDesugars(t *testing.T) {
	src := `contract C:
    x: uint256

    @external
    def bump(self):
        self.x += 1
`
	mod, err := ParseModule(mustTokenize(t, src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	contract := mod.Items[0].(*ast.ContractDecl)
	fn := contract.Members[1].(*ast.Function)
	assign, ok := fn.Body[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("expected desugared AssignStmt, got %T", fn.Body[0])
	}
	bin, ok := assign.Value.(*ast.BinaryExpr)
	if !ok || bin.Op != ast.OpAdd {
		t.Fatalf("expected desugared + binary expression, got %#v", assign.Value)
	}
}

func TestParseRequireEmitRaise(t *testing.T) {
	src := `contract C:
    event Transfer:
        from_: address
        to: address
        amount: uint256

    error InsufficientBalance:
        available: uint256

    @external
    def transfer(self, to: address, amount: uint256):
        require(amount > 0, "amount must be positive")
        if amount > 100:
            raise InsufficientBalance(amount)
        emit Transfer(self.owner, to, amount)
`
	mod, err := ParseModule(mustTokenize(t, src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	contract := mod.Items[0].(*ast.ContractDecl)
	if len(contract.Members) != 3 {
		t.Fatalf("expected event + error + function, got %d members", len(contract.Members))
	}
	fn := contract.Members[2].(*ast.Function)
	if _, ok := fn.Body[0].(*ast.RequireStmt); !ok {
		t.Fatalf("expected RequireStmt, got %T", fn.Body[0])
	}
	ifStmt, ok := fn.Body[1].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected IfStmt, got %T", fn.Body[1])
	}
	if _, ok := ifStmt.Body[0].(*ast.RaiseStmt); !ok {
		t.Fatalf("expected RaiseStmt inside if, got %T", ifStmt.Body[0])
	}
	if _, ok := fn.Body[2].(*ast.EmitStmt); !ok {
		t.Fatalf("expected EmitStmt, got %T", fn.Body[2])
	}
}

func TestParseForRangeLoop(t *testing.T) {
	src := `contract C:
    @external
    def loop(self):
        for i in range(0, 10, 2):
            pass
`
	mod, err := ParseModule(mustTokenize(t, src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	contract := mod.Items[0].(*ast.ContractDecl)
	fn := contract.Members[0].(*ast.Function)
	forStmt, ok := fn.Body[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected ForStmt, got %T", fn.Body[0])
	}
	if forStmt.Start == nil || forStmt.Stop == nil || forStmt.Step == nil {
		t.Fatalf("expected start/stop/step all populated, got %#v", forStmt)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	src := `contract C:
    @view
    def calc(self) -> uint256:
        return 1 + 2 * 3
`
	mod, err := ParseModule(mustTokenize(t, src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	contract := mod.Items[0].(*ast.ContractDecl)
	fn := contract.Members[0].(*ast.Function)
	ret := fn.Body[0].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.BinaryExpr)
	if bin.Op != ast.OpAdd {
		t.Fatalf("expected outermost op to be +, got %v", bin.Op)
	}
	right := bin.Right.(*ast.BinaryExpr)
	if right.Op != ast.OpMul {
		t.Fatalf("expected 2 * 3 to bind tighter than +, got %v", right.Op)
	}
}

func TestMappingAndStateVarTypes(t *testing.T) {
	src := `contract Token:
    balances: dict[address, uint256]
    allowances: dict[address, dict[address, uint256]]
`
	mod, err := ParseModule(mustTokenize(t, src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	contract := mod.Items[0].(*ast.ContractDecl)
	bal := contract.Members[0].(*ast.StateVar)
	if _, ok := bal.VarType.(ast.Mapping); !ok {
		t.Fatalf("expected Mapping type, got %T", bal.VarType)
	}
	allow := contract.Members[1].(*ast.StateVar)
	m, ok := allow.VarType.(ast.Mapping)
	if !ok {
		t.Fatalf("expected Mapping type, got %T", allow.VarType)
	}
	if _, ok := m.Value.(ast.Mapping); !ok {
		t.Fatalf("expected nested Mapping value, got %T", m.Value)
	}
}
