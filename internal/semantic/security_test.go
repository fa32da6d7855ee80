package semantic

import (
	"testing"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/parser"
)

func analyzeWarnings(t *testing.T, src string) []Warning {
	t.Helper()
	toks, lexErr := lexer.TokenizeIndented(src)
	if lexErr != nil {
		t.Fatalf("lexer error: %v", lexErr)
	}
	mod, parseErr := parser.ParseModule(toks)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	_, warnings, err := NewAnalyzer().Analyze(mod)
	if err != nil {
		t.Fatalf("analysis error: %v", err)
	}
	return warnings
}

func hasWarning(warnings []Warning, kind WarningKind) bool {
	for _, w := range warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

func TestSecurityFlagsMissingAccessControl(t *testing.T) {
	src := `contract C:
    owner: address

    @external
    def set_owner(self, newOwner: address):
        self.owner = newOwner
`
	warnings := analyzeWarnings(t, src)
	if !hasWarning(warnings, WarningMissingAccessControl) {
		t.Fatalf("expected a missing access control warning, got %#v", warnings)
	}
}

func TestSecurityAllowsGuardedMutation(t *testing.T) {
	src := `contract C:
    owner: address

    @external
    def set_owner(self, newOwner: address):
        require(msg.sender == self.owner, "not owner")
        self.owner = newOwner
`
	warnings := analyzeWarnings(t, src)
	if hasWarning(warnings, WarningMissingAccessControl) {
		t.Fatalf("did not expect a missing access control warning, got %#v", warnings)
	}
}

func TestSecurityExemptsTransferFunction(t *testing.T) {
	src := `contract C:
    balances: dict[address, uint256]

    @external
    def transfer(self, to: address, amount: uint256):
        self.balances[to] = amount
`
	warnings := analyzeWarnings(t, src)
	if hasWarning(warnings, WarningMissingAccessControl) {
		t.Fatalf("transfer is exempt from the access-control heuristic, got %#v", warnings)
	}
}

func TestSecurityFlagsCEIViolation(t *testing.T) {
	src := `contract C:
    owner: address
    balances: dict[address, uint256]

    @external
    def withdraw(self, amount: uint256):
        require(msg.sender == self.owner, "not owner")
        self.owner.call(amount)
        self.balances[msg.sender] = 0
`
	warnings := analyzeWarnings(t, src)
	if !hasWarning(warnings, WarningCEIViolation) {
		t.Fatalf("expected a CEI violation warning, got %#v", warnings)
	}
	if !hasWarning(warnings, WarningReentrancyRisk) {
		t.Fatalf("expected a reentrancy risk warning, got %#v", warnings)
	}
}

func TestSecuritySkipsViewFunctions(t *testing.T) {
	src := `contract C:
    count: uint256

    @view
    def get(self) -> uint256:
        return self.count
`
	warnings := analyzeWarnings(t, src)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings for a read-only function, got %#v", warnings)
	}
}
