package evm_test

import (
	"testing"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/codegen/evm"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/parser"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/semantic"
	"github.com/gkampitakis/go-snaps/snaps"
)

func generate(t *testing.T, src string) *evm.Result {
	t.Helper()
	toks, lexErr := lexer.TokenizeIndented(src)
	if lexErr != nil {
		t.Fatalf("lexer error: %v", lexErr)
	}
	mod, parseErr := parser.ParseModule(toks)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	prog, _, analyzeErr := semantic.NewAnalyzer().Analyze(mod)
	if analyzeErr != nil {
		t.Fatalf("analysis error: %v", analyzeErr)
	}
	result, genErr := evm.Generate(prog)
	if genErr != nil {
		t.Fatalf("codegen error: %v", genErr)
	}
	return result
}

// TestGenerateStorageGetterSetter covers scenario E1: a scalar state
// variable read through sload and written through sstore at its
// allocated slot.
func TestGenerateStorageGetterSetter(t *testing.T) {
	src := `contract SimpleStorage:
    value: uint256

    @external
    def set(self, new_value: uint256):
        self.value = new_value

    @external
    def get(self) -> uint256:
        return self.value
`
	result := generate(t, src)
	snaps.MatchSnapshot(t, "storage_getter_setter", result.Yul)
}

// TestGenerateCheckedAddition covers scenario E2: `+` lowers through the
// named checked_add helper rather than a bare Yul `add`.
func TestGenerateCheckedAddition(t *testing.T) {
	src := `contract Math:
    @external
    def inc(self, a: uint256, b: uint256) -> uint256:
        return a + b
`
	result := generate(t, src)
	snaps.MatchSnapshot(t, "checked_addition", result.Yul)
}

// TestGenerateMappingReadWrite covers scenario E3: a mapping write lowers
// to the two-mstore-then-keccak256 slot derivation, not a literal
// `keccak256(key, slot)` call.
func TestGenerateMappingReadWrite(t *testing.T) {
	src := `contract T:
    balances: mapping[address, uint256]

    @external
    def set(self, k: address, v: uint256):
        self.balances[k] = v

    @view
    def get(self, k: address) -> uint256:
        return self.balances[k]
`
	result := generate(t, src)
	snaps.MatchSnapshot(t, "mapping_read_write", result.Yul)
}

// TestGenerateForRangeLowering covers scenario E6: `for i in range(n)`
// lowers to a Yul for-loop with the range bounds in its init/condition/
// post clauses.
func TestGenerateForRangeLowering(t *testing.T) {
	src := `contract Loop:
    @external
    def spin(self):
        for i in range(10):
            pass
`
	result := generate(t, src)
	snaps.MatchSnapshot(t, "for_range_lowering", result.Yul)
}

// TestGenerateEventEmission exercises the event-log lowering path:
// indexed parameters become log topics, non-indexed parameters are
// ABI-encoded into the log's data region.
func TestGenerateEventEmission(t *testing.T) {
	src := `contract Token:
    event Transfer:
        @indexed
        from_addr: address
        @indexed
        to_addr: address
        amount: uint256

    @external
    def send(self, to_addr: address, amount: uint256):
        emit Transfer(msg.sender, to_addr, amount)
`
	result := generate(t, src)
	snaps.MatchSnapshot(t, "event_emission", result.Yul)
}

// TestGenerateCustomErrorRevert exercises raise lowering: the error's
// selector and ABI-encoded arguments are written to memory before the
// revert.
func TestGenerateCustomErrorRevert(t *testing.T) {
	src := `contract Token:
    error InsufficientBalance:
        available: uint256
        required: uint256

    @view
    def check(self, available: uint256, required: uint256):
        if available < required:
            raise InsufficientBalance(available, required)
`
	result := generate(t, src)
	snaps.MatchSnapshot(t, "custom_error_revert", result.Yul)
}

// TestGenerateConstructorRunsOnce exercises the deploy-time constructor
// path: its body lowers into the outer code object, never into the
// runtime dispatcher.
func TestGenerateConstructorRunsOnce(t *testing.T) {
	src := `contract Owned:
    owner: address

    @constructor
    def __init__(self):
        self.owner = msg.sender

    @view
    def get_owner(self) -> address:
        return self.owner
`
	result := generate(t, src)
	snaps.MatchSnapshot(t, "constructor_runs_once", result.Yul)
}

// TestGenerateStructFieldStorage exercises struct-typed state variables:
// each field is allocated a distinct slot offset from the struct's base
// slot.
func TestGenerateStructFieldStorage(t *testing.T) {
	src := `struct Account:
    balance: uint256
    nonce: uint256

contract Wallet:
    account: Account

    @external
    def bump(self):
        self.account.nonce = self.account.nonce + 1
`
	result := generate(t, src)
	snaps.MatchSnapshot(t, "struct_field_storage", result.Yul)
}
