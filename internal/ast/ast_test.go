package ast

import (
	"encoding/json"
	"testing"
)

func TestEncodeModuleTagsKind(t *testing.T) {
	mod := &Module{
		Items: []Item{
			&ContractDecl{
				Name: "Token",
				Members: []ContractMember{
					&StateVar{Name: "owner", VarType: Simple{Name: "address"}},
				},
			},
		},
	}

	encoded := Encode(mod)
	data, err := json.Marshal(encoded)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["kind"] != "Module" {
		t.Fatalf("expected kind=Module, got %v", decoded["kind"])
	}

	items := decoded["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	contract := items[0].(map[string]any)
	if contract["kind"] != "Contract" || contract["name"] != "Token" {
		t.Fatalf("unexpected contract encoding: %v", contract)
	}
}

func TestSizedIntString(t *testing.T) {
	u := SizedInt{Signed: false, Bits: 256}
	if u.String() != "uint256" {
		t.Fatalf("expected uint256, got %s", u.String())
	}
	i := SizedInt{Signed: true, Bits: 8}
	if i.String() != "int8" {
		t.Fatalf("expected int8, got %s", i.String())
	}
}

func TestMappingTypeString(t *testing.T) {
	m := Mapping{Key: Simple{Name: "address"}, Value: SizedInt{Bits: 256}}
	if got, want := m.String(), "dict[address, uint256]"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
