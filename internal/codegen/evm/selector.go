package evm

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
)

// typeToABIString renders t the way a function or event signature names
// its parameter types, grounded on
// original_source/crates/quorlin-codegen-evm/src/abi.rs's
// type_to_abi_string. Mapping has no real ABI encoding (mappings are
// never passed as arguments or emitted in events); the original's own
// "mapping(K => V)" rendering is kept as a diagnostic label only, never
// fed into a selector or topic hash.
func typeToABIString(t ast.Type) string {
	switch v := t.(type) {
	case ast.Simple:
		return v.Name
	case ast.SizedInt:
		prefix := "uint"
		if v.Signed {
			prefix = "int"
		}
		return fmt.Sprintf("%s%d", prefix, v.Bits)
	case ast.Bytes:
		return fmt.Sprintf("bytes%d", v.N)
	case ast.List:
		return typeToABIString(v.Elem) + "[]"
	case ast.FixedArray:
		return fmt.Sprintf("%s[%d]", typeToABIString(v.Elem), v.N)
	case ast.Optional:
		return typeToABIString(v.Inner)
	case ast.Tuple:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = typeToABIString(e)
		}
		return "(" + strings.Join(parts, ",") + ")"
	case ast.Mapping:
		return fmt.Sprintf("mapping(%s => %s)", typeToABIString(v.Key), typeToABIString(v.Value))
	case ast.Named:
		return v.Name
	default:
		return fmt.Sprintf("%v", t)
	}
}

// signature renders `name(type1,type2,...)`, the string every selector and
// topic0 hash is taken over.
func signature(name string, paramTypes []ast.Type) string {
	parts := make([]string, len(paramTypes))
	for i, t := range paramTypes {
		parts[i] = typeToABIString(t)
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}

// pseudoKeccak hashes data with SHA-256 as a stand-in for Keccak-256: no
// Keccak-256 implementation exists anywhere in the retrieval pack (every
// example repo's go.mod was grepped for sha3/keccak/crypto and came back
// empty), and the original Rust codegen's own calculate_selector is
// documented there as "(simplified version)" using a non-cryptographic
// std::collections::hash_map::DefaultHasher. SHA-256 is at least a real
// cryptographic hash with the right stdlib availability; real deployment
// would swap this for golang.org/x/crypto/sha3 once available.
func pseudoKeccak(data string) [32]byte {
	return sha256.Sum256([]byte(data))
}

// functionSelector returns the 4-byte selector for a function signature,
// matching the real ABI's 4-byte selector width even though the
// underlying hash is a SHA-256 stand-in rather than Keccak-256.
func functionSelector(name string, paramTypes []ast.Type) uint32 {
	digest := pseudoKeccak(signature(name, paramTypes))
	return binary.BigEndian.Uint32(digest[:4])
}

// functionSelectorHex renders the selector as a `0x`-prefixed 8 hex digit
// literal, the form the dispatcher switch statement compares against.
func functionSelectorHex(name string, paramTypes []ast.Type) string {
	return fmt.Sprintf("0x%08x", functionSelector(name, paramTypes))
}

// eventTopic0 returns the full 32-byte topic0 hash identifying an event
// signature, the slot `log1`..`log4` always populate with the event's
// identity hash.
func eventTopic0(name string, paramTypes []ast.Type) string {
	digest := pseudoKeccak(signature(name, paramTypes))
	return "0x" + hex.EncodeToString(digest[:])
}

// errorSelector returns the 4-byte selector identifying a custom error,
// used to encode the revert reason for `raise ErrorName(...)`.
func errorSelector(name string, paramTypes []ast.Type) uint32 {
	return functionSelector(name, paramTypes)
}
