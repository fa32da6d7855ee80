package ast

import (
	"fmt"
	"strings"
)

// Type is the sum type over every type expression Quorlin source can
// write, mirrored on spec.md §3's Type invariants and restated here for
// the storage-layout/promotion rules in internal/semantic and
// internal/codegen/evm to share a single representation.
type Type interface {
	typeNode()
	String() string
}

// Unknown is the open-world escape hatch: a type that is bidirectionally
// compatible with every other type. The analyzer assigns it to ambient
// builtins it does not model in full (e.g. block/tx globals) rather than
// rejecting programs that use them.
type Unknown struct{}

func (Unknown) typeNode()     {}
func (Unknown) String() string { return "unknown" }

// Simple covers non-numeric primitive types: bool, address, str.
type Simple struct {
	Name string
}

func (Simple) typeNode()       {}
func (s Simple) String() string { return s.Name }

// SizedInt is uintN / intN, N in {8,16,...,256}.
type SizedInt struct {
	Signed bool
	Bits   int
}

func (SizedInt) typeNode() {}
func (s SizedInt) String() string {
	if s.Signed {
		return fmt.Sprintf("int%d", s.Bits)
	}
	return fmt.Sprintf("uint%d", s.Bits)
}

// Bytes is bytesN, N in 1..32.
type Bytes struct {
	N int
}

func (Bytes) typeNode()       {}
func (b Bytes) String() string { return fmt.Sprintf("bytes%d", b.N) }

// Mapping is dict[Key, Value] storage, EVM-layout-eligible only as a
// top-level or nested state variable.
type Mapping struct {
	Key   Type
	Value Type
}

func (Mapping) typeNode() {}
func (m Mapping) String() string {
	return fmt.Sprintf("dict[%s, %s]", m.Key, m.Value)
}

// List is list[Elem], a dynamically sized array.
type List struct {
	Elem Type
}

func (List) typeNode()       {}
func (l List) String() string { return fmt.Sprintf("list[%s]", l.Elem) }

// FixedArray is Elem[N], a statically sized array.
type FixedArray struct {
	Elem Type
	N    int
}

func (FixedArray) typeNode() {}
func (f FixedArray) String() string {
	return fmt.Sprintf("%s[%d]", f.Elem, f.N)
}

// Optional is Elem | None.
type Optional struct {
	Inner Type
}

func (Optional) typeNode()       {}
func (o Optional) String() string { return fmt.Sprintf("Optional[%s]", o.Inner) }

// Tuple is a fixed-arity heterogeneous grouping, used for multi-value
// returns.
type Tuple struct {
	Elems []Type
}

func (Tuple) typeNode() {}
func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

// Named is a reference to a user-declared struct, enum, interface, or
// contract type by name; resolved to a concrete declaration during
// semantic analysis.
type Named struct {
	Name string
}

func (Named) typeNode()       {}
func (n Named) String() string { return n.Name }

// Void is the implicit return type of a function with no -> annotation.
type Void struct{}

func (Void) typeNode()       {}
func (Void) String() string { return "void" }

// NoneType is the type of the None literal, assignable to any Optional.
type NoneType struct{}

func (NoneType) typeNode()       {}
func (NoneType) String() string { return "None" }
