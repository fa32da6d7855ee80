package semantic

import "github.com/EmekaIwuagwu/quorlin-lang/internal/ast"

// IsAssignable reports whether a value of type from may be used where a
// value of type to is expected: identical types, Unknown on either side
// (the open-world escape hatch), same-signed numeric widening (uintA/intA
// into uintB/intB with A<=B), and None into an Optional.
func IsAssignable(from, to ast.Type) bool {
	if _, ok := from.(ast.Unknown); ok {
		return true
	}
	if _, ok := to.(ast.Unknown); ok {
		return true
	}
	if typesEqual(from, to) {
		return true
	}

	if f, ok := from.(ast.SizedInt); ok {
		if t, ok := to.(ast.SizedInt); ok {
			return f.Signed == t.Signed && f.Bits <= t.Bits
		}
	}

	if _, ok := from.(ast.NoneType); ok {
		if _, ok := to.(ast.Optional); ok {
			return true
		}
	}
	if opt, ok := to.(ast.Optional); ok {
		return IsAssignable(from, opt.Inner)
	}

	return false
}

// typesEqual performs a structural comparison; Named types compare by
// declared name since the analyzer never creates two distinct Named
// values for the same declaration.
func typesEqual(a, b ast.Type) bool {
	switch av := a.(type) {
	case ast.Simple:
		bv, ok := b.(ast.Simple)
		return ok && av.Name == bv.Name
	case ast.SizedInt:
		bv, ok := b.(ast.SizedInt)
		return ok && av.Signed == bv.Signed && av.Bits == bv.Bits
	case ast.Bytes:
		bv, ok := b.(ast.Bytes)
		return ok && av.N == bv.N
	case ast.Mapping:
		bv, ok := b.(ast.Mapping)
		return ok && typesEqual(av.Key, bv.Key) && typesEqual(av.Value, bv.Value)
	case ast.List:
		bv, ok := b.(ast.List)
		return ok && typesEqual(av.Elem, bv.Elem)
	case ast.FixedArray:
		bv, ok := b.(ast.FixedArray)
		return ok && av.N == bv.N && typesEqual(av.Elem, bv.Elem)
	case ast.Optional:
		bv, ok := b.(ast.Optional)
		return ok && typesEqual(av.Inner, bv.Inner)
	case ast.Tuple:
		bv, ok := b.(ast.Tuple)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !typesEqual(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case ast.Named:
		bv, ok := b.(ast.Named)
		return ok && av.Name == bv.Name
	case ast.Void:
		_, ok := b.(ast.Void)
		return ok
	case ast.Unknown:
		_, ok := b.(ast.Unknown)
		return ok
	default:
		return false
	}
}

// IsNumeric reports whether t is a sized integer type eligible for
// arithmetic operators and checked-math lowering.
func IsNumeric(t ast.Type) bool {
	_, ok := t.(ast.SizedInt)
	return ok
}

// PromotedType returns the result type of a binary arithmetic operator
// applied to a and b: the wider of two same-signed sized integers, or
// Unknown if either operand is Unknown. Mismatched-signedness numeric
// operands are not assignable to each other and must be rejected by the
// caller before PromotedType is consulted.
func PromotedType(a, b ast.Type) ast.Type {
	if _, ok := a.(ast.Unknown); ok {
		return ast.Unknown{}
	}
	if _, ok := b.(ast.Unknown); ok {
		return ast.Unknown{}
	}
	av, aok := a.(ast.SizedInt)
	bv, bok := b.(ast.SizedInt)
	if aok && bok && av.Signed == bv.Signed {
		if av.Bits >= bv.Bits {
			return av
		}
		return bv
	}
	return a
}
