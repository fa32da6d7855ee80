package evm

import (
	"fmt"
	"strconv"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
)

// lowerExpr lowers e to a single Yul expression, returning any statement
// lines (pre) that must execute immediately before the expression is used
// — the scratch-memory mstore pairs a mapping key lookup needs ahead of
// its keccak256 call, plus the `let slot_N := ...` bindings that hold an
// inner level's slot for nested mappings.
func (fg *funcGen) lowerExpr(e ast.Expr) (string, []string, *CodegenError) {
	switch v := e.(type) {
	case *ast.IntLiteral:
		return v.Value, nil, nil
	case *ast.BoolLiteral:
		if v.Value {
			return "1", nil, nil
		}
		return "0", nil, nil
	case *ast.NoneLiteral:
		return "0", nil, nil
	case *ast.StringLiteral:
		return "", nil, unsupportedf("string literal values (no dynamic memory ABI encoding in this code generator)")
	case *ast.FloatLiteral:
		return "", nil, unsupportedf("floating-point literals have no EVM storage representation")
	case *ast.Identifier:
		return fg.lowerIdentifier(v)
	case *ast.SelfExpr:
		return "", nil, unsupportedf("`self` used outside of an attribute or call expression")
	case *ast.BinaryExpr:
		return fg.lowerBinaryExpr(v)
	case *ast.UnaryExpr:
		return fg.lowerUnaryExpr(v)
	case *ast.CallExpr:
		return fg.lowerCallExpr(v)
	case *ast.AttributeExpr:
		return fg.lowerAttributeExpr(v)
	case *ast.IndexExpr:
		return fg.lowerIndexRead(v)
	case *ast.ListExpr, *ast.TupleExpr:
		return "", nil, unsupportedf("in-memory list/tuple literals are not lowered by this code generator")
	default:
		return "", nil, unsupportedf("expression kind %T", e)
	}
}

func (fg *funcGen) lowerIdentifier(id *ast.Identifier) (string, []string, *CodegenError) {
	if fg.locals[id.Name] {
		return id.Name, nil, nil
	}
	if c, ok := fg.cg.constants[id.Name]; ok {
		text, err := fg.cg.lowerConstExpr(c.Value)
		if err != nil {
			return "", nil, err
		}
		return text, nil, nil
	}
	return "", nil, errorf("undeclared identifier %q reached code generation", id.Name)
}

// lowerConstExpr lowers a contract constant's initializer, which the
// analyzer already restricts to a compile-time-foldable literal
// expression; codegen inlines the value at every use site instead of
// allocating storage for it.
func (cg *contractGen) lowerConstExpr(e ast.Expr) (string, *CodegenError) {
	switch v := e.(type) {
	case *ast.IntLiteral:
		return v.Value, nil
	case *ast.BoolLiteral:
		if v.Value {
			return "1", nil
		}
		return "0", nil
	case *ast.UnaryExpr:
		if v.Op == ast.OpNeg {
			inner, err := cg.lowerConstExpr(v.Operand)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("sub(0, %s)", inner), nil
		}
		return "", unsupportedf("non-negation unary operator in constant expression")
	default:
		return "", unsupportedf("non-literal constant initializer")
	}
}

var compareOps = map[ast.BinOp]func(l, r string) string{
	ast.OpEq:    func(l, r string) string { return fmt.Sprintf("eq(%s, %s)", l, r) },
	ast.OpNotEq: func(l, r string) string { return fmt.Sprintf("iszero(eq(%s, %s))", l, r) },
	ast.OpLt:    func(l, r string) string { return fmt.Sprintf("lt(%s, %s)", l, r) },
	ast.OpGt:    func(l, r string) string { return fmt.Sprintf("gt(%s, %s)", l, r) },
	ast.OpLtEq:  func(l, r string) string { return fmt.Sprintf("iszero(gt(%s, %s))", l, r) },
	ast.OpGtEq:  func(l, r string) string { return fmt.Sprintf("iszero(lt(%s, %s))", l, r) },
}

var bitwiseOps = map[ast.BinOp]string{
	ast.OpAnd:    "and",
	ast.OpOr:     "or",
	ast.OpBitAnd: "and",
	ast.OpBitOr:  "or",
	ast.OpBitXor: "xor",
}

func (fg *funcGen) lowerBinaryExpr(e *ast.BinaryExpr) (string, []string, *CodegenError) {
	left, leftPre, err := fg.lowerExpr(e.Left)
	if err != nil {
		return "", nil, err
	}
	right, rightPre, err := fg.lowerExpr(e.Right)
	if err != nil {
		return "", nil, err
	}
	pre := append(leftPre, rightPre...)

	if helper, ok := checkedOpFor(e.Op.String()); ok {
		return fmt.Sprintf("%s(%s, %s)", helper, left, right), pre, nil
	}
	if build, ok := compareOps[e.Op]; ok {
		return build(left, right), pre, nil
	}
	if name, ok := bitwiseOps[e.Op]; ok {
		return fmt.Sprintf("%s(%s, %s)", name, left, right), pre, nil
	}
	switch e.Op {
	case ast.OpPow:
		return fmt.Sprintf("exp(%s, %s)", left, right), pre, nil
	case ast.OpShl:
		return fmt.Sprintf("shl(%s, %s)", right, left), pre, nil
	case ast.OpShr:
		return fmt.Sprintf("shr(%s, %s)", right, left), pre, nil
	default:
		return "", nil, unsupportedf("binary operator %s", e.Op)
	}
}

func (fg *funcGen) lowerUnaryExpr(e *ast.UnaryExpr) (string, []string, *CodegenError) {
	operand, pre, err := fg.lowerExpr(e.Operand)
	if err != nil {
		return "", nil, err
	}
	switch e.Op {
	case ast.OpNeg:
		return fmt.Sprintf("sub(0, %s)", operand), pre, nil
	case ast.OpNot:
		return fmt.Sprintf("iszero(%s)", operand), pre, nil
	case ast.OpBitNot:
		return fmt.Sprintf("not(%s)", operand), pre, nil
	default:
		return "", nil, unsupportedf("unary operator %s", e.Op)
	}
}

// sizedMask returns the bitmask of the low `bits` bits, used to truncate a
// value on a narrowing conversion such as uint8(x).
func sizedMask(bits int) string {
	if bits >= 256 {
		return "not(0)"
	}
	mask := "1"
	return fmt.Sprintf("sub(shl(%d, %s), 1)", bits, mask)
}

func (fg *funcGen) lowerCallExpr(e *ast.CallExpr) (string, []string, *CodegenError) {
	if ident, ok := e.Callee.(*ast.Identifier); ok {
		if bits, signed, isConv := builtinSizedTypeName(ident.Name); isConv {
			if len(e.Args) != 1 {
				return "", nil, errorf("conversion %s expects exactly one argument", ident.Name)
			}
			arg, pre, err := fg.lowerExpr(e.Args[0])
			if err != nil {
				return "", nil, err
			}
			if signed || bits >= 256 {
				return arg, pre, nil
			}
			return fmt.Sprintf("and(%s, %s)", arg, sizedMask(bits)), pre, nil
		}
		// Bare-name call: a sibling free function or contract method
		// invoked without the `self.` prefix.
		return fg.lowerCallArgs(ident.Name, e.Args)
	}
	if attr, ok := e.Callee.(*ast.AttributeExpr); ok {
		if _, isSelf := attr.Object.(*ast.SelfExpr); isSelf {
			return fg.lowerCallArgs(attr.Name, e.Args)
		}
		switch attr.Name {
		case "transfer", "send":
			return fg.lowerValueTransfer(attr.Object, e.Args)
		case "call", "delegatecall":
			return "", nil, unsupportedf("low-level `%s` with arbitrary calldata", attr.Name)
		}
		return "", nil, unsupportedf("external call to %s", attr.Name)
	}
	return "", nil, unsupportedf("call to a non-identifier, non-attribute callee")
}

// builtinSizedTypeName parses a conversion-function identifier such as
// uint256, int8, bytes32, address, bool into its bit width and
// signedness, mirroring internal/semantic/expressions.go's
// builtinSizedTypeName so codegen and the analyzer agree on which names
// are type conversions rather than calls.
func builtinSizedTypeName(name string) (bits int, signed bool, ok bool) {
	switch name {
	case "address", "bool", "str":
		return 256, false, true
	}
	if len(name) > 4 && name[:4] == "uint" {
		if n, err := strconv.Atoi(name[4:]); err == nil {
			return n, false, true
		}
	}
	if len(name) > 3 && name[:3] == "int" {
		if n, err := strconv.Atoi(name[3:]); err == nil {
			return n, true, true
		}
	}
	if len(name) > 5 && name[:5] == "bytes" {
		if n, err := strconv.Atoi(name[5:]); err == nil {
			return n * 8, false, true
		}
	}
	return 0, false, false
}

func (fg *funcGen) lowerCallArgs(name string, args []ast.Expr) (string, []string, *CodegenError) {
	var pre []string
	parts := make([]string, len(args))
	for i, a := range args {
		text, p, err := fg.lowerExpr(a)
		if err != nil {
			return "", nil, err
		}
		parts[i] = text
		pre = append(pre, p...)
	}
	call := name + "("
	for i, p := range parts {
		if i > 0 {
			call += ", "
		}
		call += p
	}
	call += ")"
	return call, pre, nil
}

// lowerValueTransfer lowers `recipient.transfer(amount)` / `.send(amount)`
// to a bare EVM CALL with no calldata, forwarding all remaining gas and
// returning the call's success flag. Spec scope does not require
// forwarding a return-data buffer since neither primitive invokes a
// function with declared outputs.
func (fg *funcGen) lowerValueTransfer(recipient ast.Expr, args []ast.Expr) (string, []string, *CodegenError) {
	if len(args) != 1 {
		return "", nil, errorf("transfer/send expects exactly one argument")
	}
	addr, addrPre, err := fg.lowerExpr(recipient)
	if err != nil {
		return "", nil, err
	}
	amount, amountPre, err := fg.lowerExpr(args[0])
	if err != nil {
		return "", nil, err
	}
	pre := append(addrPre, amountPre...)
	return fmt.Sprintf("call(gas(), %s, %s, 0, 0, 0, 0)", addr, amount), pre, nil
}

func (fg *funcGen) lowerAttributeExpr(e *ast.AttributeExpr) (string, []string, *CodegenError) {
	if ident, ok := e.Object.(*ast.Identifier); ok {
		switch ident.Name {
		case "msg":
			switch e.Name {
			case "sender":
				return "caller()", nil, nil
			case "value":
				return "callvalue()", nil, nil
			case "data":
				return "", nil, unsupportedf("msg.data (no raw calldata buffer exposed to expressions)")
			}
		case "block":
			switch e.Name {
			case "timestamp":
				return "timestamp()", nil, nil
			case "number":
				return "number()", nil, nil
			}
		case "tx":
			if e.Name == "origin" {
				return "origin()", nil, nil
			}
		}
		if enumDecl, ok := fg.cg.enums[ident.Name]; ok {
			for i, variant := range enumDecl.Variants {
				if variant == e.Name {
					return strconv.Itoa(i), nil, nil
				}
			}
		}
	}

	slot, pre, err := fg.lowerStorageSlot(e)
	if err == nil {
		return fmt.Sprintf("sload(%s)", slot), pre, nil
	}
	return "", nil, err
}

func (fg *funcGen) lowerIndexRead(e *ast.IndexExpr) (string, []string, *CodegenError) {
	slot, pre, err := fg.lowerStorageSlot(e)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("sload(%s)", slot), pre, nil
}

// lowerStorageSlot computes the Yul expression for the storage slot a
// write-or-read target refers to: a bare self.X state variable, a
// self.structVar.field struct field, or a (possibly nested)
// self.mapping[key] access. It is shared by expression-position reads
// (wrapped in sload) and by AssignStmt's write lowering (wrapped in
// sstore).
func (fg *funcGen) lowerStorageSlot(e ast.Expr) (string, []string, *CodegenError) {
	switch v := e.(type) {
	case *ast.AttributeExpr:
		if inner, ok := v.Object.(*ast.AttributeExpr); ok {
			if _, isSelf := inner.Object.(*ast.SelfExpr); isSelf {
				return fg.structFieldSlot(inner.Name, v.Name)
			}
			return "", nil, unsupportedf("nested attribute access outside of self.<struct>.<field>")
		}
		if _, isSelf := v.Object.(*ast.SelfExpr); isSelf {
			base, ok := fg.cg.storage.Slot(v.Name)
			if !ok {
				return "", nil, errorf("%q is not a storage-backed state variable", v.Name)
			}
			return strconv.Itoa(base), nil, nil
		}
		return "", nil, unsupportedf("attribute access on a non-self object")
	case *ast.IndexExpr:
		return fg.mappingSlot(v.Container, v.Index)
	default:
		return "", nil, unsupportedf("storage target of kind %T", e)
	}
}

func (fg *funcGen) structFieldSlot(stateVarName, field string) (string, []string, *CodegenError) {
	base, ok := fg.cg.storage.Slot(stateVarName)
	if !ok {
		return "", nil, errorf("%q is not a storage-backed state variable", stateVarName)
	}
	named, ok := fg.structTypeOf(stateVarName)
	if !ok {
		return "", nil, errorf("%q is not a struct-typed state variable", stateVarName)
	}
	offset, ok := fg.cg.storage.FieldOffset(named, field)
	if !ok {
		return "", nil, errorf("struct %q has no field %q", named, field)
	}
	return strconv.Itoa(base + offset), nil, nil
}

func (fg *funcGen) structTypeOf(stateVarName string) (string, bool) {
	for _, v := range fg.cg.info.StateVars {
		if v.Name == stateVarName {
			if named, ok := v.VarType.(ast.Named); ok {
				return named.Name, true
			}
		}
	}
	return "", false
}

// mappingSlot lowers a (possibly nested) mapping access to the scratch-
// memory mstore pairs and final keccak256(0, 64) slot expression,
// matching the real EVM mapping storage layout — two 32-byte mstore
// writes followed by a hash over that 64-byte scratch region — in place
// of original_source/crates/quorlin-codegen-evm/src/storage_layout.rs's
// calculate_mapping_slot, whose "keccak256(key, slot)" return value is a
// human-readable label, not legal Yul. The correct two-mstore pattern is
// grounded on yul_generator.rs's helpers::mapping_slot/nested_mapping_slot.
func (fg *funcGen) mappingSlot(container, key ast.Expr) (string, []string, *CodegenError) {
	baseAttr, isDirect := container.(*ast.AttributeExpr)
	if isDirect {
		if _, isSelf := baseAttr.Object.(*ast.SelfExpr); !isSelf {
			isDirect = false
		}
	}

	if isDirect {
		base, ok := fg.cg.storage.Slot(baseAttr.Name)
		if !ok {
			return "", nil, errorf("%q is not a storage-backed mapping", baseAttr.Name)
		}
		keyText, keyPre, err := fg.lowerExpr(key)
		if err != nil {
			return "", nil, err
		}
		pre := append(keyPre,
			fmt.Sprintf("mstore(0, %s)", keyText),
			fmt.Sprintf("mstore(32, %d)", base),
		)
		return "keccak256(0, 64)", pre, nil
	}

	nestedIndex, ok := container.(*ast.IndexExpr)
	if !ok {
		return "", nil, unsupportedf("mapping container of kind %T", container)
	}
	innerSlot, innerPre, err := fg.mappingSlot(nestedIndex.Container, nestedIndex.Index)
	if err != nil {
		return "", nil, err
	}
	tmp := fg.cg.tempVar("slot")
	pre := append(innerPre, fmt.Sprintf("let %s := %s", tmp, innerSlot))

	keyText, keyPre, err := fg.lowerExpr(key)
	if err != nil {
		return "", nil, err
	}
	pre = append(pre, keyPre...)
	pre = append(pre,
		fmt.Sprintf("mstore(0, %s)", keyText),
		fmt.Sprintf("mstore(32, %s)", tmp),
	)
	return "keccak256(0, 64)", pre, nil
}
