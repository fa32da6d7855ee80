package evm

import (
	"fmt"
	"strings"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
)

// generateFunction lowers one Quorlin function to a named Yul function:
// parameters become Yul parameters, the declared return type becomes
// named Yul return variables (see returnVarNames), and the body lowers
// statement by statement through funcGen.
func (cg *contractGen) generateFunction(fn *ast.Function, b *YulBuilder) *CodegenError {
	fg := newFuncGen(cg, fn, b)

	paramNames := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		paramNames[i] = p.Name
	}

	header := "function " + fn.Name + "(" + strings.Join(paramNames, ", ") + ")"
	if len(fg.returnNames) > 0 {
		header += " -> " + strings.Join(fg.returnNames, ", ")
	}
	b.OpenBlock(header)
	if err := fg.lowerBlock(fn.Body); err != nil {
		return err
	}
	b.CloseBlock()
	return nil
}

// paramTypes returns the function's ABI parameter types in declaration
// order, used for selector computation; the dispatcher case builds its
// calldataload arguments from fn.Params directly.
func paramTypes(fn *ast.Function) []ast.Type {
	types := make([]ast.Type, len(fn.Params))
	for i, p := range fn.Params {
		types[i] = p.VarType
	}
	return types
}

// generateDispatcherCase emits one `case 0xselector { ... }` entry:
// decode each calldata argument, call the matching internal function, and
// ABI-encode its return value(s) back into memory before returning.
func (cg *contractGen) generateDispatcherCase(fn *ast.Function, b *YulBuilder) {
	selector := functionSelectorHex(fn.Name, paramTypes(fn))
	b.OpenBlock("case " + selector)

	args := make([]string, len(fn.Params))
	for i := range fn.Params {
		args[i] = fmt.Sprintf("calldataload(%d)", 4+i*32)
	}
	call := fn.Name + "(" + strings.Join(args, ", ") + ")"

	names := returnVarNames(fn.Returns)
	switch len(names) {
	case 0:
		b.Line(call)
		b.Line("return(0, 0)")
	default:
		b.Linef("%s := %s", strings.Join(names, ", "), call)
		for i, n := range names {
			b.Linef("mstore(%d, %s)", i*32, n)
		}
		b.Linef("return(0, %d)", len(names)*32)
	}
	b.CloseBlock()
}

// generateDispatcher emits the selector-matching switch that routes
// incoming calls to the function whose selector matches the first four
// bytes of calldata, grounded on
// original_source/crates/quorlin-codegen-evm/src/lib.rs's
// generate_dispatcher, plus the `selector()` helper function it calls.
func (cg *contractGen) generateDispatcher(externalFns []*ast.Function, b *YulBuilder) {
	b.OpenBlock("switch selector()")
	for _, fn := range externalFns {
		cg.generateDispatcherCase(fn, b)
	}
	b.OpenBlock("default")
	b.Line("revert(0, 0)")
	b.CloseBlock()
	b.CloseBlock()
	b.Line("")

	b.OpenBlock("function selector() -> s")
	b.Line("s := shr(224, calldataload(0))")
	b.CloseBlock()
}
