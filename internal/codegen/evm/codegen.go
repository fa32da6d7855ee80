// Package evm lowers a type-checked internal/semantic.Program to Yul, the
// intermediate language solc compiles to EVM bytecode, grounded on
// original_source/crates/quorlin-codegen-evm.
package evm

import (
	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/semantic"
)

// Result is a successful lowering: the Yul source text plus the storage
// layout report, so a caller (the `quorlinc compile --emit-layout` flag)
// can surface slot assignments without re-deriving them.
type Result struct {
	Yul           string
	StorageReport string
	Storage       *StorageLayout
}

// Generate lowers the first contract in prog to a full
// `object "Contract" { ... }` Yul skeleton: constructor code, a copy of
// the runtime code, and within the runtime a selector dispatcher plus one
// named function per contract method. Spec scope assumes a single
// contract per module, the same assumption
// original_source/crates/quorlin-codegen-evm/src/lib.rs's EvmCodegen
// makes.
func Generate(prog *semantic.Program) (*Result, *CodegenError) {
	if len(prog.Contracts) == 0 {
		return nil, errContractNotFound
	}
	info := prog.Contracts[0]
	cg := newContractGen(info, prog.Structs, prog.Enums)

	var constructor *ast.Function
	var externalFns []*ast.Function
	var internalFns []*ast.Function
	for _, fn := range info.Functions {
		switch {
		case fn.HasDecorator("constructor"):
			constructor = fn
		case fn.HasDecorator("external"):
			externalFns = append(externalFns, fn)
		default:
			internalFns = append(internalFns, fn)
		}
	}

	b := NewYulBuilder()
	b.OpenBlock("object \"Contract\"")
	b.OpenBlock("code")
	if err := cg.generateConstructor(constructor, b); err != nil {
		return nil, err
	}
	b.Line("datacopy(0, dataoffset(\"runtime\"), datasize(\"runtime\"))")
	b.Line("return(0, datasize(\"runtime\"))")
	b.CloseBlock()

	b.OpenBlock("object \"runtime\"")
	b.OpenBlock("code")
	cg.generateDispatcher(externalFns, b)
	b.Line("")
	emitCheckedMathHelpers(b)
	for _, fn := range externalFns {
		b.Line("")
		if err := cg.generateFunction(fn, b); err != nil {
			return nil, err
		}
	}
	for _, fn := range internalFns {
		b.Line("")
		if err := cg.generateFunction(fn, b); err != nil {
			return nil, err
		}
	}
	b.CloseBlock()
	b.CloseBlock()
	b.CloseBlock()

	return &Result{Yul: b.String(), StorageReport: cg.storage.Report(), Storage: cg.storage}, nil
}

// generateConstructor lowers the @constructor-decorated function (if any)
// inline into the outer deploy-time code block; it runs once before the
// runtime object is copied into returned code and never appears in the
// runtime dispatcher. Constructor parameters are out of scope: encoding
// and decoding constructor arguments appended after init code (the real
// EVM convention) needs the init code's own length, which this
// text-based generator does not compute; a zero-argument constructor is
// fully supported, a parameterized one is reported as unsupported.
func (cg *contractGen) generateConstructor(constructor *ast.Function, b *YulBuilder) *CodegenError {
	if constructor == nil {
		return nil
	}
	if len(constructor.Params) > 0 {
		return unsupportedf("constructor with parameters (no init-code argument decoding in this code generator)")
	}
	fg := newFuncGen(cg, constructor, b)
	return fg.lowerBlock(constructor.Body)
}
