package evm

import (
	"fmt"
	"strconv"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/semantic"
)

// contractGen holds the state shared by every function lowered from one
// contract: its storage layout, its constant/event/error tables, and the
// struct declarations codegen needs to size and offset struct-typed
// values. One contractGen is built per contract generate pass; spec §4.4
// assumes a single contract per module, matching
// original_source/crates/quorlin-codegen-evm/src/lib.rs's EvmCodegen.
type contractGen struct {
	info      *semantic.ContractInfo
	structs   map[string]*ast.StructDecl
	enums     map[string]*ast.EnumDecl
	storage   *StorageLayout
	constants map[string]*ast.Constant
	tempSeq   int
}

func newContractGen(info *semantic.ContractInfo, structs map[string]*ast.StructDecl, enums map[string]*ast.EnumDecl) *contractGen {
	cg := &contractGen{
		info:      info,
		structs:   structs,
		enums:     enums,
		storage:   NewStorageLayout(info.StateVars, structs),
		constants: make(map[string]*ast.Constant),
	}
	for _, c := range info.Constants {
		cg.constants[c.Name] = c
	}
	return cg
}

// tempVar returns a fresh Yul local variable name, used to hold
// intermediate mapping-slot hashes so a later mstore cannot clobber a
// value a still-pending expression needs to read back.
func (cg *contractGen) tempVar(prefix string) string {
	cg.tempSeq++
	return prefix + "_" + strconv.Itoa(cg.tempSeq)
}

// funcGen tracks the per-function lowering state: the contract it belongs
// to, the set of names already bound as Yul locals (parameters and
// `let`-declared variables, so later references to the same name emit a
// plain assignment instead of a redeclaration), and the builder functions
// append Yul lines to.
type funcGen struct {
	cg          *contractGen
	fn          *ast.Function
	b           *YulBuilder
	locals      map[string]bool
	returnNames []string
}

func newFuncGen(cg *contractGen, fn *ast.Function, b *YulBuilder) *funcGen {
	fg := &funcGen{cg: cg, fn: fn, b: b, locals: make(map[string]bool)}
	for _, p := range fn.Params {
		fg.locals[p.Name] = true
	}
	fg.returnNames = returnVarNames(fn.Returns)
	return fg
}

// returnVarNames derives the Yul named-return-variable list for a
// function's declared return type: none for Void, a single "ret" for a
// scalar return, "ret0".."retN" for a Tuple (multi-value return).
func returnVarNames(returns ast.Type) []string {
	if returns == nil {
		return nil
	}
	if _, isVoid := returns.(ast.Void); isVoid {
		return nil
	}
	if tuple, ok := returns.(ast.Tuple); ok {
		names := make([]string, len(tuple.Elems))
		for i := range tuple.Elems {
			names[i] = fmt.Sprintf("ret%d", i)
		}
		return names
	}
	return []string{"ret"}
}
