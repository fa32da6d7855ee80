// Package semantic implements symbol resolution, nominal and structural
// type checking with numeric promotion, control-flow validation,
// decorator validation, and the static security pass, grounded on
// original_source/crates/quorlin-semantics.
package semantic

import "github.com/EmekaIwuagwu/quorlin-lang/internal/ast"

// SymbolKind classifies what a Symbol names.
type SymbolKind int

const (
	SymbolState SymbolKind = iota
	SymbolConstant
	SymbolFunction
	SymbolParam
	SymbolLocal
	SymbolEvent
	SymbolError
	SymbolStruct
	SymbolEnum
	SymbolInterface
	SymbolContract
)

// Symbol is one resolvable name: a state variable, constant, function,
// parameter, local binding, or type declaration.
type Symbol struct {
	Name string
	Kind SymbolKind
	Type ast.Type
	Node ast.Node
}

// SymbolTable is a scope-stack lookup table, grounded on the teacher's
// internal/semantic/symbol_table.go SymbolTable/outer chaining pattern.
// Unlike the teacher's DWScript table, lookups here are case-sensitive,
// matching Quorlin's lexical rules.
type SymbolTable struct {
	symbols map[string]*Symbol
	outer   *SymbolTable
}

// NewSymbolTable creates a table with no enclosing scope, used for the
// module-level (global) scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// NewEnclosedSymbolTable creates a child scope chained to outer, used for
// a contract's member scope and each function's local scope.
func NewEnclosedSymbolTable(outer *SymbolTable) *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol), outer: outer}
}

// Define installs a symbol in this scope, returning false without
// installing it if the name is already bound in this same scope (shadowing
// an outer scope's binding is allowed; redefining within one scope is
// not).
func (t *SymbolTable) Define(sym *Symbol) bool {
	if _, exists := t.symbols[sym.Name]; exists {
		return false
	}
	t.symbols[sym.Name] = sym
	return true
}

// Resolve looks up name in this scope, then each enclosing scope in turn.
func (t *SymbolTable) Resolve(name string) (*Symbol, bool) {
	if sym, ok := t.symbols[name]; ok {
		return sym, true
	}
	if t.outer != nil {
		return t.outer.Resolve(name)
	}
	return nil, false
}

// ResolveLocal looks up name only in this exact scope, without consulting
// outer scopes.
func (t *SymbolTable) ResolveLocal(name string) (*Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}
