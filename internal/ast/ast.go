// Package ast defines the strongly-typed syntax tree produced by
// internal/parser and consumed by internal/semantic and
// internal/codegen/evm. Every concrete node embeds the lexer.Token it
// starts from and implements TokenLiteral/Pos/String, mirroring the
// marker-interface pattern in cwbudde/go-dws's internal/ast package.
package ast

import "github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"

// Node is implemented by every AST node.
type Node interface {
	TokenLiteral() string
	Pos() diagnostics.Span
	String() string
}

// Expr is implemented by every expression node. The unexported marker
// method keeps external packages from satisfying the interface by
// accident, the same guard the teacher uses for its Expression interface.
type Expr interface {
	Node
	exprNode()
	GetType() *TypeAnnotation
	SetType(*TypeAnnotation)
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Item is implemented by every top-level declaration a Module can
// contain: contracts, structs, enums, interfaces, free functions, and
// imports.
type Item interface {
	Node
	itemNode()
}

// baseExpr factors the shared Type bookkeeping every Expr implementation
// embeds: the resolved-type pointer set by the analyzer. Each node keeps
// its own lexer.Token field alongside it.
type baseExpr struct {
	Type *TypeAnnotation
}

func (b *baseExpr) GetType() *TypeAnnotation     { return b.Type }
func (b *baseExpr) SetType(t *TypeAnnotation)    { b.Type = t }
func (b *baseExpr) exprNode()                    {}

// TypeAnnotation is the type the semantic analyzer attaches to every
// expression node once it has been checked; nil before analysis.
type TypeAnnotation struct {
	Type Type
}
