package ast

import (
	"strings"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
)

// BinOp enumerates the binary operators the parser can produce, grounded
// on original_source/crates/quorlin-parser/src/ast.rs's BinOp enum.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpEq
	OpNotEq
	OpLt
	OpGt
	OpLtEq
	OpGtEq
	OpAnd
	OpOr
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpIn
)

var binOpSymbols = map[BinOp]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%", OpPow: "**",
	OpEq: "==", OpNotEq: "!=", OpLt: "<", OpGt: ">", OpLtEq: "<=", OpGtEq: ">=",
	OpAnd: "and", OpOr: "or", OpBitAnd: "&", OpBitOr: "|", OpBitXor: "^",
	OpShl: "<<", OpShr: ">>", OpIn: "in",
}

func (op BinOp) String() string { return binOpSymbols[op] }

// UnaryOp enumerates the unary prefix operators.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
	OpBitNot
)

var unaryOpSymbols = map[UnaryOp]string{OpNeg: "-", OpNot: "not ", OpBitNot: "~"}

func (op UnaryOp) String() string { return unaryOpSymbols[op] }

// Identifier is a bare name reference.
type Identifier struct {
	baseExpr
	Tok  lexer.Token
	Name string
}

func (e *Identifier) TokenLiteral() string  { return e.Tok.Literal }
func (e *Identifier) Pos() diagnostics.Span { return e.Tok.Span }
func (e *Identifier) String() string        { return e.Name }

// SelfExpr is the `self` receiver reference inside a method body.
type SelfExpr struct {
	baseExpr
	Tok lexer.Token
}

func (e *SelfExpr) TokenLiteral() string  { return e.Tok.Literal }
func (e *SelfExpr) Pos() diagnostics.Span { return e.Tok.Span }
func (e *SelfExpr) String() string        { return "self" }

// IntLiteral is an integer constant, stored as decimal or 0x-prefixed
// text as written minus any underscore separators (the lexer drops them);
// codegen emits this text unchanged as a Yul literal.
type IntLiteral struct {
	baseExpr
	Tok   lexer.Token
	Value string
}

func (e *IntLiteral) TokenLiteral() string  { return e.Tok.Literal }
func (e *IntLiteral) Pos() diagnostics.Span { return e.Tok.Span }
func (e *IntLiteral) String() string        { return e.Value }

// FloatLiteral is a decimal literal. Quorlin has no native floating-point
// storage type; float literals are only legal where the context
// immediately converts them (none in the EVM core), so the analyzer
// rejects them outside that narrow allowance.
type FloatLiteral struct {
	baseExpr
	Tok   lexer.Token
	Value string
}

func (e *FloatLiteral) TokenLiteral() string  { return e.Tok.Literal }
func (e *FloatLiteral) Pos() diagnostics.Span { return e.Tok.Span }
func (e *FloatLiteral) String() string        { return e.Value }

// StringLiteral is a decoded string constant.
type StringLiteral struct {
	baseExpr
	Tok   lexer.Token
	Value string
}

func (e *StringLiteral) TokenLiteral() string  { return e.Tok.Literal }
func (e *StringLiteral) Pos() diagnostics.Span { return e.Tok.Span }
func (e *StringLiteral) String() string        { return "\"" + e.Value + "\"" }

// BoolLiteral is True or False.
type BoolLiteral struct {
	baseExpr
	Tok   lexer.Token
	Value bool
}

func (e *BoolLiteral) TokenLiteral() string  { return e.Tok.Literal }
func (e *BoolLiteral) Pos() diagnostics.Span { return e.Tok.Span }
func (e *BoolLiteral) String() string {
	if e.Value {
		return "True"
	}
	return "False"
}

// NoneLiteral is the None literal, used with Optional types.
type NoneLiteral struct {
	baseExpr
	Tok lexer.Token
}

func (e *NoneLiteral) TokenLiteral() string  { return e.Tok.Literal }
func (e *NoneLiteral) Pos() diagnostics.Span { return e.Tok.Span }
func (e *NoneLiteral) String() string        { return "None" }

// BinaryExpr is `left op right`.
type BinaryExpr struct {
	baseExpr
	Tok   lexer.Token
	Left  Expr
	Op    BinOp
	Right Expr
}

func (e *BinaryExpr) TokenLiteral() string  { return e.Tok.Literal }
func (e *BinaryExpr) Pos() diagnostics.Span { return e.Tok.Span }
func (e *BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// UnaryExpr is `op operand`.
type UnaryExpr struct {
	baseExpr
	Tok     lexer.Token
	Op      UnaryOp
	Operand Expr
}

func (e *UnaryExpr) TokenLiteral() string  { return e.Tok.Literal }
func (e *UnaryExpr) Pos() diagnostics.Span { return e.Tok.Span }
func (e *UnaryExpr) String() string        { return "(" + e.Op.String() + e.Operand.String() + ")" }

// CallExpr is `callee(args...)`.
type CallExpr struct {
	baseExpr
	Tok    lexer.Token
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) TokenLiteral() string  { return e.Tok.Literal }
func (e *CallExpr) Pos() diagnostics.Span { return e.Tok.Span }
func (e *CallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return e.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// AttributeExpr is `object.Name` — state variable access through self,
// struct field access, or module-qualified names.
type AttributeExpr struct {
	baseExpr
	Tok    lexer.Token
	Object Expr
	Name   string
}

func (e *AttributeExpr) TokenLiteral() string  { return e.Tok.Literal }
func (e *AttributeExpr) Pos() diagnostics.Span { return e.Tok.Span }
func (e *AttributeExpr) String() string        { return e.Object.String() + "." + e.Name }

// IndexExpr is `container[index]`, covering mapping lookups and list/array
// indexing.
type IndexExpr struct {
	baseExpr
	Tok       lexer.Token
	Container Expr
	Index     Expr
}

func (e *IndexExpr) TokenLiteral() string  { return e.Tok.Literal }
func (e *IndexExpr) Pos() diagnostics.Span { return e.Tok.Span }
func (e *IndexExpr) String() string {
	return e.Container.String() + "[" + e.Index.String() + "]"
}

// ListExpr is a `[a, b, c]` literal.
type ListExpr struct {
	baseExpr
	Tok      lexer.Token
	Elements []Expr
}

func (e *ListExpr) TokenLiteral() string  { return e.Tok.Literal }
func (e *ListExpr) Pos() diagnostics.Span { return e.Tok.Span }
func (e *ListExpr) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TupleExpr is a `(a, b, c)` literal, used for multi-value returns.
type TupleExpr struct {
	baseExpr
	Tok      lexer.Token
	Elements []Expr
}

func (e *TupleExpr) TokenLiteral() string  { return e.Tok.Literal }
func (e *TupleExpr) Pos() diagnostics.Span { return e.Tok.Span }
func (e *TupleExpr) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
