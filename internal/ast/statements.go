package ast

import (
	"strings"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
)

// LetStmt is `let name: Type = expr` or `let name = expr` (type inferred).
type LetStmt struct {
	Tok     lexer.Token
	Name    string
	VarType Type // nil if omitted; filled in by the analyzer
	Value   Expr
}

func (s *LetStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *LetStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *LetStmt) stmtNode()             {}
func (s *LetStmt) String() string {
	if s.VarType != nil {
		return "let " + s.Name + ": " + s.VarType.String() + " = " + s.Value.String()
	}
	return "let " + s.Name + " = " + s.Value.String()
}

// AssignStmt is `target = expr`, where target is any lvalue expression
// (identifier, attribute access, or index expression).
type AssignStmt struct {
	Tok    lexer.Token
	Target Expr
	Value  Expr
}

func (s *AssignStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *AssignStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *AssignStmt) stmtNode()             {}
func (s *AssignStmt) String() string {
	return s.Target.String() + " = " + s.Value.String()
}

// AugAssignOp names the operator an augmented assignment desugars
// through.
type AugAssignOp int

const (
	AugAdd AugAssignOp = iota
	AugSub
	AugMul
	AugDiv
	AugMod
)

// AugAssignStmt documents the pre-desugaring shape of `target += expr`
// and friends (original_source/crates/quorlin-parser/src/ast.rs). The
// parser never emits this node directly: per spec.md §4.2, augmented
// assignment is desugared to an AssignStmt with a BinaryExpr value during
// parsing. It remains part of the AST for tooling that wants to
// round-trip the pre-desugar form.
type AugAssignStmt struct {
	Tok    lexer.Token
	Target Expr
	Op     AugAssignOp
	Value  Expr
}

func (s *AugAssignStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *AugAssignStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *AugAssignStmt) stmtNode()             {}
func (s *AugAssignStmt) String() string {
	return s.Target.String() + " <aug-assign> " + s.Value.String()
}

// ExprStmt wraps an expression used for its side effects (typically a
// call).
type ExprStmt struct {
	Tok  lexer.Token
	Expr Expr
}

func (s *ExprStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *ExprStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *ExprStmt) stmtNode()             {}
func (s *ExprStmt) String() string        { return s.Expr.String() }

// IfStmt is `if cond: ... elif cond: ... else: ...`, with Elifs chained
// and Else possibly empty.
type IfStmt struct {
	Tok       lexer.Token
	Cond      Expr
	Body      []Stmt
	ElifConds []Expr
	ElifBody  [][]Stmt
	Else      []Stmt
}

func (s *IfStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *IfStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *IfStmt) stmtNode()             {}
func (s *IfStmt) String() string        { return "if " + s.Cond.String() + ":" }

// ForStmt is `for name in range(...):`, the only iteration form spec.md
// §9 resolves for core scope (Open Question: general iterables deferred).
type ForStmt struct {
	Tok     lexer.Token
	Var     string
	Start   Expr // nil means literal 0
	Stop    Expr
	Step    Expr // nil means literal 1
	Body    []Stmt
}

func (s *ForStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *ForStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *ForStmt) stmtNode()             {}
func (s *ForStmt) String() string {
	return "for " + s.Var + " in range(...):"
}

// WhileStmt is `while cond:`.
type WhileStmt struct {
	Tok  lexer.Token
	Cond Expr
	Body []Stmt
}

func (s *WhileStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *WhileStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *WhileStmt) stmtNode()             {}
func (s *WhileStmt) String() string        { return "while " + s.Cond.String() + ":" }

// ReturnStmt is `return` or `return expr`.
type ReturnStmt struct {
	Tok   lexer.Token
	Value Expr // nil for a bare return
}

func (s *ReturnStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *ReturnStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *ReturnStmt) stmtNode()             {}
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}

// PassStmt, BreakStmt, ContinueStmt carry only their token for position.
type PassStmt struct{ Tok lexer.Token }

func (s *PassStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *PassStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *PassStmt) stmtNode()             {}
func (s *PassStmt) String() string        { return "pass" }

type BreakStmt struct{ Tok lexer.Token }

func (s *BreakStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *BreakStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *BreakStmt) stmtNode()             {}
func (s *BreakStmt) String() string        { return "break" }

type ContinueStmt struct{ Tok lexer.Token }

func (s *ContinueStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *ContinueStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *ContinueStmt) stmtNode()             {}
func (s *ContinueStmt) String() string        { return "continue" }

// RequireStmt is `require(cond, "message")`, lowered by codegen to a
// revert-on-false check.
type RequireStmt struct {
	Tok     lexer.Token
	Cond    Expr
	Message Expr // nil if omitted
}

func (s *RequireStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *RequireStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *RequireStmt) stmtNode()             {}
func (s *RequireStmt) String() string        { return "require(" + s.Cond.String() + ")" }

// EmitStmt is `emit EventName(args...)`.
type EmitStmt struct {
	Tok   lexer.Token
	Event string
	Args  []Expr
}

func (s *EmitStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *EmitStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *EmitStmt) stmtNode()             {}
func (s *EmitStmt) String() string {
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.String()
	}
	return "emit " + s.Event + "(" + strings.Join(parts, ", ") + ")"
}

// RaiseStmt is `raise ErrorName(args...)`.
type RaiseStmt struct {
	Tok   lexer.Token
	Error string
	Args  []Expr
}

func (s *RaiseStmt) TokenLiteral() string  { return s.Tok.Literal }
func (s *RaiseStmt) Pos() diagnostics.Span { return s.Tok.Span }
func (s *RaiseStmt) stmtNode()             {}
func (s *RaiseStmt) String() string {
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.String()
	}
	return "raise " + s.Error + "(" + strings.Join(parts, ", ") + ")"
}
