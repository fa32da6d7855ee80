package ast

import (
	"strings"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
)

// Param is one function parameter.
type Param struct {
	Name    string
	VarType Type
}

// Decorator is one `@name` or `@name(args)` annotation above a function,
// validated by the semantic analyzer against the fixed decorator set
// (@external, @view, @pure, @payable, @constructor).
type Decorator struct {
	Name string
	Args []Expr
}

// Function is a contract method or a top-level free function, both
// represented by the same node since the grammar does not otherwise
// distinguish them syntactically.
type Function struct {
	Tok        lexer.Token
	Name       string
	Decorators []Decorator
	Params     []Param
	Returns    Type // nil means Void
	Body       []Stmt
}

func (f *Function) TokenLiteral() string  { return f.Tok.Literal }
func (f *Function) Pos() diagnostics.Span { return f.Tok.Span }
func (f *Function) itemNode()             {}
func (f *Function) contractMemberNode()   {}

func (f *Function) String() string {
	var b strings.Builder
	for _, d := range f.Decorators {
		b.WriteString("@" + d.Name + "\n")
	}
	b.WriteString("def " + f.Name + "(")
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Name + ": " + p.VarType.String()
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(")")
	if f.Returns != nil {
		b.WriteString(" -> " + f.Returns.String())
	}
	b.WriteString(":")
	return b.String()
}

// HasDecorator reports whether the function carries a decorator with the
// given name.
func (f *Function) HasDecorator(name string) bool {
	for _, d := range f.Decorators {
		if d.Name == name {
			return true
		}
	}
	return false
}

// IsView reports whether the function is read-only per its decorators
// (@view or @pure), the same predicate the security pass and codegen use
// to decide whether a state-mutation check applies.
func (f *Function) IsView() bool {
	return f.HasDecorator("view") || f.HasDecorator("pure")
}
