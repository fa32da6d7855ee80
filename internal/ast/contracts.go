package ast

import (
	"strings"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
)

// ContractMember is implemented by every declaration a contract body can
// contain: state variables, constants, events, errors, and functions.
type ContractMember interface {
	Node
	contractMemberNode()
}

// ContractDecl is `contract Name(Base1, Base2):` followed by an indented
// block of members.
type ContractDecl struct {
	Tok     lexer.Token
	Name    string
	Bases   []string
	Members []ContractMember
}

func (c *ContractDecl) TokenLiteral() string  { return c.Tok.Literal }
func (c *ContractDecl) Pos() diagnostics.Span { return c.Tok.Span }
func (c *ContractDecl) itemNode()             {}
func (c *ContractDecl) String() string {
	var b strings.Builder
	b.WriteString("contract ")
	b.WriteString(c.Name)
	if len(c.Bases) > 0 {
		b.WriteString("(" + strings.Join(c.Bases, ", ") + ")")
	}
	b.WriteString(":\n")
	for _, m := range c.Members {
		b.WriteString("    " + m.String() + "\n")
	}
	return b.String()
}

// StateVar is a contract-level `name: Type` declaration, allocated a
// storage slot by the code generator.
type StateVar struct {
	Tok     lexer.Token
	Name    string
	VarType Type
	Public  bool // never set by the parser; codegen generates no getter from it
}

func (s *StateVar) TokenLiteral() string     { return s.Tok.Literal }
func (s *StateVar) Pos() diagnostics.Span    { return s.Tok.Span }
func (s *StateVar) contractMemberNode()      {}
func (s *StateVar) String() string {
	return s.Name + ": " + s.VarType.String()
}

// Constant is a contract-level `const NAME: Type = expr`, inlined at every
// use site by the code generator rather than allocated a storage slot.
type Constant struct {
	Tok     lexer.Token
	Name    string
	VarType Type
	Value   Expr
}

func (c *Constant) TokenLiteral() string  { return c.Tok.Literal }
func (c *Constant) Pos() diagnostics.Span { return c.Tok.Span }
func (c *Constant) contractMemberNode()   {}
func (c *Constant) String() string {
	return "const " + c.Name + ": " + c.VarType.String() + " = " + c.Value.String()
}

// EventParam is one field of an event's payload.
type EventParam struct {
	Name    string
	VarType Type
	Indexed bool
}

// EventDecl is `event Name: field: Type; ...`, emitted via EmitStmt.
type EventDecl struct {
	Tok    lexer.Token
	Name   string
	Params []EventParam
}

func (e *EventDecl) TokenLiteral() string  { return e.Tok.Literal }
func (e *EventDecl) Pos() diagnostics.Span { return e.Tok.Span }
func (e *EventDecl) contractMemberNode()   {}
func (e *EventDecl) itemNode()             {}
func (e *EventDecl) String() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.Name + ": " + p.VarType.String()
	}
	return "event " + e.Name + "(" + strings.Join(parts, ", ") + ")"
}

// ErrorDecl is `error Name: field: Type; ...`, raised via RaiseStmt and
// reverted as a custom EVM error in codegen.
type ErrorDecl struct {
	Tok    lexer.Token
	Name   string
	Params []EventParam
}

func (e *ErrorDecl) TokenLiteral() string  { return e.Tok.Literal }
func (e *ErrorDecl) Pos() diagnostics.Span { return e.Tok.Span }
func (e *ErrorDecl) contractMemberNode()   {}
func (e *ErrorDecl) itemNode()             {}
func (e *ErrorDecl) String() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.Name + ": " + p.VarType.String()
	}
	return "error " + e.Name + "(" + strings.Join(parts, ", ") + ")"
}

// StructField is one member of a struct declaration.
type StructField struct {
	Name    string
	VarType Type
}

// StructDecl is a value-type aggregate usable as a variable type, field
// type, or mapping value.
type StructDecl struct {
	Tok    lexer.Token
	Name   string
	Fields []StructField
}

func (s *StructDecl) TokenLiteral() string  { return s.Tok.Literal }
func (s *StructDecl) Pos() diagnostics.Span { return s.Tok.Span }
func (s *StructDecl) itemNode()             {}
func (s *StructDecl) contractMemberNode()   {}
func (s *StructDecl) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.Name + ": " + f.VarType.String()
	}
	return "struct " + s.Name + "(" + strings.Join(parts, ", ") + ")"
}

// EnumDecl is a named set of integer-backed variants.
type EnumDecl struct {
	Tok      lexer.Token
	Name     string
	Variants []string
}

func (e *EnumDecl) TokenLiteral() string  { return e.Tok.Literal }
func (e *EnumDecl) Pos() diagnostics.Span { return e.Tok.Span }
func (e *EnumDecl) itemNode()             {}
func (e *EnumDecl) contractMemberNode()   {}
func (e *EnumDecl) String() string {
	return "enum " + e.Name + "(" + strings.Join(e.Variants, ", ") + ")"
}

// FunctionSignature is one method entry of an interface declaration: a
// name, parameter types, and a return type, with no body.
type FunctionSignature struct {
	Name    string
	Params  []Param
	Returns Type
}

// InterfaceDecl declares a set of function signatures a contract may be
// checked against structurally.
type InterfaceDecl struct {
	Tok        lexer.Token
	Name       string
	Signatures []FunctionSignature
}

func (i *InterfaceDecl) TokenLiteral() string  { return i.Tok.Literal }
func (i *InterfaceDecl) Pos() diagnostics.Span { return i.Tok.Span }
func (i *InterfaceDecl) itemNode()             {}
func (i *InterfaceDecl) contractMemberNode()   {}
func (i *InterfaceDecl) String() string {
	return "interface " + i.Name
}
