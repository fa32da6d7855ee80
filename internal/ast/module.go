package ast

import (
	"strings"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
)

// Module is the root of a parsed source file: a run of import statements
// followed by top-level items (contracts, structs, enums, interfaces,
// free functions).
type Module struct {
	Imports []*ImportStmt
	Items   []Item
}

func (m *Module) TokenLiteral() string {
	if len(m.Imports) > 0 {
		return m.Imports[0].TokenLiteral()
	}
	if len(m.Items) > 0 {
		return m.Items[0].TokenLiteral()
	}
	return ""
}

func (m *Module) Pos() diagnostics.Span {
	if len(m.Imports) > 0 {
		return m.Imports[0].Pos()
	}
	if len(m.Items) > 0 {
		return m.Items[0].Pos()
	}
	return diagnostics.Span{}
}

func (m *Module) String() string {
	var b strings.Builder
	for _, imp := range m.Imports {
		b.WriteString(imp.String())
		b.WriteByte('\n')
	}
	for _, item := range m.Items {
		b.WriteString(item.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// ImportStmt is `from module import name [as alias], ...` or
// `import module`. Resolving the imported module's contents is explicitly
// out of core scope (spec.md Non-goals); the parser and analyzer only
// record the names referenced.
type ImportStmt struct {
	Tok     lexer.Token
	Module  string
	Names   []ImportedName
	Whole   bool // true for `import module` with no `from`
}

type ImportedName struct {
	Name  string
	Alias string
}

func (i *ImportStmt) TokenLiteral() string      { return i.Tok.Literal }
func (i *ImportStmt) Pos() diagnostics.Span     { return i.Tok.Span }
func (i *ImportStmt) itemNode()                 {}
func (i *ImportStmt) String() string {
	if i.Whole {
		return "import " + i.Module
	}
	parts := make([]string, len(i.Names))
	for idx, n := range i.Names {
		if n.Alias != "" {
			parts[idx] = n.Name + " as " + n.Alias
		} else {
			parts[idx] = n.Name
		}
	}
	return "from " + i.Module + " import " + strings.Join(parts, ", ")
}
