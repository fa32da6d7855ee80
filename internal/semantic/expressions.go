package semantic

import (
	"strconv"
	"strings"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
)

// checkExpr type-checks expr, annotating it via SetType as a side effect,
// and returns its resolved type. This is the expression half of the
// per-function body-checking pass; checkStmt drives it for every
// sub-expression a statement contains.
func (a *Analyzer) checkExpr(expr ast.Expr, scope *SymbolTable, ctx *funcCtx) (ast.Type, *Error) {
	t, err := a.inferExpr(expr, scope, ctx)
	if err != nil {
		return nil, err
	}
	expr.SetType(&ast.TypeAnnotation{Type: t})
	return t, nil
}

func (a *Analyzer) inferExpr(expr ast.Expr, scope *SymbolTable, ctx *funcCtx) (ast.Type, *Error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		sym, ok := scope.Resolve(e.Name)
		if !ok {
			return nil, errorf(e.Pos(), "undefined name %q", e.Name)
		}
		return sym.Type, nil

	case *ast.SelfExpr:
		return ast.Named{Name: ctx.contract.Decl.Name}, nil

	case *ast.IntLiteral:
		return ast.SizedInt{Signed: false, Bits: 256}, nil

	case *ast.FloatLiteral:
		return ast.Unknown{}, nil

	case *ast.StringLiteral:
		return ast.Simple{Name: "str"}, nil

	case *ast.BoolLiteral:
		return ast.Simple{Name: "bool"}, nil

	case *ast.NoneLiteral:
		return ast.NoneType{}, nil

	case *ast.BinaryExpr:
		return a.checkBinaryExpr(e, scope, ctx)

	case *ast.UnaryExpr:
		return a.checkUnaryExpr(e, scope, ctx)

	case *ast.CallExpr:
		return a.checkCallExpr(e, scope, ctx)

	case *ast.AttributeExpr:
		return a.checkAttributeExpr(e, scope, ctx)

	case *ast.IndexExpr:
		containerType, err := a.checkExpr(e.Container, scope, ctx)
		if err != nil {
			return nil, err
		}
		if _, err := a.checkExpr(e.Index, scope, ctx); err != nil {
			return nil, err
		}
		elemType, ok := elementType(containerType)
		if !ok {
			return nil, errorf(e.Pos(), "cannot index into %s", containerType)
		}
		return elemType, nil

	case *ast.ListExpr:
		if len(e.Elements) == 0 {
			return ast.List{Elem: ast.Unknown{}}, nil
		}
		first, err := a.checkExpr(e.Elements[0], scope, ctx)
		if err != nil {
			return nil, err
		}
		for _, el := range e.Elements[1:] {
			t, err := a.checkExpr(el, scope, ctx)
			if err != nil {
				return nil, err
			}
			if !IsAssignable(t, first) {
				return nil, errorf(el.Pos(), "list elements must share a type: %s vs %s", first, t)
			}
		}
		return ast.List{Elem: first}, nil

	case *ast.TupleExpr:
		elems := make([]ast.Type, len(e.Elements))
		for i, el := range e.Elements {
			t, err := a.checkExpr(el, scope, ctx)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return ast.Tuple{Elems: elems}, nil

	default:
		return nil, errorf(expr.Pos(), "unsupported expression %T", expr)
	}
}

func (a *Analyzer) checkBinaryExpr(e *ast.BinaryExpr, scope *SymbolTable, ctx *funcCtx) (ast.Type, *Error) {
	left, err := a.checkExpr(e.Left, scope, ctx)
	if err != nil {
		return nil, err
	}
	right, err := a.checkExpr(e.Right, scope, ctx)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.OpAnd, ast.OpOr:
		if !isBoolLike(left) || !isBoolLike(right) {
			return nil, errorf(e.Pos(), "operands of %s must be bool", e.Op)
		}
		return ast.Simple{Name: "bool"}, nil

	case ast.OpEq, ast.OpNotEq, ast.OpLt, ast.OpLtEq, ast.OpGt, ast.OpGtEq:
		if !IsAssignable(left, right) && !IsAssignable(right, left) {
			return nil, errorf(e.Pos(), "cannot compare %s with %s", left, right)
		}
		return ast.Simple{Name: "bool"}, nil

	case ast.OpIn:
		if _, ok := elementType(right); !ok {
			if _, isMapping := right.(ast.Mapping); !isMapping {
				return nil, errorf(e.Pos(), "right-hand side of 'in' must be a list, array, or mapping")
			}
		}
		return ast.Simple{Name: "bool"}, nil

	default:
		if !IsNumeric(left) && !isUnknownType(left) {
			return nil, errorf(e.Pos(), "left operand of %s must be numeric, got %s", e.Op, left)
		}
		if !IsNumeric(right) && !isUnknownType(right) {
			return nil, errorf(e.Pos(), "right operand of %s must be numeric, got %s", e.Op, right)
		}
		if l, lok := left.(ast.SizedInt); lok {
			if r, rok := right.(ast.SizedInt); rok && l.Signed != r.Signed {
				return nil, errorf(e.Pos(), "cannot mix signed and unsigned operands in %s", e.Op)
			}
		}
		return PromotedType(left, right), nil
	}
}

func (a *Analyzer) checkUnaryExpr(e *ast.UnaryExpr, scope *SymbolTable, ctx *funcCtx) (ast.Type, *Error) {
	operandType, err := a.checkExpr(e.Operand, scope, ctx)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case ast.OpNot:
		if !isBoolLike(operandType) {
			return nil, errorf(e.Pos(), "'not' requires bool, got %s", operandType)
		}
		return ast.Simple{Name: "bool"}, nil
	case ast.OpNeg, ast.OpBitNot:
		if !IsNumeric(operandType) && !isUnknownType(operandType) {
			return nil, errorf(e.Pos(), "unary %s requires a numeric operand, got %s", e.Op, operandType)
		}
		return operandType, nil
	default:
		return nil, errorf(e.Pos(), "unsupported unary operator")
	}
}

func isUnknownType(t ast.Type) bool {
	_, ok := t.(ast.Unknown)
	return ok
}

// builtinSizedTypeName parses a builtin numeric/bytes conversion function
// name such as "uint256", "int8", or "bytes32" into its ast.Type, mirrored
// on internal/lexer's sized-type recognition rules.
func builtinSizedTypeName(name string) (ast.Type, bool) {
	switch {
	case strings.HasPrefix(name, "uint"):
		if n, ok := parseBitWidth(name[4:]); ok {
			return ast.SizedInt{Signed: false, Bits: n}, true
		}
	case strings.HasPrefix(name, "int"):
		if n, ok := parseBitWidth(name[3:]); ok {
			return ast.SizedInt{Signed: true, Bits: n}, true
		}
	case strings.HasPrefix(name, "bytes"):
		if n, err := strconv.Atoi(name[5:]); err == nil && n >= 1 && n <= 32 {
			return ast.Bytes{N: n}, true
		}
	}
	switch name {
	case "address", "bool", "str":
		return ast.Simple{Name: name}, true
	}
	return nil, false
}

func parseBitWidth(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 8 || n > 256 || n%8 != 0 {
		return 0, false
	}
	return n, true
}

func (a *Analyzer) checkCallExpr(e *ast.CallExpr, scope *SymbolTable, ctx *funcCtx) (ast.Type, *Error) {
	if ident, ok := e.Callee.(*ast.Identifier); ok {
		if builtin, ok := builtinSizedTypeName(ident.Name); ok {
			if len(e.Args) != 1 {
				return nil, errorf(e.Pos(), "conversion %s expects exactly 1 argument", ident.Name)
			}
			if _, err := a.checkExpr(e.Args[0], scope, ctx); err != nil {
				return nil, err
			}
			return builtin, nil
		}
		if sym, ok := ctx.contract.Symbols.ResolveLocal(ident.Name); ok && sym.Kind == SymbolFunction {
			fn := sym.Node.(*ast.Function)
			if err := a.checkCallArgs(e.Args, fn.Params, scope, ctx); err != nil {
				return nil, err
			}
			if fn.Returns == nil {
				return ast.Void{}, nil
			}
			return fn.Returns, nil
		}
		return nil, errorf(e.Pos(), "undefined function %q", ident.Name)
	}

	if attr, ok := e.Callee.(*ast.AttributeExpr); ok {
		if _, isSelf := attr.Object.(*ast.SelfExpr); isSelf {
			sym, ok := ctx.contract.Symbols.ResolveLocal(attr.Name)
			if !ok || sym.Kind != SymbolFunction {
				return nil, errorf(e.Pos(), "undefined method %q on contract %q", attr.Name, ctx.contract.Decl.Name)
			}
			fn := sym.Node.(*ast.Function)
			if err := a.checkCallArgs(e.Args, fn.Params, scope, ctx); err != nil {
				return nil, err
			}
			if fn.Returns == nil {
				return ast.Void{}, nil
			}
			return fn.Returns, nil
		}
		// External call through an interface/contract-typed value: the
		// receiver's own type checking stands in for full interface method
		// resolution, which codegen does not yet need structurally.
		if _, err := a.checkExpr(attr.Object, scope, ctx); err != nil {
			return nil, err
		}
		for _, arg := range e.Args {
			if _, err := a.checkExpr(arg, scope, ctx); err != nil {
				return nil, err
			}
		}
		return ast.Unknown{}, nil
	}

	return nil, errorf(e.Pos(), "uncallable expression")
}

func (a *Analyzer) checkCallArgs(args []ast.Expr, params []ast.Param, scope *SymbolTable, ctx *funcCtx) *Error {
	if len(args) != len(params) {
		return errorf(argsSpan(args), "expected %d argument(s), got %d", len(params), len(args))
	}
	for i, arg := range args {
		t, err := a.checkExpr(arg, scope, ctx)
		if err != nil {
			return err
		}
		if !IsAssignable(t, params[i].VarType) {
			return errorf(arg.Pos(), "argument %d: cannot use %s as %s", i+1, t, params[i].VarType)
		}
	}
	return nil
}

// ambientMembers types the fixed set of EVM execution-context globals
// Quorlin exposes without a declaration, grounded on
// original_source/crates/quorlin-semantics/src/types.rs's builtin
// environment table.
var ambientMembers = map[string]map[string]ast.Type{
	"msg":   {"sender": ast.Simple{Name: "address"}, "value": ast.SizedInt{Signed: false, Bits: 256}, "data": ast.Bytes{N: 32}},
	"block": {"timestamp": ast.SizedInt{Signed: false, Bits: 256}, "number": ast.SizedInt{Signed: false, Bits: 256}},
	"tx":    {"origin": ast.Simple{Name: "address"}},
}

func (a *Analyzer) checkAttributeExpr(e *ast.AttributeExpr, scope *SymbolTable, ctx *funcCtx) (ast.Type, *Error) {
	if ident, ok := e.Object.(*ast.Identifier); ok {
		if members, isAmbient := ambientMembers[ident.Name]; isAmbient {
			if _, bound := scope.Resolve(ident.Name); !bound {
				t, ok := members[e.Name]
				if !ok {
					return nil, errorf(e.Pos(), "%s has no member %q", ident.Name, e.Name)
				}
				return t, nil
			}
		}
	}

	if _, isSelf := e.Object.(*ast.SelfExpr); isSelf {
		sym, ok := ctx.contract.Symbols.ResolveLocal(e.Name)
		if !ok || (sym.Kind != SymbolState && sym.Kind != SymbolConstant) {
			return nil, errorf(e.Pos(), "%q is not a state variable or constant of contract %q", e.Name, ctx.contract.Decl.Name)
		}
		return sym.Type, nil
	}

	if ident, ok := e.Object.(*ast.Identifier); ok {
		if enumDecl, isEnum := a.enums[ident.Name]; isEnum {
			if _, bound := scope.Resolve(ident.Name); !bound {
				for _, variant := range enumDecl.Variants {
					if variant == e.Name {
						return ast.Named{Name: ident.Name}, nil
					}
				}
				return nil, errorf(e.Pos(), "enum %q has no variant %q", ident.Name, e.Name)
			}
		}
	}

	objType, err := a.checkExpr(e.Object, scope, ctx)
	if err != nil {
		return nil, err
	}
	return a.structFieldType(objType, e.Name, e.Pos())
}
