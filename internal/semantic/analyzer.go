package semantic

import (
	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
)

// ContractInfo is the gathered, name-resolved view of one contract,
// handed to internal/codegen/evm after analysis succeeds.
type ContractInfo struct {
	Decl      *ast.ContractDecl
	StateVars []*ast.StateVar
	Constants []*ast.Constant
	Events    map[string]*ast.EventDecl
	Errors    map[string]*ast.ErrorDecl
	Functions []*ast.Function
	Symbols   *SymbolTable
}

// Program is the result of a successful Analyze call: the original,
// now type-annotated Module plus the resolved per-contract metadata the
// code generator needs (storage member lists, event/error tables).
type Program struct {
	Module    *ast.Module
	Contracts []*ContractInfo
	Structs   map[string]*ast.StructDecl
	Enums     map[string]*ast.EnumDecl
}

var validDecorators = map[string]bool{
	"external": true, "view": true, "pure": true, "payable": true, "constructor": true,
}

// Analyzer performs the two-pass analysis spec.md §4.3 describes: a
// global gathering pass over every contract's declared members, followed
// by a per-function body-checking pass, grounded in shape on the
// teacher's internal/semantic/analyzer.go Analyzer (global symbol table
// plus nested per-scope checking) though Quorlin's much smaller type
// system needs none of DWScript's class/record/set machinery.
type Analyzer struct {
	global     *SymbolTable
	structs    map[string]*ast.StructDecl
	enums      map[string]*ast.EnumDecl
	interfaces map[string]*ast.InterfaceDecl
	contracts  map[string]*ContractInfo
}

// NewAnalyzer constructs an empty Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		global:     NewSymbolTable(),
		structs:    make(map[string]*ast.StructDecl),
		enums:      make(map[string]*ast.EnumDecl),
		interfaces: make(map[string]*ast.InterfaceDecl),
		contracts:  make(map[string]*ContractInfo),
	}
}

// Analyze runs both passes over mod. It returns the resolved Program, the
// security pass's warnings (always populated when analysis otherwise
// succeeds), and the first fatal semantic error encountered, if any.
func (a *Analyzer) Analyze(mod *ast.Module) (*Program, []Warning, *Error) {
	if err := a.gatherDeclarations(mod); err != nil {
		return nil, nil, err
	}
	if err := a.checkContractBodies(); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for _, ci := range a.contracts {
		warnings = append(warnings, runSecurityPass(ci)...)
	}

	prog := &Program{Module: mod, Structs: a.structs, Enums: a.enums}
	for _, ci := range a.contracts {
		prog.Contracts = append(prog.Contracts, ci)
	}
	return prog, warnings, nil
}

func (a *Analyzer) gatherDeclarations(mod *ast.Module) *Error {
	for _, item := range mod.Items {
		switch v := item.(type) {
		case *ast.StructDecl:
			if _, exists := a.structs[v.Name]; exists {
				return errorf(v.Pos(), "struct %q already declared", v.Name)
			}
			a.structs[v.Name] = v
			a.global.Define(&Symbol{Name: v.Name, Kind: SymbolStruct, Node: v})
		case *ast.EnumDecl:
			if _, exists := a.enums[v.Name]; exists {
				return errorf(v.Pos(), "enum %q already declared", v.Name)
			}
			a.enums[v.Name] = v
			a.global.Define(&Symbol{Name: v.Name, Kind: SymbolEnum, Node: v})
		case *ast.InterfaceDecl:
			a.interfaces[v.Name] = v
			a.global.Define(&Symbol{Name: v.Name, Kind: SymbolInterface, Node: v})
		case *ast.ContractDecl:
			if err := a.gatherContract(v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Analyzer) gatherContract(decl *ast.ContractDecl) *Error {
	if _, exists := a.contracts[decl.Name]; exists {
		return errorf(decl.Pos(), "contract %q already declared", decl.Name)
	}

	ci := &ContractInfo{
		Decl:    decl,
		Events:  make(map[string]*ast.EventDecl),
		Errors:  make(map[string]*ast.ErrorDecl),
		Symbols: NewEnclosedSymbolTable(a.global),
	}

	for _, member := range decl.Members {
		switch m := member.(type) {
		case *ast.StateVar:
			if !ci.Symbols.Define(&Symbol{Name: m.Name, Kind: SymbolState, Type: m.VarType, Node: m}) {
				return errorf(m.Pos(), "member %q already declared in contract %q", m.Name, decl.Name)
			}
			ci.StateVars = append(ci.StateVars, m)
		case *ast.Constant:
			if !ci.Symbols.Define(&Symbol{Name: m.Name, Kind: SymbolConstant, Type: m.VarType, Node: m}) {
				return errorf(m.Pos(), "member %q already declared in contract %q", m.Name, decl.Name)
			}
			ci.Constants = append(ci.Constants, m)
		case *ast.EventDecl:
			ci.Events[m.Name] = m
		case *ast.ErrorDecl:
			ci.Errors[m.Name] = m
		case *ast.StructDecl:
			if _, exists := a.structs[m.Name]; exists {
				return errorf(m.Pos(), "struct %q already declared", m.Name)
			}
			a.structs[m.Name] = m
		case *ast.EnumDecl:
			if _, exists := a.enums[m.Name]; exists {
				return errorf(m.Pos(), "enum %q already declared", m.Name)
			}
			a.enums[m.Name] = m
		case *ast.InterfaceDecl:
			a.interfaces[m.Name] = m
		case *ast.Function:
			returns := m.Returns
			if returns == nil {
				returns = ast.Void{}
			}
			if !ci.Symbols.Define(&Symbol{Name: m.Name, Kind: SymbolFunction, Type: returns, Node: m}) {
				return errorf(m.Pos(), "function %q already declared in contract %q", m.Name, decl.Name)
			}
			ci.Functions = append(ci.Functions, m)
			for _, d := range m.Decorators {
				if !validDecorators[d.Name] {
					return errorf(m.Pos(), "unknown decorator @%s on function %q", d.Name, m.Name)
				}
			}
		}
	}

	a.contracts[decl.Name] = ci
	a.global.Define(&Symbol{Name: decl.Name, Kind: SymbolContract, Node: decl})
	return nil
}

func (a *Analyzer) checkContractBodies() *Error {
	for _, ci := range a.contracts {
		for _, fn := range ci.Functions {
			if err := a.checkFunctionBody(ci, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// funcCtx threads per-function checking state (expected return type, loop
// nesting depth for break/continue validation, and whether the function
// is read-only) through the statement/expression checkers.
type funcCtx struct {
	contract *ContractInfo
	fn       *ast.Function
	returns  ast.Type
	loops    int
	readOnly bool
}

func (a *Analyzer) checkFunctionBody(ci *ContractInfo, fn *ast.Function) *Error {
	scope := NewEnclosedSymbolTable(ci.Symbols)
	for _, p := range fn.Params {
		scope.Define(&Symbol{Name: p.Name, Kind: SymbolParam, Type: p.VarType})
	}

	returns := fn.Returns
	if returns == nil {
		returns = ast.Void{}
	}

	ctx := &funcCtx{contract: ci, fn: fn, returns: returns, readOnly: fn.IsView()}

	for _, stmt := range fn.Body {
		if err := a.checkStmt(stmt, scope, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) checkStmt(stmt ast.Stmt, scope *SymbolTable, ctx *funcCtx) *Error {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		valueType, err := a.checkExpr(s.Value, scope, ctx)
		if err != nil {
			return err
		}
		declared := s.VarType
		if declared == nil {
			declared = valueType
		} else if !IsAssignable(valueType, declared) {
			return errorf(s.Pos(), "cannot assign %s to %s in let %s", valueType, declared, s.Name)
		}
		if !scope.Define(&Symbol{Name: s.Name, Kind: SymbolLocal, Type: declared}) {
			return errorf(s.Pos(), "local %q already declared in this scope", s.Name)
		}
		return nil

	case *ast.AssignStmt:
		return a.checkAssign(s, scope, ctx)

	case *ast.ExprStmt:
		_, err := a.checkExpr(s.Expr, scope, ctx)
		return err

	case *ast.IfStmt:
		condType, err := a.checkExpr(s.Cond, scope, ctx)
		if err != nil {
			return err
		}
		if !isBoolLike(condType) {
			return errorf(s.Cond.Pos(), "if condition must be bool, got %s", condType)
		}
		if err := a.checkBlock(s.Body, scope, ctx); err != nil {
			return err
		}
		for i, cond := range s.ElifConds {
			ct, err := a.checkExpr(cond, scope, ctx)
			if err != nil {
				return err
			}
			if !isBoolLike(ct) {
				return errorf(cond.Pos(), "elif condition must be bool, got %s", ct)
			}
			if err := a.checkBlock(s.ElifBody[i], scope, ctx); err != nil {
				return err
			}
		}
		return a.checkBlock(s.Else, scope, ctx)

	case *ast.WhileStmt:
		condType, err := a.checkExpr(s.Cond, scope, ctx)
		if err != nil {
			return err
		}
		if !isBoolLike(condType) {
			return errorf(s.Cond.Pos(), "while condition must be bool, got %s", condType)
		}
		ctx.loops++
		err = a.checkBlock(s.Body, scope, ctx)
		ctx.loops--
		return err

	case *ast.ForStmt:
		loopScope := NewEnclosedSymbolTable(scope)
		loopScope.Define(&Symbol{Name: s.Var, Kind: SymbolLocal, Type: ast.SizedInt{Signed: false, Bits: 256}})
		for _, e := range []ast.Expr{s.Start, s.Stop, s.Step} {
			if e == nil {
				continue
			}
			t, err := a.checkExpr(e, scope, ctx)
			if err != nil {
				return err
			}
			if !IsNumeric(t) {
				if _, ok := t.(ast.Unknown); !ok {
					return errorf(e.Pos(), "range bound must be numeric, got %s", t)
				}
			}
		}
		ctx.loops++
		err := a.checkBlock(s.Body, loopScope, ctx)
		ctx.loops--
		return err

	case *ast.ReturnStmt:
		if s.Value == nil {
			if _, ok := ctx.returns.(ast.Void); !ok {
				return errorf(s.Pos(), "function %q must return a value of type %s", ctx.fn.Name, ctx.returns)
			}
			return nil
		}
		valueType, err := a.checkExpr(s.Value, scope, ctx)
		if err != nil {
			return err
		}
		if !IsAssignable(valueType, ctx.returns) {
			return errorf(s.Value.Pos(), "cannot return %s from function declared to return %s", valueType, ctx.returns)
		}
		return nil

	case *ast.PassStmt:
		return nil

	case *ast.BreakStmt:
		if ctx.loops == 0 {
			return errorf(s.Pos(), "break outside of a loop")
		}
		return nil

	case *ast.ContinueStmt:
		if ctx.loops == 0 {
			return errorf(s.Pos(), "continue outside of a loop")
		}
		return nil

	case *ast.RequireStmt:
		condType, err := a.checkExpr(s.Cond, scope, ctx)
		if err != nil {
			return err
		}
		if !isBoolLike(condType) {
			return errorf(s.Cond.Pos(), "require condition must be bool, got %s", condType)
		}
		if s.Message != nil {
			if _, err := a.checkExpr(s.Message, scope, ctx); err != nil {
				return err
			}
		}
		return nil

	case *ast.EmitStmt:
		event, ok := ctx.contract.Events[s.Event]
		if !ok {
			return errorf(s.Pos(), "unknown event %q", s.Event)
		}
		return a.checkArgsAgainstParams(s.Args, event.Params, scope, ctx, "event "+s.Event)

	case *ast.RaiseStmt:
		errDecl, ok := ctx.contract.Errors[s.Error]
		if !ok {
			return errorf(s.Pos(), "unknown error %q", s.Error)
		}
		return a.checkArgsAgainstParams(s.Args, errDecl.Params, scope, ctx, "error "+s.Error)

	default:
		return errorf(stmt.Pos(), "unsupported statement %T", stmt)
	}
}

func (a *Analyzer) checkBlock(stmts []ast.Stmt, outer *SymbolTable, ctx *funcCtx) *Error {
	if len(stmts) == 0 {
		return nil
	}
	scope := NewEnclosedSymbolTable(outer)
	for _, stmt := range stmts {
		if err := a.checkStmt(stmt, scope, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) checkArgsAgainstParams(args []ast.Expr, params []ast.EventParam, scope *SymbolTable, ctx *funcCtx, what string) *Error {
	if len(args) != len(params) {
		return errorf(argsSpan(args), "%s expects %d argument(s), got %d", what, len(params), len(args))
	}
	for i, arg := range args {
		t, err := a.checkExpr(arg, scope, ctx)
		if err != nil {
			return err
		}
		if !IsAssignable(t, params[i].VarType) {
			return errorf(arg.Pos(), "argument %d to %s: cannot use %s as %s", i+1, what, t, params[i].VarType)
		}
	}
	return nil
}

func argsSpan(args []ast.Expr) diagnostics.Span {
	if len(args) > 0 {
		return args[0].Pos()
	}
	return diagnostics.Span{}
}

func isBoolLike(t ast.Type) bool {
	if s, ok := t.(ast.Simple); ok && s.Name == "bool" {
		return true
	}
	_, ok := t.(ast.Unknown)
	return ok
}

func (a *Analyzer) checkAssign(s *ast.AssignStmt, scope *SymbolTable, ctx *funcCtx) *Error {
	targetType, err := a.checkLvalue(s.Target, scope, ctx)
	if err != nil {
		return err
	}
	valueType, err := a.checkExpr(s.Value, scope, ctx)
	if err != nil {
		return err
	}
	if !IsAssignable(valueType, targetType) {
		return errorf(s.Pos(), "cannot assign %s to %s", valueType, targetType)
	}
	return nil
}

// checkLvalue validates that s.Target is a writable location (a state
// variable through self, or a local/parameter), returning its type. It
// also verifies that @view/@pure functions never target a state
// variable.
func (a *Analyzer) checkLvalue(target ast.Expr, scope *SymbolTable, ctx *funcCtx) (ast.Type, *Error) {
	switch t := target.(type) {
	case *ast.Identifier:
		sym, ok := scope.Resolve(t.Name)
		if !ok {
			return nil, errorf(t.Pos(), "undefined name %q", t.Name)
		}
		t.SetType(&ast.TypeAnnotation{Type: sym.Type})
		return sym.Type, nil

	case *ast.AttributeExpr:
		if _, isSelf := t.Object.(*ast.SelfExpr); isSelf {
			sym, ok := ctx.contract.Symbols.ResolveLocal(t.Name)
			if !ok || sym.Kind != SymbolState {
				return nil, errorf(t.Pos(), "%q is not a state variable of contract %q", t.Name, ctx.contract.Decl.Name)
			}
			if ctx.readOnly {
				return nil, errorf(t.Pos(), "function %q is declared @view/@pure but writes to state variable %q", ctx.fn.Name, t.Name)
			}
			t.SetType(&ast.TypeAnnotation{Type: sym.Type})
			return sym.Type, nil
		}
		objType, err := a.checkExpr(t.Object, scope, ctx)
		if err != nil {
			return nil, err
		}
		fieldType, ferr := a.structFieldType(objType, t.Name, t.Pos())
		if ferr != nil {
			return nil, ferr
		}
		t.SetType(&ast.TypeAnnotation{Type: fieldType})
		return fieldType, nil

	case *ast.IndexExpr:
		containerType, err := a.checkExpr(t.Container, scope, ctx)
		if err != nil {
			return nil, err
		}
		_, err = a.checkExpr(t.Index, scope, ctx)
		if err != nil {
			return nil, err
		}
		elemType, ok := elementType(containerType)
		if !ok {
			return nil, errorf(t.Pos(), "cannot index into %s", containerType)
		}
		t.SetType(&ast.TypeAnnotation{Type: elemType})
		return elemType, nil

	default:
		return nil, errorf(target.Pos(), "invalid assignment target")
	}
}

func elementType(container ast.Type) (ast.Type, bool) {
	switch c := container.(type) {
	case ast.Mapping:
		return c.Value, true
	case ast.List:
		return c.Elem, true
	case ast.FixedArray:
		return c.Elem, true
	case ast.Unknown:
		return ast.Unknown{}, true
	default:
		return nil, false
	}
}

func (a *Analyzer) structFieldType(objType ast.Type, field string, pos diagnostics.Span) (ast.Type, *Error) {
	named, ok := objType.(ast.Named)
	if !ok {
		if _, isUnknown := objType.(ast.Unknown); isUnknown {
			return ast.Unknown{}, nil
		}
		return nil, errorf(pos, "cannot access field %q on non-struct type %s", field, objType)
	}
	decl, ok := a.structs[named.Name]
	if !ok {
		return nil, errorf(pos, "unknown struct type %q", named.Name)
	}
	for _, f := range decl.Fields {
		if f.Name == field {
			return f.VarType, nil
		}
	}
	return nil, errorf(pos, "struct %q has no field %q", named.Name, field)
}
