package ast

// Encode converts any AST node into a canonical JSON-able value: a
// map[string]any tagged with a "kind" field naming the concrete node
// type, per spec.md §6.2's wire contract for external tooling. Encode is
// a plain function rather than a MarshalJSON method on every node type so
// that internal/astjson can post-process the result with gjson/sjson
// before final serialization.
func Encode(n Node) any {
	switch v := n.(type) {
	case *Module:
		imports := make([]any, len(v.Imports))
		for i, imp := range v.Imports {
			imports[i] = Encode(imp)
		}
		items := make([]any, len(v.Items))
		for i, it := range v.Items {
			items[i] = Encode(it)
		}
		return map[string]any{"kind": "Module", "imports": imports, "items": items}

	case *ImportStmt:
		names := make([]any, len(v.Names))
		for i, n := range v.Names {
			names[i] = map[string]any{"name": n.Name, "alias": n.Alias}
		}
		return map[string]any{"kind": "Import", "module": v.Module, "whole": v.Whole, "names": names}

	case *ContractDecl:
		members := make([]any, len(v.Members))
		for i, m := range v.Members {
			members[i] = Encode(m)
		}
		return map[string]any{"kind": "Contract", "name": v.Name, "bases": v.Bases, "members": members}

	case *StateVar:
		return map[string]any{"kind": "StateVar", "name": v.Name, "type": v.VarType.String(), "public": v.Public}

	case *Constant:
		return map[string]any{"kind": "Constant", "name": v.Name, "type": v.VarType.String(), "value": Encode(v.Value)}

	case *EventDecl:
		return map[string]any{"kind": "Event", "name": v.Name, "params": encodeEventParams(v.Params)}

	case *ErrorDecl:
		return map[string]any{"kind": "Error", "name": v.Name, "params": encodeEventParams(v.Params)}

	case *StructDecl:
		fields := make([]any, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = map[string]any{"name": f.Name, "type": f.VarType.String()}
		}
		return map[string]any{"kind": "Struct", "name": v.Name, "fields": fields}

	case *EnumDecl:
		return map[string]any{"kind": "Enum", "name": v.Name, "variants": v.Variants}

	case *InterfaceDecl:
		return map[string]any{"kind": "Interface", "name": v.Name}

	case *Function:
		params := make([]any, len(v.Params))
		for i, p := range v.Params {
			params[i] = map[string]any{"name": p.Name, "type": p.VarType.String()}
		}
		decorators := make([]string, len(v.Decorators))
		for i, d := range v.Decorators {
			decorators[i] = d.Name
		}
		returns := "void"
		if v.Returns != nil {
			returns = v.Returns.String()
		}
		body := make([]any, len(v.Body))
		for i, s := range v.Body {
			body[i] = Encode(s)
		}
		return map[string]any{
			"kind": "Function", "name": v.Name, "decorators": decorators,
			"params": params, "returns": returns, "body": body,
		}

	case *LetStmt:
		return map[string]any{"kind": "Let", "name": v.Name, "value": Encode(v.Value)}
	case *AssignStmt:
		return map[string]any{"kind": "Assign", "target": Encode(v.Target), "value": Encode(v.Value)}
	case *AugAssignStmt:
		return map[string]any{"kind": "AugAssign", "target": Encode(v.Target), "value": Encode(v.Value)}
	case *ExprStmt:
		return map[string]any{"kind": "ExprStmt", "expr": Encode(v.Expr)}
	case *IfStmt:
		return map[string]any{"kind": "If", "cond": Encode(v.Cond), "body": encodeStmts(v.Body), "else": encodeStmts(v.Else)}
	case *ForStmt:
		return map[string]any{"kind": "For", "var": v.Var, "body": encodeStmts(v.Body)}
	case *WhileStmt:
		return map[string]any{"kind": "While", "cond": Encode(v.Cond), "body": encodeStmts(v.Body)}
	case *ReturnStmt:
		if v.Value == nil {
			return map[string]any{"kind": "Return"}
		}
		return map[string]any{"kind": "Return", "value": Encode(v.Value)}
	case *PassStmt:
		return map[string]any{"kind": "Pass"}
	case *BreakStmt:
		return map[string]any{"kind": "Break"}
	case *ContinueStmt:
		return map[string]any{"kind": "Continue"}
	case *RequireStmt:
		return map[string]any{"kind": "Require", "cond": Encode(v.Cond)}
	case *EmitStmt:
		return map[string]any{"kind": "Emit", "event": v.Event, "args": encodeExprs(v.Args)}
	case *RaiseStmt:
		return map[string]any{"kind": "Raise", "error": v.Error, "args": encodeExprs(v.Args)}

	case *Identifier:
		return map[string]any{"kind": "Identifier", "name": v.Name}
	case *SelfExpr:
		return map[string]any{"kind": "Self"}
	case *IntLiteral:
		return map[string]any{"kind": "IntLiteral", "value": v.Value}
	case *FloatLiteral:
		return map[string]any{"kind": "FloatLiteral", "value": v.Value}
	case *StringLiteral:
		return map[string]any{"kind": "StringLiteral", "value": v.Value}
	case *BoolLiteral:
		return map[string]any{"kind": "BoolLiteral", "value": v.Value}
	case *NoneLiteral:
		return map[string]any{"kind": "NoneLiteral"}
	case *BinaryExpr:
		return map[string]any{"kind": "BinaryExpr", "op": v.Op.String(), "left": Encode(v.Left), "right": Encode(v.Right)}
	case *UnaryExpr:
		return map[string]any{"kind": "UnaryExpr", "op": v.Op.String(), "operand": Encode(v.Operand)}
	case *CallExpr:
		return map[string]any{"kind": "Call", "callee": Encode(v.Callee), "args": encodeExprs(v.Args)}
	case *AttributeExpr:
		return map[string]any{"kind": "Attribute", "object": Encode(v.Object), "name": v.Name}
	case *IndexExpr:
		return map[string]any{"kind": "Index", "container": Encode(v.Container), "index": Encode(v.Index)}
	case *ListExpr:
		return map[string]any{"kind": "List", "elements": encodeExprs(v.Elements)}
	case *TupleExpr:
		return map[string]any{"kind": "Tuple", "elements": encodeExprs(v.Elements)}

	default:
		return map[string]any{"kind": "Unknown"}
	}
}

func encodeStmts(stmts []Stmt) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = Encode(s)
	}
	return out
}

func encodeExprs(exprs []Expr) []any {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		out[i] = Encode(e)
	}
	return out
}

func encodeEventParams(params []EventParam) []any {
	out := make([]any, len(params))
	for i, p := range params {
		out[i] = map[string]any{"name": p.Name, "type": p.VarType.String(), "indexed": p.Indexed}
	}
	return out
}
