package semantic

import "github.com/EmekaIwuagwu/quorlin-lang/internal/ast"

// exemptFromAccessControl lists state-mutating function names that are
// conventionally guarded by their own token/ownership bookkeeping rather
// than a msg.sender require, grounded on
// original_source/crates/quorlin-semantics/src/security_analyzer.rs's
// allowlist for ERC20-shaped contracts.
var exemptFromAccessControl = map[string]bool{
	"transfer": true, "approve": true, "balance_of": true, "allowance": true,
}

// externalCallMethods names the low-level call forms the reentrancy and
// CEI heuristics treat as handing control to untrusted code.
var externalCallMethods = map[string]bool{
	"call": true, "delegatecall": true, "send": true, "transfer": true,
}

// runSecurityPass is the static, non-fatal heuristic pass spec.md §4.4
// describes: missing access control, reentrancy risk, and
// checks-effects-interactions ordering, grounded on
// original_source/crates/quorlin-semantics/src/security_analyzer.rs. It
// never returns an error; findings are always Warning values.
func runSecurityPass(ci *ContractInfo) []Warning {
	var warnings []Warning
	for _, fn := range ci.Functions {
		if fn.IsView() || fn.HasDecorator("constructor") {
			continue
		}
		if !stmtsMutateState(fn.Body) {
			continue
		}

		if !exemptFromAccessControl[fn.Name] && !hasAccessControlGuard(fn.Body) {
			warnings = append(warnings, Warning{
				Kind:     WarningMissingAccessControl,
				Function: fn.Name,
				Message:  "function \"" + fn.Name + "\" mutates state without a msg.sender access check",
				Span:     fn.Pos(),
			})
		}

		if stmtsContainExternalCall(fn.Body) {
			warnings = append(warnings, Warning{
				Kind:     WarningReentrancyRisk,
				Function: fn.Name,
				Message:  "function \"" + fn.Name + "\" makes an external call and also mutates state",
				Span:     fn.Pos(),
			})
		}

		if violatesCEI(fn.Body) {
			warnings = append(warnings, Warning{
				Kind:     WarningCEIViolation,
				Function: fn.Name,
				Message:  "function \"" + fn.Name + "\" mutates state after an external call",
				Span:     fn.Pos(),
			})
		}
	}
	return warnings
}

// hasAccessControlGuard reports whether body contains, at any nesting
// depth, a require() whose condition compares against msg.sender.
func hasAccessControlGuard(body []ast.Stmt) bool {
	for _, stmt := range body {
		switch s := stmt.(type) {
		case *ast.RequireStmt:
			if mentionsMsgSender(s.Cond) {
				return true
			}
		case *ast.IfStmt:
			if hasAccessControlGuard(s.Body) || hasAccessControlGuard(s.Else) {
				return true
			}
			for _, elifBody := range s.ElifBody {
				if hasAccessControlGuard(elifBody) {
					return true
				}
			}
		case *ast.WhileStmt:
			if hasAccessControlGuard(s.Body) {
				return true
			}
		case *ast.ForStmt:
			if hasAccessControlGuard(s.Body) {
				return true
			}
		}
	}
	return false
}

func mentionsMsgSender(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.BinaryExpr:
		return mentionsMsgSender(e.Left) || mentionsMsgSender(e.Right)
	case *ast.UnaryExpr:
		return mentionsMsgSender(e.Operand)
	case *ast.AttributeExpr:
		if objIdent, ok := e.Object.(*ast.Identifier); ok && objIdent.Name == "msg" && e.Name == "sender" {
			return true
		}
		return mentionsMsgSender(e.Object)
	case *ast.CallExpr:
		if mentionsMsgSender(e.Callee) {
			return true
		}
		for _, arg := range e.Args {
			if mentionsMsgSender(arg) {
				return true
			}
		}
	}
	return false
}

// stmtsMutateState reports whether body assigns to a self.X state
// variable, directly or through indexing such as self.X[k], anywhere at
// any nesting depth.
func stmtsMutateState(body []ast.Stmt) bool {
	for _, stmt := range body {
		if stmtMutatesState(stmt) {
			return true
		}
	}
	return false
}

func stmtMutatesState(stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		return targetsState(s.Target)
	case *ast.IfStmt:
		if stmtsMutateState(s.Body) || stmtsMutateState(s.Else) {
			return true
		}
		for _, elifBody := range s.ElifBody {
			if stmtsMutateState(elifBody) {
				return true
			}
		}
	case *ast.WhileStmt:
		return stmtsMutateState(s.Body)
	case *ast.ForStmt:
		return stmtsMutateState(s.Body)
	}
	return false
}

func targetsState(target ast.Expr) bool {
	for {
		idx, ok := target.(*ast.IndexExpr)
		if !ok {
			break
		}
		target = idx.Container
	}
	attr, ok := target.(*ast.AttributeExpr)
	if !ok {
		return false
	}
	_, isSelf := attr.Object.(*ast.SelfExpr)
	return isSelf
}

// stmtsContainExternalCall reports whether body calls a low-level
// call/send/transfer form anywhere at any nesting depth.
func stmtsContainExternalCall(body []ast.Stmt) bool {
	for _, stmt := range body {
		if stmtContainsExternalCall(stmt) {
			return true
		}
	}
	return false
}

func stmtContainsExternalCall(stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return exprContainsExternalCall(s.Expr)
	case *ast.LetStmt:
		return exprContainsExternalCall(s.Value)
	case *ast.AssignStmt:
		return exprContainsExternalCall(s.Value)
	case *ast.IfStmt:
		if stmtsContainExternalCall(s.Body) || stmtsContainExternalCall(s.Else) {
			return true
		}
		for _, elifBody := range s.ElifBody {
			if stmtsContainExternalCall(elifBody) {
				return true
			}
		}
	case *ast.WhileStmt:
		return stmtsContainExternalCall(s.Body)
	case *ast.ForStmt:
		return stmtsContainExternalCall(s.Body)
	}
	return false
}

func exprContainsExternalCall(expr ast.Expr) bool {
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		return false
	}
	if attr, ok := call.Callee.(*ast.AttributeExpr); ok {
		if _, isSelf := attr.Object.(*ast.SelfExpr); !isSelf && externalCallMethods[attr.Name] {
			return true
		}
	}
	for _, arg := range call.Args {
		if exprContainsExternalCall(arg) {
			return true
		}
	}
	return false
}

// violatesCEI walks body in statement order, tracking whether an external
// call has already been seen, and flags any state mutation that follows
// one — the checks-effects-interactions ordering rule.
func violatesCEI(body []ast.Stmt) bool {
	seenCall := false
	return cei(body, &seenCall)
}

func cei(body []ast.Stmt, seenCall *bool) bool {
	for _, stmt := range body {
		if *seenCall && stmtMutatesState(stmt) {
			return true
		}
		if stmtContainsExternalCall(stmt) {
			*seenCall = true
		}
		switch s := stmt.(type) {
		case *ast.IfStmt:
			branchSeen := *seenCall
			if cei(s.Body, &branchSeen) {
				return true
			}
			for _, elifBody := range s.ElifBody {
				branchSeen := *seenCall
				if cei(elifBody, &branchSeen) {
					return true
				}
			}
			elseSeen := *seenCall
			if cei(s.Else, &elseSeen) {
				return true
			}
		case *ast.WhileStmt:
			if cei(s.Body, seenCall) {
				return true
			}
		case *ast.ForStmt:
			if cei(s.Body, seenCall) {
				return true
			}
		}
	}
	return false
}
