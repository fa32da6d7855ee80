package parser

import (
	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
)

// parseBlock parses `:` NEWLINE INDENT stmt+ DEDENT, the indented-suite
// grammar every compound statement shares. The leading colon is expected
// by the caller before parseBlock is invoked.
func (p *Parser) parseBlock() ([]ast.Stmt, *Error) {
	if _, err := p.expect(lexer.NEWLINE); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.INDENT); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.curIs(lexer.DEDENT) && !p.curIs(lexer.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.DEDENT); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (ast.Stmt, *Error) {
	switch p.cur().Type {
	case lexer.LET:
		return p.parseLetStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.PASS:
		return &ast.PassStmt{Tok: p.advance()}, nil
	case lexer.BREAK:
		return &ast.BreakStmt{Tok: p.advance()}, nil
	case lexer.CONTINUE:
		return &ast.ContinueStmt{Tok: p.advance()}, nil
	case lexer.REQUIRE:
		return p.parseRequireStmt()
	case lexer.EMIT:
		return p.parseEmitStmt()
	case lexer.RAISE:
		return p.parseRaiseStmt()
	default:
		return p.parseExprOrAssignStmt()
	}
}

func (p *Parser) parseLetStmt() (ast.Stmt, *Error) {
	tok := p.advance()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	var varType ast.Type
	if p.curIs(lexer.COLON) {
		p.advance()
		varType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.LetStmt{Tok: tok, Name: name.Literal, VarType: varType, Value: value}, nil
}

func (p *Parser) parseIfStmt() (ast.Stmt, *Error) {
	tok := p.advance()
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{Tok: tok, Cond: cond, Body: body}

	for p.curIs(lexer.ELIF) {
		p.advance()
		elifCond, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		elifBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.ElifConds = append(stmt.ElifConds, elifCond)
		stmt.ElifBody = append(stmt.ElifBody, elifBody)
	}

	if p.curIs(lexer.ELSE) {
		p.advance()
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		elseBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBody
	}

	return stmt, nil
}

// parseForStmt parses `for name in range(stop)`,
// `for name in range(start, stop)`, or `for name in range(start, stop,
// step):`, the only iteration form spec.md resolves for core scope.
func (p *Parser) parseForStmt() (ast.Stmt, *Error) {
	tok := p.advance()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RANGE); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	first, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	stmt := &ast.ForStmt{Tok: tok, Var: name.Literal}

	if p.curIs(lexer.COMMA) {
		p.advance()
		second, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		stmt.Start, stmt.Stop = first, second
		if p.curIs(lexer.COMMA) {
			p.advance()
			step, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			stmt.Step = step
		}
	} else {
		stmt.Stop = first
	}

	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

func (p *Parser) parseWhileStmt() (ast.Stmt, *Error) {
	tok := p.advance()
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Tok: tok, Cond: cond, Body: body}, nil
}

func (p *Parser) parseReturnStmt() (ast.Stmt, *Error) {
	tok := p.advance()
	if p.curIs(lexer.NEWLINE) || p.curIs(lexer.DEDENT) || p.curIs(lexer.EOF) {
		return &ast.ReturnStmt{Tok: tok}, nil
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Tok: tok, Value: value}, nil
}

func (p *Parser) parseRequireStmt() (ast.Stmt, *Error) {
	tok := p.advance()
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt := &ast.RequireStmt{Tok: tok, Cond: cond}
	if p.curIs(lexer.COMMA) {
		p.advance()
		msg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		stmt.Message = msg
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseEmitStmt() (ast.Stmt, *Error) {
	tok := p.advance()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	args, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	return &ast.EmitStmt{Tok: tok, Event: name.Literal, Args: args}, nil
}

func (p *Parser) parseRaiseStmt() (ast.Stmt, *Error) {
	tok := p.advance()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	args, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	return &ast.RaiseStmt{Tok: tok, Error: name.Literal, Args: args}, nil
}

func (p *Parser) parseCallArgs() ([]ast.Expr, *Error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for !p.curIs(lexer.RPAREN) {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

var augAssignOps = map[lexer.TokenType]ast.BinOp{
	lexer.PLUS_ASSIGN:    ast.OpAdd,
	lexer.MINUS_ASSIGN:   ast.OpSub,
	lexer.STAR_ASSIGN:    ast.OpMul,
	lexer.SLASH_ASSIGN:   ast.OpDiv,
	lexer.PERCENT_ASSIGN: ast.OpMod,
}

// parseExprOrAssignStmt parses a bare expression statement, a plain
// assignment, or an augmented assignment, desugaring the latter to
// `target = target op value` during parsing per spec.md §4.2 and
// SPEC_FULL.md §4's note on AugAssignStmt remaining analyzer-unreachable.
func (p *Parser) parseExprOrAssignStmt() (ast.Stmt, *Error) {
	tok := p.cur()
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	switch p.cur().Type {
	case lexer.ASSIGN:
		p.advance()
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Tok: tok, Target: expr, Value: value}, nil

	case lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN, lexer.STAR_ASSIGN, lexer.SLASH_ASSIGN, lexer.PERCENT_ASSIGN:
		opTok := p.advance()
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		desugared := &ast.BinaryExpr{Tok: opTok, Left: expr, Op: augAssignOps[opTok.Type], Right: value}
		return &ast.AssignStmt{Tok: tok, Target: expr, Value: desugared}, nil

	default:
		return &ast.ExprStmt{Tok: tok, Expr: expr}, nil
	}
}
