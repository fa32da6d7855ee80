package parser

import (
	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
)

// parseExpression is the precedence-climbing core: it parses one prefix
// expression, then repeatedly extends it with infix operators whose
// precedence exceeds the caller's floor, mirroring the teacher's
// parseExpression(precedence int) loop in internal/parser/expressions.go.
func (p *Parser) parseExpression(precedence int) (ast.Expr, *Error) {
	prefix, ok := p.prefixParseFns[p.cur().Type]
	if !ok {
		return nil, errorf(p.cur().Span, "unexpected token %s in expression", p.cur().Type)
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for !p.curIs(lexer.NEWLINE) && precedence < peekPrecedence(p.cur()) {
		infix, ok := p.infixParseFns[p.cur().Type]
		if !ok {
			return left, nil
		}
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseIdentifier() (ast.Expr, *Error) {
	tok := p.advance()
	return &ast.Identifier{Tok: tok, Name: tok.Literal}, nil
}

func (p *Parser) parseSelf() (ast.Expr, *Error) {
	tok := p.advance()
	return &ast.SelfExpr{Tok: tok}, nil
}

func (p *Parser) parseIntLiteral() (ast.Expr, *Error) {
	tok := p.advance()
	return &ast.IntLiteral{Tok: tok, Value: tok.Literal}, nil
}

func (p *Parser) parseFloatLiteral() (ast.Expr, *Error) {
	tok := p.advance()
	return &ast.FloatLiteral{Tok: tok, Value: tok.Literal}, nil
}

func (p *Parser) parseStringLiteral() (ast.Expr, *Error) {
	tok := p.advance()
	return &ast.StringLiteral{Tok: tok, Value: tok.Literal}, nil
}

func (p *Parser) parseBoolLiteral() (ast.Expr, *Error) {
	tok := p.advance()
	return &ast.BoolLiteral{Tok: tok, Value: tok.Type == lexer.TRUE}, nil
}

func (p *Parser) parseNoneLiteral() (ast.Expr, *Error) {
	tok := p.advance()
	return &ast.NoneLiteral{Tok: tok}, nil
}

func (p *Parser) parseUnaryExpr() (ast.Expr, *Error) {
	tok := p.advance()
	var op ast.UnaryOp
	switch tok.Type {
	case lexer.MINUS:
		op = ast.OpNeg
	case lexer.NOT:
		op = ast.OpNot
	case lexer.TILDE:
		op = ast.OpBitNot
	}
	operand, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Tok: tok, Op: op, Operand: operand}, nil
}

// parseGroupedOrTuple disambiguates `(expr)` from `(a, b, ...)` by parsing
// the first expression and then checking for a comma; a comma continues
// the same parse as a tuple, so no backtracking is needed.
func (p *Parser) parseGroupedOrTuple() (ast.Expr, *Error) {
	lparen := p.advance()

	if p.curIs(lexer.RPAREN) {
		p.advance()
		return &ast.TupleExpr{Tok: lparen}, nil
	}

	first, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if p.curIs(lexer.COMMA) {
		elements := []ast.Expr{first}
		for p.curIs(lexer.COMMA) {
			p.advance()
			if p.curIs(lexer.RPAREN) {
				break
			}
			el, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return &ast.TupleExpr{Tok: lparen, Elements: elements}, nil
	}

	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return first, nil
}

func (p *Parser) parseListLiteral() (ast.Expr, *Error) {
	tok := p.advance()
	var elements []ast.Expr
	for !p.curIs(lexer.RBRACKET) {
		el, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ListExpr{Tok: tok, Elements: elements}, nil
}

var binOpFromToken = map[lexer.TokenType]ast.BinOp{
	lexer.PLUS:      ast.OpAdd,
	lexer.MINUS:     ast.OpSub,
	lexer.STAR:      ast.OpMul,
	lexer.SLASH:     ast.OpDiv,
	lexer.PERCENT:   ast.OpMod,
	lexer.STAR_STAR: ast.OpPow,
	lexer.EQ:        ast.OpEq,
	lexer.NOT_EQ:    ast.OpNotEq,
	lexer.LT:        ast.OpLt,
	lexer.GT:        ast.OpGt,
	lexer.LT_EQ:     ast.OpLtEq,
	lexer.GT_EQ:     ast.OpGtEq,
	lexer.AND:       ast.OpAnd,
	lexer.OR:        ast.OpOr,
	lexer.AMP:       ast.OpBitAnd,
	lexer.PIPE:      ast.OpBitOr,
	lexer.CARET:     ast.OpBitXor,
	lexer.SHL:       ast.OpShl,
	lexer.SHR:       ast.OpShr,
	lexer.IN:        ast.OpIn,
}

func (p *Parser) parseBinaryExpr(left ast.Expr) (ast.Expr, *Error) {
	tok := p.advance()
	precedence := peekPrecedence(tok)

	// ** is right-associative; every other operator here is left
	// associative, so only it recurses at one precedence lower than its
	// own, letting a same-precedence operator to its right bind again at
	// this level rather than be consumed as a sibling.
	var right ast.Expr
	var err *Error
	if tok.Type == lexer.STAR_STAR {
		right, err = p.parseExpression(precedence - 1)
	} else {
		right, err = p.parseExpression(precedence)
	}
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Tok: tok, Left: left, Op: binOpFromToken[tok.Type], Right: right}, nil
}

func (p *Parser) parseCallExpr(callee ast.Expr) (ast.Expr, *Error) {
	tok := p.advance()
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
	return &ast.CallExpr{Tok: tok, Callee: callee, Args: args}, nil
}

func (p *Parser) parseIndexExpr(container ast.Expr) (ast.Expr, *Error) {
	tok := p.advance()
	index, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.IndexExpr{Tok: tok, Container: container, Index: index}, nil
}

func (p *Parser) parseAttributeExpr(object ast.Expr) (ast.Expr, *Error) {
	tok := p.advance()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	return &ast.AttributeExpr{Tok: tok, Object: object, Name: name.Literal}, nil
}
