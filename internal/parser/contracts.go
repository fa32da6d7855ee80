package parser

import (
	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
)

func (p *Parser) parseModule() (*ast.Module, *Error) {
	mod := &ast.Module{}
	p.skipNewlines()

	for p.curIs(lexer.IMPORT) || p.curIs(lexer.FROM) {
		imp, err := p.parseImportStmt()
		if err != nil {
			return nil, err
		}
		mod.Imports = append(mod.Imports, imp)
		p.skipNewlines()
	}

	for !p.curIs(lexer.EOF) {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		mod.Items = append(mod.Items, item)
		p.skipNewlines()
	}

	return mod, nil
}

func (p *Parser) parseImportStmt() (*ast.ImportStmt, *Error) {
	if p.curIs(lexer.IMPORT) {
		tok := p.advance()
		name, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		return &ast.ImportStmt{Tok: tok, Module: name.Literal, Whole: true}, nil
	}

	tok := p.advance() // 'from'
	module, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IMPORT); err != nil {
		return nil, err
	}

	var names []ast.ImportedName
	for {
		name, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		imported := ast.ImportedName{Name: name.Literal}
		if p.curIs(lexer.AS) {
			p.advance()
			alias, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			imported.Alias = alias.Literal
		}
		names = append(names, imported)
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}

	return &ast.ImportStmt{Tok: tok, Module: module.Literal, Names: names}, nil
}

func (p *Parser) parseItem() (ast.Item, *Error) {
	switch p.cur().Type {
	case lexer.CONTRACT:
		return p.parseContractDecl()
	case lexer.STRUCT:
		return p.parseStructDecl()
	case lexer.ENUM:
		return p.parseEnumDecl()
	case lexer.INTERFACE:
		return p.parseInterfaceDecl()
	case lexer.EVENT:
		return p.parseEventDecl()
	case lexer.ERROR:
		return p.parseErrorDecl()
	case lexer.AT, lexer.DEF:
		return p.parseFunctionDecl()
	default:
		return nil, errorf(p.cur().Span, "expected a top-level declaration, got %s", p.cur().Type)
	}
}

func (p *Parser) parseContractDecl() (*ast.ContractDecl, *Error) {
	tok := p.advance()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}

	decl := &ast.ContractDecl{Tok: tok, Name: name.Literal}

	if p.curIs(lexer.LPAREN) {
		p.advance()
		for !p.curIs(lexer.RPAREN) {
			base, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			decl.Bases = append(decl.Bases, base.Literal)
			if p.curIs(lexer.COMMA) {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.NEWLINE); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.INDENT); err != nil {
		return nil, err
	}

	for !p.curIs(lexer.DEDENT) && !p.curIs(lexer.EOF) {
		member, err := p.parseContractMember()
		if err != nil {
			return nil, err
		}
		decl.Members = append(decl.Members, member)
		p.skipNewlines()
	}

	if _, err := p.expect(lexer.DEDENT); err != nil {
		return nil, err
	}

	return decl, nil
}

func (p *Parser) parseContractMember() (ast.ContractMember, *Error) {
	switch p.cur().Type {
	case lexer.CONST:
		return p.parseConstant()
	case lexer.EVENT:
		return p.parseEventDecl()
	case lexer.ERROR:
		return p.parseErrorDecl()
	case lexer.STRUCT:
		return p.parseStructDecl()
	case lexer.ENUM:
		return p.parseEnumDecl()
	case lexer.INTERFACE:
		return p.parseInterfaceDecl()
	case lexer.AT, lexer.DEF:
		return p.parseFunctionDecl()
	case lexer.IDENT:
		return p.parseStateVar()
	default:
		return nil, errorf(p.cur().Span, "expected a contract member, got %s", p.cur().Type)
	}
}

func (p *Parser) parseStateVar() (*ast.StateVar, *Error) {
	name := p.advance()
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	varType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.StateVar{Tok: name, Name: name.Literal, VarType: varType}, nil
}

func (p *Parser) parseConstant() (*ast.Constant, *Error) {
	tok := p.advance()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	varType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.Constant{Tok: tok, Name: name.Literal, VarType: varType, Value: value}, nil
}

func (p *Parser) parseEventParamBlock() ([]ast.EventParam, *Error) {
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.NEWLINE); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.INDENT); err != nil {
		return nil, err
	}

	var params []ast.EventParam
	for !p.curIs(lexer.DEDENT) && !p.curIs(lexer.EOF) {
		indexed := false
		if p.curIs(lexer.AT) {
			p.advance()
			if _, err := p.expect(lexer.IDENT); err != nil {
				return nil, err
			}
			indexed = true
			p.skipNewlines()
		}
		name, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		varType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.EventParam{Name: name.Literal, VarType: varType, Indexed: indexed})
		p.skipNewlines()
	}

	if _, err := p.expect(lexer.DEDENT); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseEventDecl() (*ast.EventDecl, *Error) {
	tok := p.advance()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	params, err := p.parseEventParamBlock()
	if err != nil {
		return nil, err
	}
	return &ast.EventDecl{Tok: tok, Name: name.Literal, Params: params}, nil
}

func (p *Parser) parseErrorDecl() (*ast.ErrorDecl, *Error) {
	tok := p.advance()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	params, err := p.parseEventParamBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ErrorDecl{Tok: tok, Name: name.Literal, Params: params}, nil
}

func (p *Parser) parseStructDecl() (*ast.StructDecl, *Error) {
	tok := p.advance()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.NEWLINE); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.INDENT); err != nil {
		return nil, err
	}

	decl := &ast.StructDecl{Tok: tok, Name: name.Literal}
	for !p.curIs(lexer.DEDENT) && !p.curIs(lexer.EOF) {
		fname, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		ftype, err := p.parseType()
		if err != nil {
			return nil, err
		}
		decl.Fields = append(decl.Fields, ast.StructField{Name: fname.Literal, VarType: ftype})
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.DEDENT); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseEnumDecl() (*ast.EnumDecl, *Error) {
	tok := p.advance()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.NEWLINE); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.INDENT); err != nil {
		return nil, err
	}

	decl := &ast.EnumDecl{Tok: tok, Name: name.Literal}
	for !p.curIs(lexer.DEDENT) && !p.curIs(lexer.EOF) {
		variant, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		decl.Variants = append(decl.Variants, variant.Literal)
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.DEDENT); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseInterfaceDecl() (*ast.InterfaceDecl, *Error) {
	tok := p.advance()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.NEWLINE); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.INDENT); err != nil {
		return nil, err
	}

	decl := &ast.InterfaceDecl{Tok: tok, Name: name.Literal}
	for !p.curIs(lexer.DEDENT) && !p.curIs(lexer.EOF) {
		if _, err := p.expect(lexer.DEF); err != nil {
			return nil, err
		}
		fname, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		params, err := p.parseParamList()
		if err != nil {
			return nil, err
		}
		var returns ast.Type
		if p.curIs(lexer.ARROW) {
			p.advance()
			returns, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}
		decl.Signatures = append(decl.Signatures, ast.FunctionSignature{Name: fname.Literal, Params: params, Returns: returns})
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.DEDENT); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseParamList() ([]ast.Param, *Error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []ast.Param
	for !p.curIs(lexer.RPAREN) {
		if p.curIs(lexer.SELF) {
			p.advance()
		} else {
			name, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.COLON); err != nil {
				return nil, err
			}
			ptype, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, ast.Param{Name: name.Literal, VarType: ptype})
		}
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseFunctionDecl() (*ast.Function, *Error) {
	var decorators []ast.Decorator
	for p.curIs(lexer.AT) {
		p.advance()
		name, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		dec := ast.Decorator{Name: name.Literal}
		if p.curIs(lexer.LPAREN) {
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			dec.Args = args
		}
		decorators = append(decorators, dec)
		p.skipNewlines()
	}

	tok, err := p.expect(lexer.DEF)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}

	var returns ast.Type
	if p.curIs(lexer.ARROW) {
		p.advance()
		returns, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		Tok: tok, Name: name.Literal, Decorators: decorators,
		Params: params, Returns: returns, Body: body,
	}, nil
}
