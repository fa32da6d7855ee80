package parser

import (
	"strconv"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
)

// simpleTypeNames are the non-numeric primitive type spellings the lexer
// reports as a plain IDENT; anything else reaching parseAtomType as an
// IDENT is treated as a reference to a user-declared struct/enum/
// interface/contract, resolved later by the analyzer.
var simpleTypeNames = map[string]bool{
	"bool": true, "address": true, "str": true,
}

// parseType parses one type annotation, handling dict[K, V] (also spelled
// mapping[K, V]), list[T],
// fixed arrays T[N], optionals T | None, and tuples (T1, T2, ...), in
// roughly the precedence order spec.md §3's Type invariants describe:
// postfix array/optional modifiers bind to the innermost atom first.
func (p *Parser) parseType() (ast.Type, *Error) {
	base, err := p.parseAtomType()
	if err != nil {
		return nil, err
	}
	return p.parseTypePostfix(base)
}

func (p *Parser) parseTypePostfix(base ast.Type) (ast.Type, *Error) {
	for {
		switch {
		case p.curIs(lexer.LBRACKET):
			p.advance()
			size, err := p.expect(lexer.INT)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
			n, convErr := strconv.Atoi(size.Literal)
			if convErr != nil {
				return nil, errorf(size.Span, "invalid fixed array size %q", size.Literal)
			}
			base = ast.FixedArray{Elem: base, N: n}
		case p.curIs(lexer.PIPE) && p.peek(1).Type == lexer.NONE:
			p.advance()
			p.advance()
			base = ast.Optional{Inner: base}
		default:
			return base, nil
		}
	}
}

func (p *Parser) parseAtomType() (ast.Type, *Error) {
	tok := p.cur()

	switch tok.Type {
	case lexer.SIZED_TYPE:
		p.advance()
		return parseSizedTypeName(tok)
	case lexer.LPAREN:
		return p.parseTupleType()
	case lexer.IDENT:
		switch tok.Literal {
		case "dict", "mapping":
			return p.parseMappingType()
		case "list":
			return p.parseListType()
		}
		p.advance()
		if simpleTypeNames[tok.Literal] {
			return ast.Simple{Name: tok.Literal}, nil
		}
		return ast.Named{Name: tok.Literal}, nil
	default:
		return nil, errorf(tok.Span, "expected a type, got %s", tok.Type)
	}
}

func parseSizedTypeName(tok lexer.Token) (ast.Type, *Error) {
	name := tok.Literal
	switch {
	case len(name) > 5 && name[:5] == "bytes":
		n, err := strconv.Atoi(name[5:])
		if err != nil {
			return nil, errorf(tok.Span, "invalid bytes type %q", name)
		}
		return ast.Bytes{N: n}, nil
	case len(name) > 4 && name[:4] == "uint":
		n, err := strconv.Atoi(name[4:])
		if err != nil {
			return nil, errorf(tok.Span, "invalid uint type %q", name)
		}
		return ast.SizedInt{Signed: false, Bits: n}, nil
	case len(name) > 3 && name[:3] == "int":
		n, err := strconv.Atoi(name[3:])
		if err != nil {
			return nil, errorf(tok.Span, "invalid int type %q", name)
		}
		return ast.SizedInt{Signed: true, Bits: n}, nil
	default:
		return nil, errorf(tok.Span, "unrecognized sized type %q", name)
	}
}

func (p *Parser) parseMappingType() (ast.Type, *Error) {
	p.advance() // 'dict' or 'mapping'
	if _, err := p.expect(lexer.LBRACKET); err != nil {
		return nil, err
	}
	key, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COMMA); err != nil {
		return nil, err
	}
	value, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return ast.Mapping{Key: key, Value: value}, nil
}

func (p *Parser) parseListType() (ast.Type, *Error) {
	p.advance() // 'list'
	if _, err := p.expect(lexer.LBRACKET); err != nil {
		return nil, err
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return ast.List{Elem: elem}, nil
}

func (p *Parser) parseTupleType() (ast.Type, *Error) {
	p.advance() // '('
	var elems []ast.Type
	for !p.curIs(lexer.RPAREN) {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		elems = append(elems, t)
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return ast.Tuple{Elems: elems}, nil
}
