package parser

import (
	"github.com/osad-sakana/kururi-compiler/internal/ast"
	"github.com/osad-sakana/kururi-compiler/pkg/token"
)

// parseVariableDecl parses '(let|const) Ident ':' Type '=' Expr'.
func (p *Parser) parseVariableDecl() (ast.Statement, error) {
	isConst := p.curIs(token.CONST)
	p.advance() // let or const

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.COLON); err != nil {
		return nil, err
	}
	varType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.VariableDecl{
		IsConst: isConst,
		Name:    name,
		VarType: varType,
		Value:   value,
	}, nil
}

// parseFunctionDecl parses a function declaration. isPublic is set when
// the caller already consumed a 'public' modifier (class methods only).
func (p *Parser) parseFunctionDecl(isPublic bool) (*ast.FunctionDecl, error) {
	if err := p.consume(token.FUNCTION); err != nil {
		return nil, err
	}

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.LPAREN); err != nil {
		return nil, err
	}

	var params []ast.Parameter
	for !p.curIs(token.RPAREN) {
		paramName, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if err := p.consume(token.COLON); err != nil {
			return nil, err
		}
		paramType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Parameter{Name: paramName, Type: paramType})

		if p.curIs(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}

	if err := p.consume(token.RPAREN); err != nil {
		return nil, err
	}
	if err := p.consume(token.COLON); err != nil {
		return nil, err
	}
	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		IsPublic:   isPublic,
	}, nil
}

// parseClassDecl parses 'class Ident { members }'. A member starting
// with 'function' or 'public' is a method; anything else is a field
// 'Ident ':' Type '=' Expr'.
func (p *Parser) parseClassDecl() (ast.Statement, error) {
	if err := p.consume(token.CLASS); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.LBRACE); err != nil {
		return nil, err
	}

	decl := &ast.ClassDecl{Name: name}
	for {
		p.skipNewlines()
		if p.curIs(token.RBRACE) || p.curIs(token.EOF) {
			break
		}

		switch p.cur().Type {
		case token.FUNCTION:
			method, err := p.parseFunctionDecl(false)
			if err != nil {
				return nil, err
			}
			decl.Methods = append(decl.Methods, method)
		case token.PUBLIC:
			p.advance()
			method, err := p.parseFunctionDecl(true)
			if err != nil {
				return nil, err
			}
			decl.Methods = append(decl.Methods, method)
		default:
			fieldName, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			if err := p.consume(token.COLON); err != nil {
				return nil, err
			}
			fieldType, err := p.parseType()
			if err != nil {
				return nil, err
			}
			if err := p.consume(token.ASSIGN); err != nil {
				return nil, err
			}
			defaultValue, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			decl.Fields = append(decl.Fields, ast.FieldDecl{
				Name:    fieldName,
				Type:    fieldType,
				Default: defaultValue,
			})
		}
	}

	if err := p.consume(token.RBRACE); err != nil {
		return nil, err
	}
	return decl, nil
}
