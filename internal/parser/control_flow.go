package parser

import (
	"github.com/osad-sakana/kururi-compiler/internal/ast"
	"github.com/osad-sakana/kururi-compiler/internal/errors"
	"github.com/osad-sakana/kururi-compiler/pkg/token"
)

// parseIfStatement parses 'if Expr { } (elseif Expr { })* (else { })?'.
func (p *Parser) parseIfStatement() (ast.Statement, error) {
	if err := p.consume(token.IF); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	thenBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStatement{Condition: condition, ThenBody: thenBody}

	for p.curIs(token.ELSEIF) {
		p.advance()
		branchCond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		branchBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.ElseIfs = append(stmt.ElseIfs, ast.ElseIfBranch{Condition: branchCond, Body: branchBody})
	}

	if p.curIs(token.ELSE) {
		p.advance()
		elseBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if elseBody == nil {
			elseBody = []ast.Statement{}
		}
		stmt.ElseBody = elseBody
	}

	return stmt, nil
}

// parseWhileStatement parses 'while Expr { stmts }'.
func (p *Parser) parseWhileStatement() (ast.Statement, error) {
	if err := p.consume(token.WHILE); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Condition: condition, Body: body}, nil
}

// parseForStatement parses 'for i cond { stmts }' where the leading
// identifier both names the counter and opens the condition expression:
// 'for i < 9' binds counter i with condition i < 9.
func (p *Parser) parseForStatement() (ast.Statement, error) {
	if err := p.consume(token.FOR); err != nil {
		return nil, err
	}
	if !p.curIs(token.IDENT) {
		return nil, errors.New(errors.ParseError, "Unexpected token: expected identifier, found %s", p.cur())
	}
	counter := p.cur().Literal

	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{Counter: counter, Condition: condition, Body: body}, nil
}

// parseForeachStatement parses 'foreach Ident in Expr { stmts }'.
func (p *Parser) parseForeachStatement() (ast.Statement, error) {
	if err := p.consume(token.FOREACH); err != nil {
		return nil, err
	}
	binder, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.IN); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForeachStatement{Binder: binder, Iterable: iterable, Body: body}, nil
}

// parseReturnStatement parses 'return' with an optional expression. The
// expression is present unless the next token is a newline, a closing
// brace, or end-of-input.
func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	if err := p.consume(token.RETURN); err != nil {
		return nil, err
	}

	stmt := &ast.ReturnStatement{}
	if !p.curIs(token.NEWLINE) && !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}

	return stmt, nil
}
