// Package parser implements the recursive-descent parser for Kururi.
//
// A single-token-lookahead cursor walks the token sequence produced by
// the lexer. Newline tokens are optional separators and are skipped
// wherever statement sequencing is expected; no other token is skipped.
// The first parse error halts parsing.
package parser

import (
	"github.com/osad-sakana/kururi-compiler/internal/ast"
	"github.com/osad-sakana/kururi-compiler/internal/errors"
	"github.com/osad-sakana/kururi-compiler/pkg/token"
)

// Parser walks a token sequence and builds the AST.
type Parser struct {
	tokens   []token.Token
	position int
}

// New creates a new Parser over the given token sequence.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a complete token sequence into a Program. An empty
// sequence is a ParseError.
func Parse(tokens []token.Token) (*ast.Program, error) {
	return New(tokens).ParseProgram()
}

// ParseProgram parses statements until end-of-input.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	if len(p.tokens) == 0 {
		return nil, errors.New(errors.ParseError, "No tokens to parse")
	}

	program := &ast.Program{}
	for {
		p.skipNewlines()
		if p.curIs(token.EOF) {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program, nil
}

// cur returns the current token. Walking past the end of the sequence
// yields EOF.
func (p *Parser) cur() token.Token {
	if p.position >= len(p.tokens) {
		return token.NewToken(token.EOF, "")
	}
	return p.tokens[p.position]
}

// advance moves the cursor to the next token.
func (p *Parser) advance() {
	p.position++
}

// curIs checks whether the current token has the given type.
func (p *Parser) curIs(t token.TokenType) bool {
	return p.cur().Type == t
}

// consume asserts the current token type and advances, otherwise returns
// a ParseError naming the unexpected token.
func (p *Parser) consume(t token.TokenType) error {
	if !p.curIs(t) {
		return errors.New(errors.ParseError, "Unexpected token: expected %s, found %s", t, p.cur())
	}
	p.advance()
	return nil
}

// skipNewlines skips newline tokens where statement sequencing is
// expected.
func (p *Parser) skipNewlines() {
	for p.curIs(token.NEWLINE) {
		p.advance()
	}
}

// parseIdentifier consumes an identifier token and returns its name.
func (p *Parser) parseIdentifier() (string, error) {
	if !p.curIs(token.IDENT) {
		return "", errors.New(errors.ParseError, "Unexpected token: expected identifier, found %s", p.cur())
	}
	name := p.cur().Literal
	p.advance()
	return name, nil
}

// parseStatement dispatches on the current token.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case token.FUNCTION:
		return p.parseFunctionDecl(false)
	case token.CLASS:
		return p.parseClassDecl()
	case token.LET, token.CONST:
		return p.parseVariableDecl()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.FOREACH:
		return p.parseForeachStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseBlock parses '{' stmts '}', skipping newlines between statements.
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if err := p.consume(token.LBRACE); err != nil {
		return nil, err
	}

	var stmts []ast.Statement
	for {
		p.skipNewlines()
		if p.curIs(token.RBRACE) || p.curIs(token.EOF) {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if err := p.consume(token.RBRACE); err != nil {
		return nil, err
	}
	return stmts, nil
}

// parseExpressionStatement parses an expression in statement position.
// Assignment is handled here as a statement-level operator rather than
// in the expression precedence ladder.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.curIs(token.ASSIGN) {
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		expr = &ast.AssignmentExpression{Target: expr, Value: value}
	}

	return &ast.ExpressionStatement{Expression: expr}, nil
}
