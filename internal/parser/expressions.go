package parser

import (
	"github.com/osad-sakana/kururi-compiler/internal/ast"
	"github.com/osad-sakana/kururi-compiler/internal/errors"
	"github.com/osad-sakana/kururi-compiler/pkg/token"
)

// Expression parsing climbs the precedence ladder, lowest binding first:
// logical-or, logical-and, equality, comparison, additive,
// multiplicative, unary prefix, postfix, primary. All binary levels are
// left-associative; unary prefix recurses on itself.

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}

	for p.curIs(token.OR) {
		p.advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Operator: ast.OpOr, Right: right}
	}

	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}

	for p.curIs(token.AND) {
		p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Operator: ast.OpAnd, Right: right}
	}

	return left, nil
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.BinaryOp
		switch p.cur().Type {
		case token.EQ:
			op = ast.OpEqual
		case token.NOT_EQ:
			op = ast.OpNotEqual
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Operator: op, Right: right}
	}
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.BinaryOp
		switch p.cur().Type {
		case token.LESS:
			op = ast.OpLess
		case token.LESS_EQ:
			op = ast.OpLessEq
		case token.GREATER:
			op = ast.OpGreater
		case token.GREATER_EQ:
			op = ast.OpGreaterEq
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Operator: op, Right: right}
	}
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.BinaryOp
		switch p.cur().Type {
		case token.PLUS:
			op = ast.OpAdd
		case token.MINUS:
			op = ast.OpSubtract
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Operator: op, Right: right}
	}
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.BinaryOp
		switch p.cur().Type {
		case token.ASTERISK:
			op = ast.OpMultiply
		case token.SLASH:
			op = ast.OpDivide
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Operator: op, Right: right}
	}
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.cur().Type {
	case token.NOT:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Operator: ast.OpNot, Operand: operand}, nil
	case token.MINUS:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Operator: ast.OpNegate, Operand: operand}, nil
	default:
		return p.parsePostfix()
	}
}

// parsePostfix parses a left-to-right chain of call, index and member
// postfixes. A call applied to an identifier yields a call by name; a
// call applied to a member access yields a method call; a call applied
// to anything else is a ParseError.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur().Type {
		case token.LPAREN:
			p.advance()
			args, err := p.parseArguments(token.RPAREN)
			if err != nil {
				return nil, err
			}
			switch callee := expr.(type) {
			case *ast.Identifier:
				expr = &ast.CallExpression{Name: callee.Value, Args: args}
			case *ast.MemberExpression:
				expr = &ast.MethodCallExpression{Receiver: callee.Object, Method: callee.Property, Args: args}
			default:
				return nil, errors.New(errors.ParseError, "Invalid function call")
			}
		case token.LBRACK:
			p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.consume(token.RBRACK); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpression{Array: expr, Index: index}
		case token.DOT:
			p.advance()
			property, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{Object: expr, Property: property}
		default:
			return expr, nil
		}
	}
}

// parseArguments parses a comma-separated expression list up to the
// closing token, consuming it. Trailing commas are not accepted.
func (p *Parser) parseArguments(closing token.TokenType) ([]ast.Expression, error) {
	var args []ast.Expression
	for !p.curIs(closing) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.curIs(token.COMMA) {
			p.advance()
			// The list terminator must immediately follow the last
			// element; a trailing comma is an error.
			if p.curIs(closing) {
				return nil, errors.New(errors.ParseError, "Unexpected token: %s", p.cur())
			}
		} else {
			break
		}
	}
	if err := p.consume(closing); err != nil {
		return nil, err
	}
	return args, nil
}

// parsePrimary parses an expression with no operators: a literal, an
// identifier, a parenthesized expression, an array literal, or 'new'.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.cur().Type {
	case token.STRING:
		value := p.cur().Literal
		p.advance()
		return &ast.StringLiteral{Value: value}, nil

	case token.NUMBER:
		value := p.cur().Value
		p.advance()
		return &ast.NumberLiteral{Value: value}, nil

	case token.TRUE:
		p.advance()
		return &ast.BooleanLiteral{Value: true}, nil

	case token.FALSE:
		p.advance()
		return &ast.BooleanLiteral{Value: false}, nil

	case token.IDENT:
		name := p.cur().Literal
		p.advance()
		return &ast.Identifier{Value: name}, nil

	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case token.LBRACK:
		p.advance()
		elements, err := p.parseArguments(token.RBRACK)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLiteral{Elements: elements}, nil

	case token.NEW:
		p.advance()
		className, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		// Constructors take no arguments.
		return &ast.NewExpression{ClassName: className}, nil

	default:
		return nil, errors.New(errors.ParseError, "Unexpected token: %s", p.cur())
	}
}
