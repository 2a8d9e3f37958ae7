package parser

import (
	"github.com/osad-sakana/kururi-compiler/internal/errors"
	"github.com/osad-sakana/kururi-compiler/internal/types"
	"github.com/osad-sakana/kururi-compiler/pkg/token"
)

// parseType parses a type annotation: 'string' | 'number' | 'void' |
// Ident, optionally followed by repeatable '[' ']' pairs wrapping the
// preceding type in an array.
func (p *Parser) parseType() (types.Type, error) {
	var base types.Type

	switch p.cur().Type {
	case token.STRING_TYPE:
		base = types.STRING
		p.advance()
	case token.NUMBER_TYPE:
		base = types.NUMBER
		p.advance()
	case token.VOID_TYPE:
		base = types.VOID
		p.advance()
	case token.IDENT:
		base = types.NewClass(p.cur().Literal)
		p.advance()
	default:
		return nil, errors.New(errors.ParseError, "Unexpected token: expected type, found %s", p.cur())
	}

	for p.curIs(token.LBRACK) {
		p.advance()
		if err := p.consume(token.RBRACK); err != nil {
			return nil, err
		}
		base = types.NewArray(base)
	}

	return base, nil
}
