// Package lexer implements lexical analysis for Kururi source code.
//
// The scanner advances one character at a time with single-character
// lookahead. Newlines are significant and produce NEWLINE tokens; all
// other whitespace is skipped. The first lexical error halts scanning.
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/osad-sakana/kururi-compiler/internal/errors"
	"github.com/osad-sakana/kururi-compiler/pkg/token"
)

// Lexer is a lexical scanner over a single source buffer.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
}

// New creates a new Lexer for the given input string.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize scans the entire source buffer into an ordered token sequence
// ending in an EOF token. An empty buffer or any lexical error yields a
// LexError diagnostic.
func Tokenize(source string) ([]token.Token, error) {
	if source == "" {
		return nil, errors.New(errors.LexError, "Empty source code")
	}

	l := New(source)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

// readChar advances the lexer to the next character in the input.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
	} else {
		r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += size
	}
}

// peekChar returns the next character without advancing the position.
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// NextToken returns the next token from the input, or a LexError
// diagnostic on the first invalid character or literal.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()

	switch {
	case l.ch == 0:
		return token.NewToken(token.EOF, ""), nil

	case l.ch == '\n':
		l.readChar()
		return token.NewToken(token.NEWLINE, "\n"), nil

	case l.ch == '/' && l.peekChar() == '/':
		l.skipLineComment()
		return l.NextToken()

	case l.ch == '"':
		return l.readString()

	case isDigit(l.ch):
		return l.readNumber()

	case isLetter(l.ch):
		literal := l.readIdentifier()
		return token.NewToken(token.LookupIdent(literal), literal), nil

	default:
		return l.readOperator()
	}
}

// skipWhitespace skips spaces, tabs and carriage returns. Newlines are
// tokens, not whitespace.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// skipLineComment consumes a // comment up to but not including the next
// newline, so the newline still terminates the statement.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readIdentifier reads an identifier or keyword run [A-Za-z0-9_]*.
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads a number literal: a greedy run of digits and dots,
// parsed as a double. Runs with more than one dot fail the parse.
func (l *Lexer) readNumber() (token.Token, error) {
	position := l.position
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}

	literal := l.input[position:l.position]
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return token.Token{}, errors.New(errors.LexError, "Invalid number format: %s", literal)
	}
	return token.NewNumberToken(literal, value), nil
}

// readString reads a double-quoted string literal, decoding the escapes
// \n \t \r \\ \". Any other escape or end-of-input before the closing
// quote is a LexError.
func (l *Lexer) readString() (token.Token, error) {
	l.readChar() // skip opening quote

	var builder strings.Builder
	for l.ch != 0 {
		if l.ch == '"' {
			l.readChar() // skip closing quote
			return token.NewToken(token.STRING, builder.String()), nil
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				builder.WriteRune('\n')
			case 't':
				builder.WriteRune('\t')
			case 'r':
				builder.WriteRune('\r')
			case '\\':
				builder.WriteRune('\\')
			case '"':
				builder.WriteRune('"')
			case 0:
				return token.Token{}, errors.New(errors.LexError, "Unexpected end of input in string literal")
			default:
				return token.Token{}, errors.New(errors.LexError, "Invalid escape sequence: \\%c", l.ch)
			}
			l.readChar()
			continue
		}
		builder.WriteRune(l.ch)
		l.readChar()
	}

	return token.Token{}, errors.New(errors.LexError, "Unterminated string literal")
}

// readOperator reads an operator or punctuation token. Two-character
// operators are matched by one-character lookahead before falling
// through to the single-character form.
func (l *Lexer) readOperator() (token.Token, error) {
	ch := l.ch

	switch ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.NewToken(token.EQ, "=="), nil
		}
		l.readChar()
		return token.NewToken(token.ASSIGN, "="), nil
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.NewToken(token.NOT_EQ, "!="), nil
		}
		l.readChar()
		return token.NewToken(token.NOT, "!"), nil
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.NewToken(token.LESS_EQ, "<="), nil
		}
		l.readChar()
		return token.NewToken(token.LESS, "<"), nil
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.NewToken(token.GREATER_EQ, ">="), nil
		}
		l.readChar()
		return token.NewToken(token.GREATER, ">"), nil
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			l.readChar()
			return token.NewToken(token.AND, "&&"), nil
		}
		return token.Token{}, errors.New(errors.LexError, "Unexpected character: %c", ch)
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			l.readChar()
			return token.NewToken(token.OR, "||"), nil
		}
		return token.Token{}, errors.New(errors.LexError, "Unexpected character: %c", ch)
	}

	if tokenType, ok := singleCharTokens[ch]; ok {
		l.readChar()
		return token.NewToken(tokenType, string(ch)), nil
	}

	return token.Token{}, errors.New(errors.LexError, "Unexpected character: %c", ch)
}

// singleCharTokens maps single-character operators and punctuation to
// their token types.
var singleCharTokens = map[rune]token.TokenType{
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.ASTERISK,
	'/': token.SLASH,
	'(': token.LPAREN,
	')': token.RPAREN,
	'{': token.LBRACE,
	'}': token.RBRACE,
	'[': token.LBRACK,
	']': token.RBRACK,
	',': token.COMMA,
	':': token.COLON,
	'.': token.DOT,
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
