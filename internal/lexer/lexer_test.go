package lexer

import (
	"reflect"
	"testing"

	"github.com/osad-sakana/kururi-compiler/pkg/token"
)

func TestNextToken(t *testing.T) {
	input := `let x: number = 42`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LET, "let"},
		{token.IDENT, "x"},
		{token.COLON, ":"},
		{token.NUMBER_TYPE, "number"},
		{token.ASSIGN, "="},
		{token.NUMBER, "42"},
		{token.EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `+ - * / = == != < <= > >= && || ! ( ) { } [ ] , : .`

	expected := []token.TokenType{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH,
		token.ASSIGN, token.EQ, token.NOT_EQ,
		token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ,
		token.AND, token.OR, token.NOT,
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACK, token.RBRACK, token.COMMA, token.COLON, token.DOT,
		token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tokens[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != want {
			t.Fatalf("tokens[%d] - tokentype wrong. expected=%q, got=%q", i, want, tok.Type)
		}
	}
}

func TestNewlinesAreTokens(t *testing.T) {
	tokens, err := Tokenize("let x: number = 5\nlet y: number = 10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, tok := range tokens {
		if tok.Type == token.NEWLINE {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a NEWLINE token between statements")
	}
}

func TestLineComments(t *testing.T) {
	tokens, err := Tokenize("let x: number = 5 // a comment\nlet y: number = 10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The comment is consumed up to but not including the newline, so the
	// newline still separates the statements.
	var kinds []token.TokenType
	for _, tok := range tokens {
		kinds = append(kinds, tok.Type)
	}
	want := []token.TokenType{
		token.LET, token.IDENT, token.COLON, token.NUMBER_TYPE, token.ASSIGN, token.NUMBER,
		token.NEWLINE,
		token.LET, token.IDENT, token.COLON, token.NUMBER_TYPE, token.ASSIGN, token.NUMBER,
		token.EOF,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("token kinds = %v, want %v", kinds, want)
	}
}

func TestHelloWorldProgram(t *testing.T) {
	input := `function main(): void{
    const moji: string = "Hello World by Kururi!"
    output(moji)
}`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.FUNCTION, "function"},
		{token.IDENT, "main"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.COLON, ":"},
		{token.VOID_TYPE, "void"},
		{token.LBRACE, "{"},
		{token.NEWLINE, "\n"},
		{token.CONST, "const"},
		{token.IDENT, "moji"},
		{token.COLON, ":"},
		{token.STRING_TYPE, "string"},
		{token.ASSIGN, "="},
		{token.STRING, "Hello World by Kururi!"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "output"},
		{token.LPAREN, "("},
		{token.IDENT, "moji"},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenizeDeterminism(t *testing.T) {
	input := `function main(): void {
    let n: number = 1 + 2 * 3
    output("n is " + n)
}`

	first, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("tokenizing the same input twice produced different streams")
	}
}

func TestIdentifierRuns(t *testing.T) {
	tokens, err := Tokenize("_x abc123 snake_case Classy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"_x", "abc123", "snake_case", "Classy"}
	for i, lit := range want {
		if tokens[i].Type != token.IDENT {
			t.Fatalf("tokens[%d] - tokentype wrong. expected=IDENT, got=%q", i, tokens[i].Type)
		}
		if tokens[i].Literal != lit {
			t.Fatalf("tokens[%d] - literal wrong. expected=%q, got=%q", i, lit, tokens[i].Literal)
		}
	}
}
