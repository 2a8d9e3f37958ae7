package lexer

import (
	"strings"
	"testing"

	"github.com/osad-sakana/kururi-compiler/pkg/token"
)

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"Hello World by Kururi!"`, "Hello World by Kururi!"},
		{`"tab\there"`, "tab\there"},
		{`"line\nbreak"`, "line\nbreak"},
		{`"carriage\rreturn"`, "carriage\rreturn"},
		{`"back\\slash"`, `back\slash`},
		{`"quote\"inside"`, `quote"inside`},
		{`"掛け算九九の表"`, "掛け算九九の表"},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("input %q - unexpected error: %v", tt.input, err)
		}
		if tok.Type != token.STRING {
			t.Fatalf("input %q - tokentype wrong. expected=STRING, got=%q", tt.input, tok.Type)
		}
		if tok.Literal != tt.expected {
			t.Fatalf("input %q - decoded value wrong. expected=%q, got=%q", tt.input, tt.expected, tok.Literal)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := Tokenize(`let s: string = "never closed`)
	if err == nil {
		t.Fatal("expected an error for an unterminated string")
	}
	if !strings.Contains(err.Error(), "Unterminated string literal") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestInvalidEscape(t *testing.T) {
	_, err := Tokenize(`"bad\qescape"`)
	if err == nil {
		t.Fatal("expected an error for an invalid escape")
	}
	if !strings.Contains(err.Error(), "Invalid escape sequence") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestEndOfInputInEscape(t *testing.T) {
	_, err := Tokenize(`"ends in escape\`)
	if err == nil {
		t.Fatal("expected an error for end of input inside an escape")
	}
	if !strings.Contains(err.Error(), "Unexpected end of input in string literal") {
		t.Fatalf("unexpected message: %v", err)
	}
}
