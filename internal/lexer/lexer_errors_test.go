package lexer

import (
	"strings"
	"testing"

	"github.com/osad-sakana/kururi-compiler/internal/errors"
)

func TestEmptySource(t *testing.T) {
	_, err := Tokenize("")
	if err == nil {
		t.Fatal("expected an error for empty source")
	}

	diag, ok := err.(*errors.Diagnostic)
	if !ok {
		t.Fatalf("expected a Diagnostic, got %T", err)
	}
	if diag.Kind != errors.LexError {
		t.Fatalf("kind = %v, want LexError", diag.Kind)
	}
	if diag.Message != "Empty source code" {
		t.Fatalf("unexpected message: %q", diag.Message)
	}
}

func TestUnexpectedCharacters(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"let x: number = 5 @", "Unexpected character: @"},
		{"#comment", "Unexpected character: #"},
		{"a; b", "Unexpected character: ;"},
	}

	for _, tt := range tests {
		_, err := Tokenize(tt.input)
		if err == nil {
			t.Fatalf("input %q - expected an error", tt.input)
		}
		if !strings.Contains(err.Error(), tt.expected) {
			t.Fatalf("input %q - unexpected message: %v", tt.input, err)
		}
	}
}

func TestLoneAmpersandAndPipe(t *testing.T) {
	for _, input := range []string{"a & b", "a | b"} {
		_, err := Tokenize(input)
		if err == nil {
			t.Fatalf("input %q - expected an error", input)
		}
		diag := err.(*errors.Diagnostic)
		if diag.Kind != errors.LexError {
			t.Fatalf("input %q - kind = %v, want LexError", input, diag.Kind)
		}
		if !strings.Contains(diag.Message, "Unexpected character") {
			t.Fatalf("input %q - unexpected message: %q", input, diag.Message)
		}
	}
}
