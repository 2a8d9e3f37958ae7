package parser

import (
	"strings"
	"testing"

	"github.com/osad-sakana/kururi-compiler/internal/ast"
)

// expressionString parses a single expression statement and returns its
// debug rendering, which parenthesizes every binary node.
func expressionString(t *testing.T, input string) string {
	t.Helper()
	program := parseProgram(t, input)
	if len(program.Statements) != 1 {
		t.Fatalf("input %q - expected 1 statement, got %d", input, len(program.Statements))
	}
	return program.Statements[0].String()
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"1 + 2 - 3", "((1 + 2) - 3)"},
		{"8 / 4 / 2", "((8 / 4) / 2)"},
		{"a + b < c * d", "((a + b) < (c * d))"},
		{"a < b == c < d", "((a < b) == (c < d))"},
		{"a == b && c != d", "((a == b) && (c != d))"},
		{"a && b || c && d", "((a && b) || (c && d))"},
		{"!a && b", "((!a) && b)"},
		{"-1 + 2", "((-1) + 2)"},
		{"!-a", "(!(-a))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"a <= b >= c", "((a <= b) >= c)"},
	}

	for _, tt := range tests {
		if got := expressionString(t, tt.input); got != tt.expected {
			t.Errorf("input %q - got %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestParsePostfixChains(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"xs[0]", "xs[0]"},
		{"grid[1][2]", "grid[1][2]"},
		{"p.x", "p.x"},
		{"p.pos.x", "p.pos.x"},
		{"f(1, 2)", "f(1, 2)"},
		{"p.move(1, 2)", "p.move(1, 2)"},
		{"xs[i + 1]", "xs[(i + 1)]"},
	}

	for _, tt := range tests {
		if got := expressionString(t, tt.input); got != tt.expected {
			t.Errorf("input %q - got %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCallOnIdentifierIsCallByName(t *testing.T) {
	program := parseProgram(t, "output(moji)")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected CallExpression, got %T", stmt.Expression)
	}
	if call.Name != "output" || len(call.Args) != 1 {
		t.Fatalf("unexpected call: %+v", call)
	}
}

func TestCallOnMemberIsMethodCall(t *testing.T) {
	program := parseProgram(t, "p.move(1, 2)")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.MethodCallExpression)
	if !ok {
		t.Fatalf("expected MethodCallExpression, got %T", stmt.Expression)
	}
	if call.Method != "move" || len(call.Args) != 2 {
		t.Fatalf("unexpected method call: %+v", call)
	}
	if call.Receiver.String() != "p" {
		t.Fatalf("receiver = %q, want %q", call.Receiver.String(), "p")
	}
}

func TestCallOnOtherExpressionIsError(t *testing.T) {
	diag := parseError(t, "xs[0](1)")
	if diag.Message != "Invalid function call" {
		t.Fatalf("unexpected message: %q", diag.Message)
	}
}

func TestParseArrayLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"[]", "[]"},
		{"[1, 2, 3]", "[1, 2, 3]"},
		{`["a", "b"]`, `["a", "b"]`},
		{"[[1], [2]]", "[[1], [2]]"},
	}

	for _, tt := range tests {
		if got := expressionString(t, tt.input); got != tt.expected {
			t.Errorf("input %q - got %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTrailingCommaRejected(t *testing.T) {
	for _, input := range []string{"f(1, 2,)", "[1, 2,]"} {
		diag := parseError(t, input)
		if !strings.Contains(diag.Message, "Unexpected token") {
			t.Fatalf("input %q - unexpected message: %q", input, diag.Message)
		}
	}
}

func TestParseNewExpression(t *testing.T) {
	program := parseProgram(t, "new Point")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	newExpr, ok := stmt.Expression.(*ast.NewExpression)
	if !ok {
		t.Fatalf("expected NewExpression, got %T", stmt.Expression)
	}
	if newExpr.ClassName != "Point" {
		t.Fatalf("class name = %q, want %q", newExpr.ClassName, "Point")
	}
	if len(newExpr.Args) != 0 {
		t.Fatal("constructors take no arguments")
	}
}

func TestParseBooleanLiterals(t *testing.T) {
	if got := expressionString(t, "true && false"); got != "(true && false)" {
		t.Fatalf("got %q", got)
	}
}
