// Package codegen lowers a checked Kururi AST to Python source text.
//
// Emission is pure tree-directed recursion with no further semantic
// checks. Indentation is fixed at four spaces per nesting level, and
// every emitted block is non-empty: empty bodies lower to 'pass'.
package codegen

import (
	"strconv"
	"strings"

	"github.com/osad-sakana/kururi-compiler/internal/ast"
	"github.com/osad-sakana/kururi-compiler/internal/errors"
)

const indent = "    "

// Emitter generates Python source from a checked AST.
type Emitter struct{}

// New creates a new Emitter.
func New() *Emitter {
	return &Emitter{}
}

// Generate lowers a checked program to Python source text. Top-level
// statements are joined by a blank line.
func (e *Emitter) Generate(program *ast.Program) (string, error) {
	var sections []string
	for _, stmt := range program.Statements {
		code, err := e.emitStatement(stmt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(code) != "" {
			sections = append(sections, code)
		}
	}
	return strings.Join(sections, "\n\n"), nil
}

func (e *Emitter) emitStatement(stmt ast.Statement) (string, error) {
	switch s := stmt.(type) {
	case *ast.VariableDecl:
		value, err := e.emitExpression(s.Value)
		if err != nil {
			return "", err
		}
		return s.Name + " = " + value, nil

	case *ast.FunctionDecl:
		return e.emitFunction(s, false)

	case *ast.ClassDecl:
		return e.emitClass(s)

	case *ast.IfStatement:
		return e.emitIf(s)

	case *ast.WhileStatement:
		condition, err := e.emitExpression(s.Condition)
		if err != nil {
			return "", err
		}
		body, err := e.emitBody(s.Body)
		if err != nil {
			return "", err
		}
		return "while " + condition + ":\n" + body, nil

	case *ast.ForStatement:
		return e.emitFor(s)

	case *ast.ForeachStatement:
		iterable, err := e.emitExpression(s.Iterable)
		if err != nil {
			return "", err
		}
		body, err := e.emitBody(s.Body)
		if err != nil {
			return "", err
		}
		return "for " + s.Binder + " in " + iterable + ":\n" + body, nil

	case *ast.ReturnStatement:
		if s.Value == nil {
			return "return", nil
		}
		value, err := e.emitExpression(s.Value)
		if err != nil {
			return "", err
		}
		return "return " + value, nil

	case *ast.ExpressionStatement:
		return e.emitExpression(s.Expression)

	default:
		return "", errors.New(errors.CodegenError, "cannot emit statement node %T", stmt)
	}
}

// emitFunction lowers a function declaration. Methods get a leading
// 'self' parameter.
func (e *Emitter) emitFunction(decl *ast.FunctionDecl, isMethod bool) (string, error) {
	var params []string
	if isMethod {
		params = append(params, "self")
	}
	for _, p := range decl.Params {
		params = append(params, p.Name)
	}

	body, err := e.emitBody(decl.Body)
	if err != nil {
		return "", err
	}
	return "def " + decl.Name + "(" + strings.Join(params, ", ") + "):\n" + body, nil
}

// emitClass lowers a class declaration to a Python class. Field defaults
// become assignments in __init__; methods follow with 'self' receivers.
func (e *Emitter) emitClass(decl *ast.ClassDecl) (string, error) {
	var sections []string

	if len(decl.Fields) > 0 {
		var assignments []string
		for _, field := range decl.Fields {
			value, err := e.emitExpression(field.Default)
			if err != nil {
				return "", err
			}
			assignments = append(assignments, indent+"self."+field.Name+" = "+value)
		}
		sections = append(sections, "def __init__(self):\n"+strings.Join(assignments, "\n"))
	}

	for _, method := range decl.Methods {
		code, err := e.emitFunction(method, true)
		if err != nil {
			return "", err
		}
		sections = append(sections, code)
	}

	inner := strings.Join(sections, "\n")
	if inner == "" {
		inner = "pass"
	}
	return "class " + decl.Name + ":\n" + indentLines(inner), nil
}

func (e *Emitter) emitIf(stmt *ast.IfStatement) (string, error) {
	condition, err := e.emitExpression(stmt.Condition)
	if err != nil {
		return "", err
	}
	thenBody, err := e.emitBody(stmt.ThenBody)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString("if " + condition + ":\n" + thenBody)

	for _, branch := range stmt.ElseIfs {
		branchCondition, err := e.emitExpression(branch.Condition)
		if err != nil {
			return "", err
		}
		branchBody, err := e.emitBody(branch.Body)
		if err != nil {
			return "", err
		}
		out.WriteString("\nelif " + branchCondition + ":\n" + branchBody)
	}

	if stmt.ElseBody != nil {
		elseBody, err := e.emitBody(stmt.ElseBody)
		if err != nil {
			return "", err
		}
		out.WriteString("\nelse:\n" + elseBody)
	}

	return out.String(), nil
}

// emitFor lowers the counter loop. A condition of the exact shape
// 'i < N' with N a number literal becomes range(int(N)); anything else
// falls back to range(10).
func (e *Emitter) emitFor(stmt *ast.ForStatement) (string, error) {
	body, err := e.emitBody(stmt.Body)
	if err != nil {
		return "", err
	}

	if cond, ok := stmt.Condition.(*ast.BinaryExpression); ok && cond.Operator == ast.OpLess {
		if limit, ok := cond.Right.(*ast.NumberLiteral); ok {
			return "for " + stmt.Counter + " in range(int(" + formatNumber(limit.Value) + ")):\n" + body, nil
		}
	}
	return "for " + stmt.Counter + " in range(10):\n" + body, nil
}

func (e *Emitter) emitExpression(expr ast.Expression) (string, error) {
	switch x := expr.(type) {
	case *ast.StringLiteral:
		return "\"" + strings.ReplaceAll(x.Value, "\"", "\\\"") + "\"", nil

	case *ast.NumberLiteral:
		return formatNumber(x.Value), nil

	case *ast.BooleanLiteral:
		if x.Value {
			return "True", nil
		}
		return "False", nil

	case *ast.Identifier:
		return x.Value, nil

	case *ast.BinaryExpression:
		return e.emitBinary(x)

	case *ast.UnaryExpression:
		operand, err := e.emitExpression(x.Operand)
		if err != nil {
			return "", err
		}
		if x.Operator == ast.OpNot {
			return "not " + operand, nil
		}
		return "-" + operand, nil

	case *ast.CallExpression:
		return e.emitCall(x)

	case *ast.MethodCallExpression:
		receiver, err := e.emitExpression(x.Receiver)
		if err != nil {
			return "", err
		}
		args, err := e.emitArguments(x.Args)
		if err != nil {
			return "", err
		}
		return receiver + "." + x.Method + "(" + args + ")", nil

	case *ast.IndexExpression:
		array, err := e.emitExpression(x.Array)
		if err != nil {
			return "", err
		}
		index, err := e.emitExpression(x.Index)
		if err != nil {
			return "", err
		}
		return array + "[" + index + "]", nil

	case *ast.MemberExpression:
		object, err := e.emitExpression(x.Object)
		if err != nil {
			return "", err
		}
		return object + "." + x.Property, nil

	case *ast.AssignmentExpression:
		target, err := e.emitExpression(x.Target)
		if err != nil {
			return "", err
		}
		value, err := e.emitExpression(x.Value)
		if err != nil {
			return "", err
		}
		return target + " = " + value, nil

	case *ast.ArrayLiteral:
		elements, err := e.emitArguments(x.Elements)
		if err != nil {
			return "", err
		}
		return "[" + elements + "]", nil

	case *ast.NewExpression:
		return x.ClassName + "()", nil

	default:
		return "", errors.New(errors.CodegenError, "cannot emit expression node %T", expr)
	}
}

// emitBinary lowers binary operations. '+' always wraps both operands in
// str() so mixed concatenation works; the logical operators become
// Python's short-circuit keywords.
func (e *Emitter) emitBinary(expr *ast.BinaryExpression) (string, error) {
	left, err := e.emitExpression(expr.Left)
	if err != nil {
		return "", err
	}
	right, err := e.emitExpression(expr.Right)
	if err != nil {
		return "", err
	}

	switch expr.Operator {
	case ast.OpAdd:
		return "str(" + left + ") + str(" + right + ")", nil
	case ast.OpAnd:
		return left + " and " + right, nil
	case ast.OpOr:
		return left + " or " + right, nil
	default:
		return left + " " + string(expr.Operator) + " " + right, nil
	}
}

// emitCall lowers a call by name. output is the sole built-in and maps
// to print.
func (e *Emitter) emitCall(call *ast.CallExpression) (string, error) {
	args, err := e.emitArguments(call.Args)
	if err != nil {
		return "", err
	}
	if call.Name == "output" && len(call.Args) == 1 {
		return "print(" + args + ")", nil
	}
	return call.Name + "(" + args + ")", nil
}

func (e *Emitter) emitArguments(args []ast.Expression) (string, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		code, err := e.emitExpression(arg)
		if err != nil {
			return "", err
		}
		parts[i] = code
	}
	return strings.Join(parts, ", "), nil
}

// emitBody lowers a statement list as an indented block. Empty bodies
// become a single 'pass' so every block stays syntactically valid.
func (e *Emitter) emitBody(stmts []ast.Statement) (string, error) {
	var lines []string
	for _, stmt := range stmts {
		code, err := e.emitStatement(stmt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		for _, line := range strings.Split(code, "\n") {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, indent+line)
			}
		}
	}

	if len(lines) == 0 {
		return indent + "pass", nil
	}
	return strings.Join(lines, "\n"), nil
}

// indentLines indents every non-blank line by one level.
func indentLines(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

// formatNumber renders a double in canonical decimal form, without
// exponent notation.
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// GenerateLines wraps an ordered list of strings as a main function that
// prints each element. This degenerate emission keeps the older
// line-oriented transport shape alive.
func (e *Emitter) GenerateLines(lines []string) (string, error) {
	if len(lines) == 0 {
		return "", errors.New(errors.CodegenError, "No AST to generate code from")
	}

	body := make([]string, len(lines))
	for i, line := range lines {
		body[i] = indent + "print(\"" + strings.ReplaceAll(line, "\"", "\\\"") + "\")"
	}

	return "def main():\n" + strings.Join(body, "\n") +
		"\n\nif __name__ == \"__main__\":\n" + indent + "main()", nil
}
