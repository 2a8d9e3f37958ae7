// Package semantic implements semantic analysis for Kururi programs.
//
// Analysis is a single depth-first walk over the AST. It resolves
// identifiers against an explicit scope stack, checks call arity and
// argument types against a function table seeded with the built-in
// output(string): void, and enforces strict type equality on the Kururi
// lattice. The first error halts analysis.
package semantic

import (
	"github.com/osad-sakana/kururi-compiler/internal/ast"
	"github.com/osad-sakana/kururi-compiler/internal/errors"
	"github.com/osad-sakana/kururi-compiler/internal/types"
)

// ClassInfo records the compile-time shape of a declared class.
type ClassInfo struct {
	Name    string
	Fields  map[string]types.Type
	Methods map[string]*types.FunctionType
}

// Analyzer performs semantic analysis. Each Analyzer carries its own
// scope stack, function table and class registry; separate compilations
// share no state.
type Analyzer struct {
	scopes            *ScopeStack
	functions         map[string]*types.FunctionType
	classes           map[string]*ClassInfo
	currentReturnType types.Type // nil outside function bodies
}

// NewAnalyzer creates an analyzer with one empty global scope and a
// function table seeded with the built-in output(string): void.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		scopes: NewScopeStack(),
		functions: map[string]*types.FunctionType{
			"output": {Parameters: []types.Type{types.STRING}, ReturnType: types.VOID},
		},
		classes: make(map[string]*ClassInfo),
	}
}

// Analyze validates the program and returns it checked. The tree is
// structurally unchanged; validation happens in place.
func (a *Analyzer) Analyze(program *ast.Program) (*ast.Program, error) {
	// Declaration pre-pass: register top-level function signatures and
	// classes so bodies may call forward and mutually recursive code.
	for _, stmt := range program.Statements {
		switch decl := stmt.(type) {
		case *ast.FunctionDecl:
			if err := a.registerFunction(decl); err != nil {
				return nil, err
			}
		case *ast.ClassDecl:
			if err := a.registerClass(decl); err != nil {
				return nil, err
			}
		}
	}

	for _, stmt := range program.Statements {
		if err := a.analyzeStatement(stmt); err != nil {
			return nil, err
		}
	}

	return program, nil
}

func (a *Analyzer) registerFunction(decl *ast.FunctionDecl) error {
	if _, exists := a.functions[decl.Name]; exists {
		return errors.New(errors.SemanticError, "Function '%s' is already declared", decl.Name)
	}
	a.functions[decl.Name] = signatureOf(decl)
	return nil
}

func (a *Analyzer) registerClass(decl *ast.ClassDecl) error {
	if _, exists := a.classes[decl.Name]; exists {
		return errors.New(errors.SemanticError, "Class '%s' is already declared", decl.Name)
	}

	info := &ClassInfo{
		Name:    decl.Name,
		Fields:  make(map[string]types.Type),
		Methods: make(map[string]*types.FunctionType),
	}
	for _, field := range decl.Fields {
		if _, exists := info.Fields[field.Name]; exists {
			return errors.New(errors.SemanticError, "Field '%s' is already declared in class %s", field.Name, decl.Name)
		}
		info.Fields[field.Name] = field.Type
	}
	for _, method := range decl.Methods {
		if _, exists := info.Methods[method.Name]; exists {
			return errors.New(errors.SemanticError, "Method '%s' is already declared in class %s", method.Name, decl.Name)
		}
		info.Methods[method.Name] = signatureOf(method)
	}

	a.classes[decl.Name] = info
	return nil
}

func signatureOf(decl *ast.FunctionDecl) *types.FunctionType {
	params := make([]types.Type, len(decl.Params))
	for i, p := range decl.Params {
		params[i] = p.Type
	}
	return &types.FunctionType{Parameters: params, ReturnType: decl.ReturnType}
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.VariableDecl:
		return a.analyzeVariableDecl(s)
	case *ast.FunctionDecl:
		// Nested declarations are registered on first sight; top-level
		// ones were handled by the pre-pass.
		if _, exists := a.functions[s.Name]; !exists {
			a.functions[s.Name] = signatureOf(s)
		}
		return a.analyzeFunctionBody(s)
	case *ast.ClassDecl:
		if _, exists := a.classes[s.Name]; !exists {
			if err := a.registerClass(s); err != nil {
				return err
			}
		}
		return a.analyzeClassDecl(s)
	case *ast.IfStatement:
		return a.analyzeIfStatement(s)
	case *ast.WhileStatement:
		return a.analyzeWhileStatement(s)
	case *ast.ForStatement:
		return a.analyzeForStatement(s)
	case *ast.ForeachStatement:
		return a.analyzeForeachStatement(s)
	case *ast.ReturnStatement:
		return a.analyzeReturnStatement(s)
	case *ast.ExpressionStatement:
		return a.analyzeExpression(s.Expression)
	default:
		return errors.New(errors.InternalError, "unhandled statement node %T", stmt)
	}
}

func (a *Analyzer) analyzeVariableDecl(decl *ast.VariableDecl) error {
	if err := a.analyzeExpression(decl.Value); err != nil {
		return err
	}
	valueType, err := a.exprType(decl.Value)
	if err != nil {
		return err
	}
	if !decl.VarType.Equals(valueType) {
		return errors.New(errors.SemanticError, "Type mismatch: expected %s, found %s", decl.VarType, valueType)
	}
	if a.scopes.DeclaredInCurrent(decl.Name) {
		return errors.New(errors.SemanticError, "Variable '%s' is already declared", decl.Name)
	}
	a.scopes.Define(decl.Name, decl.VarType, decl.IsConst)
	return nil
}

// analyzeFunctionBody checks a function or method body in a fresh scope
// with the parameters bound and the return type tracked for 'return'
// statements.
func (a *Analyzer) analyzeFunctionBody(decl *ast.FunctionDecl) error {
	a.scopes.Push()
	defer a.scopes.Pop()

	for _, param := range decl.Params {
		a.scopes.Define(param.Name, param.Type, false)
	}

	previous := a.currentReturnType
	a.currentReturnType = decl.ReturnType
	defer func() { a.currentReturnType = previous }()

	return a.analyzeBody(decl.Body)
}

func (a *Analyzer) analyzeClassDecl(decl *ast.ClassDecl) error {
	for _, field := range decl.Fields {
		if err := a.analyzeExpression(field.Default); err != nil {
			return err
		}
		defaultType, err := a.exprType(field.Default)
		if err != nil {
			return err
		}
		if !field.Type.Equals(defaultType) {
			return errors.New(errors.SemanticError, "Type mismatch: expected %s, found %s", field.Type, defaultType)
		}
	}

	for _, method := range decl.Methods {
		if err := a.analyzeFunctionBody(method); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeIfStatement(stmt *ast.IfStatement) error {
	if err := a.analyzeExpression(stmt.Condition); err != nil {
		return err
	}
	if err := a.analyzeScopedBody(stmt.ThenBody); err != nil {
		return err
	}
	for _, branch := range stmt.ElseIfs {
		if err := a.analyzeExpression(branch.Condition); err != nil {
			return err
		}
		if err := a.analyzeScopedBody(branch.Body); err != nil {
			return err
		}
	}
	if stmt.ElseBody != nil {
		if err := a.analyzeScopedBody(stmt.ElseBody); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeWhileStatement(stmt *ast.WhileStatement) error {
	if err := a.analyzeExpression(stmt.Condition); err != nil {
		return err
	}
	return a.analyzeScopedBody(stmt.Body)
}

// analyzeForStatement binds the counter variable as a number in the
// loop's own scope; the condition is resolved inside that scope so it
// may reference the counter.
func (a *Analyzer) analyzeForStatement(stmt *ast.ForStatement) error {
	a.scopes.Push()
	defer a.scopes.Pop()

	a.scopes.Define(stmt.Counter, types.NUMBER, false)
	if err := a.analyzeExpression(stmt.Condition); err != nil {
		return err
	}
	return a.analyzeBody(stmt.Body)
}

// analyzeForeachStatement binds the binder with the iterable's element
// type when the iterable is an array, and string otherwise.
func (a *Analyzer) analyzeForeachStatement(stmt *ast.ForeachStatement) error {
	if err := a.analyzeExpression(stmt.Iterable); err != nil {
		return err
	}
	iterableType, err := a.exprType(stmt.Iterable)
	if err != nil {
		return err
	}

	binderType := types.STRING
	if arrayType, ok := iterableType.(*types.ArrayType); ok {
		binderType = arrayType.Element
	}

	a.scopes.Push()
	defer a.scopes.Pop()

	a.scopes.Define(stmt.Binder, binderType, false)
	return a.analyzeBody(stmt.Body)
}

func (a *Analyzer) analyzeReturnStatement(stmt *ast.ReturnStatement) error {
	if stmt.Value != nil {
		if err := a.analyzeExpression(stmt.Value); err != nil {
			return err
		}
	}

	// Top-level 'return' has no function context to check against.
	if a.currentReturnType == nil {
		return nil
	}

	if stmt.Value == nil {
		if !a.currentReturnType.Equals(types.VOID) {
			return errors.New(errors.SemanticError, "Type mismatch: expected %s, found void", a.currentReturnType)
		}
		return nil
	}

	valueType, err := a.exprType(stmt.Value)
	if err != nil {
		return err
	}
	if a.currentReturnType.Equals(types.VOID) {
		return errors.New(errors.SemanticError, "Type mismatch: expected void, found %s", valueType)
	}
	if !a.currentReturnType.Equals(valueType) {
		return errors.New(errors.SemanticError, "Type mismatch: expected %s, found %s", a.currentReturnType, valueType)
	}
	return nil
}

// analyzeScopedBody analyzes a statement list under a fresh inner scope.
func (a *Analyzer) analyzeScopedBody(body []ast.Statement) error {
	a.scopes.Push()
	defer a.scopes.Pop()
	return a.analyzeBody(body)
}

func (a *Analyzer) analyzeBody(body []ast.Statement) error {
	for _, stmt := range body {
		if err := a.analyzeStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}
