package semantic

import (
	"github.com/osad-sakana/kururi-compiler/internal/ast"
	"github.com/osad-sakana/kururi-compiler/internal/errors"
	"github.com/osad-sakana/kururi-compiler/internal/types"
)

// analyzeExpression validates an expression subtree: identifiers resolve,
// calls match their signatures, assignment targets are assignable.
func (a *Analyzer) analyzeExpression(expr ast.Expression) error {
	switch e := expr.(type) {
	case *ast.StringLiteral, *ast.NumberLiteral, *ast.BooleanLiteral:
		return nil

	case *ast.Identifier:
		if _, ok := a.scopes.Resolve(e.Value); !ok {
			return errors.New(errors.SemanticError, "Undefined variable: %s", e.Value)
		}
		return nil

	case *ast.BinaryExpression:
		if err := a.analyzeExpression(e.Left); err != nil {
			return err
		}
		return a.analyzeExpression(e.Right)

	case *ast.UnaryExpression:
		return a.analyzeExpression(e.Operand)

	case *ast.CallExpression:
		return a.analyzeCall(e)

	case *ast.MethodCallExpression:
		return a.analyzeMethodCall(e)

	case *ast.IndexExpression:
		return a.analyzeIndex(e)

	case *ast.MemberExpression:
		return a.analyzeMember(e)

	case *ast.AssignmentExpression:
		return a.analyzeAssignment(e)

	case *ast.ArrayLiteral:
		for _, element := range e.Elements {
			if err := a.analyzeExpression(element); err != nil {
				return err
			}
		}
		return nil

	case *ast.NewExpression:
		if _, ok := a.classes[e.ClassName]; !ok {
			return errors.New(errors.SemanticError, "Undefined class: %s", e.ClassName)
		}
		return nil

	default:
		return errors.New(errors.InternalError, "unhandled expression node %T", expr)
	}
}

func (a *Analyzer) analyzeCall(call *ast.CallExpression) error {
	signature, ok := a.functions[call.Name]
	if !ok {
		return errors.New(errors.SemanticError, "Undefined function: %s", call.Name)
	}

	if len(call.Args) != len(signature.Parameters) {
		return errors.New(errors.SemanticError, "Function %s expects %d arguments, got %d",
			call.Name, len(signature.Parameters), len(call.Args))
	}

	for i, arg := range call.Args {
		if err := a.analyzeExpression(arg); err != nil {
			return err
		}
		argType, err := a.exprType(arg)
		if err != nil {
			return err
		}
		if !signature.Parameters[i].Equals(argType) {
			return errors.New(errors.SemanticError, "Argument %d type mismatch: expected %s, found %s",
				i+1, signature.Parameters[i], argType)
		}
	}
	return nil
}

func (a *Analyzer) analyzeMethodCall(call *ast.MethodCallExpression) error {
	if err := a.analyzeExpression(call.Receiver); err != nil {
		return err
	}
	info, err := a.receiverClass(call.Receiver)
	if err != nil {
		return err
	}

	signature, ok := info.Methods[call.Method]
	if !ok {
		return errors.New(errors.SemanticError, "Undefined method: %s.%s", info.Name, call.Method)
	}

	if len(call.Args) != len(signature.Parameters) {
		return errors.New(errors.SemanticError, "Method %s.%s expects %d arguments, got %d",
			info.Name, call.Method, len(signature.Parameters), len(call.Args))
	}

	for i, arg := range call.Args {
		if err := a.analyzeExpression(arg); err != nil {
			return err
		}
		argType, err := a.exprType(arg)
		if err != nil {
			return err
		}
		if !signature.Parameters[i].Equals(argType) {
			return errors.New(errors.SemanticError, "Argument %d type mismatch: expected %s, found %s",
				i+1, signature.Parameters[i], argType)
		}
	}
	return nil
}

func (a *Analyzer) analyzeIndex(index *ast.IndexExpression) error {
	if err := a.analyzeExpression(index.Array); err != nil {
		return err
	}
	arrayType, err := a.exprType(index.Array)
	if err != nil {
		return err
	}
	if _, ok := arrayType.(*types.ArrayType); !ok {
		return errors.New(errors.SemanticError, "Cannot index into value of type %s", arrayType)
	}

	if err := a.analyzeExpression(index.Index); err != nil {
		return err
	}
	indexType, err := a.exprType(index.Index)
	if err != nil {
		return err
	}
	if !indexType.Equals(types.NUMBER) {
		return errors.New(errors.SemanticError, "Type mismatch: expected number, found %s", indexType)
	}
	return nil
}

func (a *Analyzer) analyzeMember(member *ast.MemberExpression) error {
	if err := a.analyzeExpression(member.Object); err != nil {
		return err
	}
	info, err := a.receiverClass(member.Object)
	if err != nil {
		return err
	}
	if _, ok := info.Fields[member.Property]; !ok {
		return errors.New(errors.SemanticError, "Undefined property: %s.%s", info.Name, member.Property)
	}
	return nil
}

// analyzeAssignment requires the target to be an identifier bound in
// some enclosing scope, and rejects assignments to const bindings.
func (a *Analyzer) analyzeAssignment(assign *ast.AssignmentExpression) error {
	target, ok := assign.Target.(*ast.Identifier)
	if !ok {
		return errors.New(errors.SemanticError, "Assignment target must be an identifier")
	}

	symbol, ok := a.scopes.Resolve(target.Value)
	if !ok {
		return errors.New(errors.SemanticError, "Undefined variable: %s", target.Value)
	}
	if symbol.IsConst {
		return errors.New(errors.SemanticError, "Cannot assign to constant '%s'", target.Value)
	}

	return a.analyzeExpression(assign.Value)
}

// receiverClass resolves the class of a method-call or member-access
// receiver.
func (a *Analyzer) receiverClass(receiver ast.Expression) (*ClassInfo, error) {
	receiverType, err := a.exprType(receiver)
	if err != nil {
		return nil, err
	}
	classType, ok := receiverType.(*types.ClassType)
	if !ok {
		return nil, errors.New(errors.SemanticError, "Type mismatch: expected class instance, found %s", receiverType)
	}
	info, ok := a.classes[classType.Name]
	if !ok {
		return nil, errors.New(errors.SemanticError, "Undefined class: %s", classType.Name)
	}
	return info, nil
}

// exprType computes the type of an expression per the Kururi typing
// rules. Comparison, equality and logical results type as string; the
// lattice has no boolean.
func (a *Analyzer) exprType(expr ast.Expression) (types.Type, error) {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		return types.STRING, nil

	case *ast.NumberLiteral:
		return types.NUMBER, nil

	case *ast.BooleanLiteral:
		// Boolean results stand in as string on the Kururi lattice.
		return types.STRING, nil

	case *ast.Identifier:
		symbol, ok := a.scopes.Resolve(e.Value)
		if !ok {
			return nil, errors.New(errors.SemanticError, "Undefined variable: %s", e.Value)
		}
		return symbol.Type, nil

	case *ast.CallExpression:
		signature, ok := a.functions[e.Name]
		if !ok {
			return nil, errors.New(errors.SemanticError, "Undefined function: %s", e.Name)
		}
		return signature.ReturnType, nil

	case *ast.ArrayLiteral:
		if len(e.Elements) == 0 {
			return types.NewArray(types.STRING), nil
		}
		elementType, err := a.exprType(e.Elements[0])
		if err != nil {
			return nil, err
		}
		return types.NewArray(elementType), nil

	case *ast.BinaryExpression:
		return a.binaryType(e)

	case *ast.UnaryExpression:
		if e.Operator == ast.OpNegate {
			return types.NUMBER, nil
		}
		return types.STRING, nil

	case *ast.IndexExpression:
		arrayType, err := a.exprType(e.Array)
		if err != nil {
			return nil, err
		}
		if at, ok := arrayType.(*types.ArrayType); ok {
			return at.Element, nil
		}
		return types.STRING, nil

	case *ast.MemberExpression:
		info, err := a.receiverClass(e.Object)
		if err != nil {
			return nil, err
		}
		if fieldType, ok := info.Fields[e.Property]; ok {
			return fieldType, nil
		}
		return types.STRING, nil

	case *ast.MethodCallExpression:
		info, err := a.receiverClass(e.Receiver)
		if err != nil {
			return nil, err
		}
		if signature, ok := info.Methods[e.Method]; ok {
			return signature.ReturnType, nil
		}
		return types.STRING, nil

	case *ast.AssignmentExpression:
		return a.exprType(e.Value)

	case *ast.NewExpression:
		return types.NewClass(e.ClassName), nil

	default:
		return nil, errors.New(errors.InternalError, "unhandled expression node %T", expr)
	}
}

// binaryType applies the operator typing table: '+' is number only when
// both sides are numbers and string concatenation otherwise; the other
// arithmetic operators are number; comparisons and logical operators
// type as string.
func (a *Analyzer) binaryType(expr *ast.BinaryExpression) (types.Type, error) {
	leftType, err := a.exprType(expr.Left)
	if err != nil {
		return nil, err
	}
	rightType, err := a.exprType(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case ast.OpAdd:
		if leftType.Equals(types.NUMBER) && rightType.Equals(types.NUMBER) {
			return types.NUMBER, nil
		}
		return types.STRING, nil
	case ast.OpSubtract, ast.OpMultiply, ast.OpDivide:
		return types.NUMBER, nil
	default:
		return types.STRING, nil
	}
}
