package ast

import (
	"bytes"

	"github.com/osad-sakana/kururi-compiler/internal/types"
)

// VariableDecl represents a 'let' or 'const' declaration.
type VariableDecl struct {
	IsConst bool
	Name    string
	VarType types.Type
	Value   Expression
}

func (vd *VariableDecl) statementNode() {}
func (vd *VariableDecl) String() string {
	var out bytes.Buffer

	if vd.IsConst {
		out.WriteString("const ")
	} else {
		out.WriteString("let ")
	}
	out.WriteString(vd.Name)
	out.WriteString(": ")
	out.WriteString(vd.VarType.String())
	out.WriteString(" = ")
	out.WriteString(vd.Value.String())

	return out.String()
}

// Parameter is a single function parameter: name plus declared type.
type Parameter struct {
	Name string
	Type types.Type
}

// FunctionDecl represents a function declaration. It doubles as a class
// method when it appears in a ClassDecl's method list.
type FunctionDecl struct {
	Name       string
	Params     []Parameter
	ReturnType types.Type
	Body       []Statement
	IsPublic   bool
}

func (fd *FunctionDecl) statementNode() {}
func (fd *FunctionDecl) String() string {
	var out bytes.Buffer

	if fd.IsPublic {
		out.WriteString("public ")
	}
	out.WriteString("function ")
	out.WriteString(fd.Name)
	out.WriteString("(")
	for i, p := range fd.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.Name)
		out.WriteString(": ")
		out.WriteString(p.Type.String())
	}
	out.WriteString("): ")
	out.WriteString(fd.ReturnType.String())
	out.WriteString(" ")
	out.WriteString(blockString(fd.Body))

	return out.String()
}

// FieldDecl is a class field: name, declared type and default value.
type FieldDecl struct {
	Name    string
	Type    types.Type
	Default Expression
}

// ClassDecl represents a class declaration with ordered fields and methods.
type ClassDecl struct {
	Name    string
	Fields  []FieldDecl
	Methods []*FunctionDecl
}

func (cd *ClassDecl) statementNode() {}
func (cd *ClassDecl) String() string {
	var out bytes.Buffer

	out.WriteString("class ")
	out.WriteString(cd.Name)
	out.WriteString(" {\n")
	for _, f := range cd.Fields {
		out.WriteString("  ")
		out.WriteString(f.Name)
		out.WriteString(": ")
		out.WriteString(f.Type.String())
		out.WriteString(" = ")
		out.WriteString(f.Default.String())
		out.WriteString("\n")
	}
	for _, m := range cd.Methods {
		out.WriteString("  ")
		out.WriteString(m.String())
		out.WriteString("\n")
	}
	out.WriteString("}")

	return out.String()
}

// blockString renders a statement list as a braced block.
func blockString(stmts []Statement) string {
	var out bytes.Buffer

	out.WriteString("{ ")
	for _, s := range stmts {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")

	return out.String()
}
