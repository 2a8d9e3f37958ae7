// Package types defines the Kururi type lattice used by the parser,
// the semantic analyzer and the code generator.
//
// The lattice is closed: string, number, void, arrays of any element
// type, and named class types. Compatibility is structural equality;
// there is no subtyping.
package types

// Type is the interface implemented by every Kururi type.
type Type interface {
	// String returns the source-level spelling of the type (e.g. "number",
	// "string[]", "Point").
	String() string

	// Equals reports structural equality with another type.
	Equals(other Type) bool
}

// BasicType is one of the built-in scalar types.
type BasicType struct {
	name string
}

// The three built-in scalar types. These are shared singletons; compare
// with Equals, not pointer identity, since arrays rebuild element types.
var (
	STRING Type = &BasicType{name: "string"}
	NUMBER Type = &BasicType{name: "number"}
	VOID   Type = &BasicType{name: "void"}
)

func (b *BasicType) String() string { return b.name }

func (b *BasicType) Equals(other Type) bool {
	o, ok := other.(*BasicType)
	return ok && o.name == b.name
}

// ArrayType is an array of an element type. Element may itself be an
// ArrayType (nested arrays).
type ArrayType struct {
	Element Type
}

// NewArray creates an array type over the given element type.
func NewArray(element Type) *ArrayType {
	return &ArrayType{Element: element}
}

func (a *ArrayType) String() string { return a.Element.String() + "[]" }

func (a *ArrayType) Equals(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && a.Element.Equals(o.Element)
}

// ClassType is a named user-defined class type.
type ClassType struct {
	Name string
}

// NewClass creates a class type with the given name.
func NewClass(name string) *ClassType {
	return &ClassType{Name: name}
}

func (c *ClassType) String() string { return c.Name }

func (c *ClassType) Equals(other Type) bool {
	o, ok := other.(*ClassType)
	return ok && o.Name == c.Name
}

// FunctionType is the signature of a function: ordered parameter types
// plus a return type. It is analyzer-internal and never appears as the
// type of an expression operand.
type FunctionType struct {
	Parameters []Type
	ReturnType Type
}

func (f *FunctionType) String() string {
	s := "function("
	for i, p := range f.Parameters {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + "): " + f.ReturnType.String()
}

func (f *FunctionType) Equals(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || len(f.Parameters) != len(o.Parameters) {
		return false
	}
	for i, p := range f.Parameters {
		if !p.Equals(o.Parameters[i]) {
			return false
		}
	}
	return f.ReturnType.Equals(o.ReturnType)
}
