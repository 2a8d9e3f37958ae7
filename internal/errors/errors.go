// Package errors defines the diagnostics shared by every compiler stage.
//
// A diagnostic is a kind plus a single message. The first failure in a
// stage halts that stage and the pipeline; there is no multi-error
// accumulation.
package errors

import (
	"fmt"
	"strings"
)

// Kind classifies a diagnostic by the stage that produced it.
type Kind int

const (
	LexError Kind = iota
	ParseError
	SemanticError
	CodegenError
	InternalError
)

// String returns the human-readable stage prefix for the kind.
func (k Kind) String() string {
	switch k {
	case LexError:
		return "Lexical analysis error"
	case ParseError:
		return "Parse error"
	case SemanticError:
		return "Semantic analysis error"
	case CodegenError:
		return "Code generation error"
	default:
		return "Internal error"
	}
}

// Label returns the machine-readable error category.
func (k Kind) Label() string {
	switch k {
	case LexError:
		return "lexical_error"
	case ParseError:
		return "parse_error"
	case SemanticError:
		return "semantic_error"
	case CodegenError:
		return "codegen_error"
	default:
		return "internal_error"
	}
}

// Diagnostic is a single compiler diagnostic.
type Diagnostic struct {
	Kind    Kind
	Message string
}

// New creates a diagnostic of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Kind.String() + ": " + d.Message
}

// suggestion hints keyed by message substring, checked in order.
var suggestions = []struct {
	substring string
	hint      string
}{
	{"Unexpected character", "remove or replace the character; only Kururi operators, punctuation, identifiers and literals are allowed"},
	{"Unterminated string", "add a closing double quote to the string literal"},
	{"Unexpected token", "check the statement syntax around the reported token"},
	{"Undefined variable", "declare the variable with 'let' or 'const' before using it"},
	{"Undefined function", "define the function before calling it, or check the spelling of its name"},
	{"Type mismatch", "make the declared type and the value's type agree; Kururi does not convert between types"},
}

// generic fallback hints per kind.
var genericHints = map[Kind]string{
	LexError:      "check the source text for characters Kururi does not accept",
	ParseError:    "check the program structure against the Kururi grammar",
	SemanticError: "check declarations, scopes and types in the reported code",
	CodegenError:  "the checked program could not be lowered; this usually indicates a compiler bug",
	InternalError: "this is a compiler bug; please report it with the source that triggered it",
}

// Suggestion returns a hint for the diagnostic, keyed on the message
// content with a generic per-kind fallback.
func (d *Diagnostic) Suggestion() string {
	for _, s := range suggestions {
		if strings.Contains(d.Message, s.substring) {
			return s.hint
		}
	}
	return genericHints[d.Kind]
}
