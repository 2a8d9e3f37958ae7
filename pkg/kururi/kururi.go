// Package kururi exposes the Kururi compilation pipeline: source text is
// lexed, parsed, semantically checked and lowered to Python text in a
// strictly linear sequence. Each stage either yields its artifact or a
// single diagnostic; the driver surfaces the first diagnostic verbatim.
//
// Separate compilations share no state and may run concurrently.
package kururi

import (
	"github.com/osad-sakana/kururi-compiler/internal/ast"
	"github.com/osad-sakana/kururi-compiler/internal/codegen"
	"github.com/osad-sakana/kururi-compiler/internal/lexer"
	"github.com/osad-sakana/kururi-compiler/internal/parser"
	"github.com/osad-sakana/kururi-compiler/internal/semantic"
	"github.com/osad-sakana/kururi-compiler/pkg/token"
)

// Result carries the final Python text along with every intermediate
// artifact of a successful compilation.
type Result struct {
	Tokens  []token.Token
	Program *ast.Program
	Checked *ast.Program
	Code    string
}

// Compile runs the full pipeline on a source buffer.
func Compile(source string) (*Result, error) {
	tokens, err := Lex(source)
	if err != nil {
		return nil, err
	}

	program, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	checked, err := Analyze(program)
	if err != nil {
		return nil, err
	}

	code, err := Generate(checked)
	if err != nil {
		return nil, err
	}

	return &Result{
		Tokens:  tokens,
		Program: program,
		Checked: checked,
		Code:    code,
	}, nil
}

// Lex runs lexical analysis only.
func Lex(source string) ([]token.Token, error) {
	return lexer.Tokenize(source)
}

// Parse runs the parser over a token sequence.
func Parse(tokens []token.Token) (*ast.Program, error) {
	return parser.Parse(tokens)
}

// Analyze runs semantic analysis over a parsed program. The built-in
// function table is seeded per call, not globally.
func Analyze(program *ast.Program) (*ast.Program, error) {
	return semantic.NewAnalyzer().Analyze(program)
}

// Generate lowers a checked program to Python source text.
func Generate(checked *ast.Program) (string, error) {
	return codegen.New().Generate(checked)
}
