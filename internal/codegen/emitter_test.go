package codegen

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/osad-sakana/kururi-compiler/internal/errors"
	"github.com/osad-sakana/kururi-compiler/internal/lexer"
	"github.com/osad-sakana/kururi-compiler/internal/parser"
	"github.com/osad-sakana/kururi-compiler/internal/semantic"
)

// generate runs the full front end and emits Python for the program.
func generate(t *testing.T, input string) string {
	t.Helper()

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("lexing failed: %v", err)
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	checked, err := semantic.NewAnalyzer().Analyze(program)
	if err != nil {
		t.Fatalf("semantic analysis failed: %v", err)
	}
	code, err := New().Generate(checked)
	if err != nil {
		t.Fatalf("code generation failed: %v", err)
	}
	return code
}

func TestGenerateHelloWorld(t *testing.T) {
	code := generate(t, `function main(): void {
    const moji: string = "Hello World by Kururi!"
    output(moji)
}`)

	for _, want := range []string{
		"def main():",
		`moji = "Hello World by Kururi!"`,
		"print(moji)",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q:\n%s", want, code)
		}
	}

	snaps.MatchSnapshot(t, code)
}

func TestGenerateAdditionAlwaysStringifies(t *testing.T) {
	code := generate(t, `function main(): void {
    let s: string = "a" + 1
}`)
	if !strings.Contains(code, `s = str("a") + str(1)`) {
		t.Fatalf("expected unconditional stringification:\n%s", code)
	}
}

func TestGenerateArithmetic(t *testing.T) {
	code := generate(t, `function main(): void {
    let n: number = 8 - 2 * 3
}`)
	if !strings.Contains(code, "n = 8 - 2 * 3") {
		t.Fatalf("unexpected arithmetic emission:\n%s", code)
	}
}

func TestGenerateForFastPath(t *testing.T) {
	code := generate(t, `function main(): void {
    for i < 9 {
        output("row")
    }
}`)
	if !strings.Contains(code, "for i in range(int(9)):") {
		t.Fatalf("expected range(int(9)) lowering:\n%s", code)
	}
}

func TestGenerateForFallback(t *testing.T) {
	code := generate(t, `function main(): void {
    let n: number = 5
    for i <= n {
        output("row")
    }
}`)
	if !strings.Contains(code, "for i in range(10):") {
		t.Fatalf("expected range(10) fallback:\n%s", code)
	}
}

func TestGenerateWhile(t *testing.T) {
	code := generate(t, `function main(): void {
    let n: number = 0
    while n < 10 {
        n = n + 1
    }
}`)
	if !strings.Contains(code, "while n < 10:") {
		t.Fatalf("unexpected while emission:\n%s", code)
	}
}

func TestGenerateIfChain(t *testing.T) {
	code := generate(t, `function main(): void {
    let n: number = 5
    if n < 3 {
        output("small")
    } elseif n < 10 {
        output("medium")
    } else {
        output("large")
    }
}`)

	for _, want := range []string{
		"if n < 3:",
		"elif n < 10:",
		"else:",
		`        print("small")`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q:\n%s", want, code)
		}
	}
}

func TestGenerateForeach(t *testing.T) {
	code := generate(t, `function main(): void {
    let names: string[] = ["a", "b"]
    foreach name in names {
        output(name)
    }
}`)
	if !strings.Contains(code, "for name in names:") {
		t.Fatalf("unexpected foreach emission:\n%s", code)
	}
}

func TestGenerateEmptyBodyIsPass(t *testing.T) {
	code := generate(t, `function noop(): void {}`)
	if code != "def noop():\n    pass" {
		t.Fatalf("unexpected emission: %q", code)
	}
}

func TestGenerateBooleansAndUnary(t *testing.T) {
	code := generate(t, `function main(): void {
    let t: string = true
    let f: string = false
    let n: string = !true
    let m: number = -5
}`)

	for _, want := range []string{
		"t = True",
		"f = False",
		"n = not True",
		"m = -5",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q:\n%s", want, code)
		}
	}
}

func TestGenerateLogicalOperators(t *testing.T) {
	code := generate(t, `function main(): void {
    let r: string = 1 < 2 && 3 < 4 || 5 < 6
}`)
	if !strings.Contains(code, "1 < 2 and 3 < 4 or 5 < 6") {
		t.Fatalf("unexpected logical emission:\n%s", code)
	}
}

func TestGenerateArraysAndIndexing(t *testing.T) {
	code := generate(t, `function main(): void {
    let xs: number[] = [1, 2, 3]
    let first: number = xs[0]
}`)

	for _, want := range []string{
		"xs = [1, 2, 3]",
		"first = xs[0]",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q:\n%s", want, code)
		}
	}
}

func TestGenerateStringEscaping(t *testing.T) {
	code := generate(t, `function main(): void {
    output("say \"hi\"")
}`)
	if !strings.Contains(code, `print("say \"hi\"")`) {
		t.Fatalf("unexpected escaping:\n%s", code)
	}
}

func TestGenerateClass(t *testing.T) {
	code := generate(t, `class Point {
    x: number = 0
    y: number = 0

    public function magnitude(): number {
        return 0
    }
}

function main(): void {
    let p: Point = new Point
    let x: number = p.x
    let m: number = p.magnitude()
}`)

	for _, want := range []string{
		"class Point:",
		"def __init__(self):",
		"self.x = 0",
		"self.y = 0",
		"def magnitude(self):",
		"p = Point()",
		"x = p.x",
		"m = p.magnitude()",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q:\n%s", want, code)
		}
	}

	snaps.MatchSnapshot(t, code)
}

func TestGenerateMultiplicationTable(t *testing.T) {
	code := generate(t, `function main(): void {
    for i < 9 {
        let row: string = ""
        for j < 9 {
            let result: number = (i + 1) * (j + 1)
            if result < 10 {
                row = row + " " + result
            } else {
                row = row + result
            }
        }
        output(row)
    }
}`)

	for _, want := range []string{
		"for i in range(int(9)):",
		"for j in range(int(9)):",
		"if result < 10:",
		"else:",
		"print(row)",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q:\n%s", want, code)
		}
	}

	snaps.MatchSnapshot(t, code)
}

func TestGenerateLinesLegacy(t *testing.T) {
	emitter := New()
	code, err := emitter.GenerateLines([]string{"Hello", "World"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"def main():",
		`print("Hello")`,
		`print("World")`,
		`if __name__ == "__main__":`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q:\n%s", want, code)
		}
	}
}

func TestGenerateLinesEmpty(t *testing.T) {
	_, err := New().GenerateLines(nil)
	if err == nil {
		t.Fatal("expected an error for empty input")
	}
	diag, ok := err.(*errors.Diagnostic)
	if !ok {
		t.Fatalf("expected a Diagnostic, got %T", err)
	}
	if diag.Kind != errors.CodegenError {
		t.Fatalf("kind = %v, want CodegenError", diag.Kind)
	}
}
