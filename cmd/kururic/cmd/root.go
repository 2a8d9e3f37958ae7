package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/osad-sakana/kururi-compiler/internal/errors"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "kururic",
	Short: "Kururi to Python compiler",
	Long: `kururic compiles Kururi programs to Python.

Kururi is a small statically-typed imperative language. The compiler
runs a four-stage pipeline: lexical analysis, parsing, semantic
analysis, and code generation. Each stage is also exposed as its own
subcommand for inspecting intermediate artifacts.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

// reportDiagnostic prints a compiler diagnostic to stderr with its
// machine-readable label and a suggestion hint.
func reportDiagnostic(err error) {
	if diag, ok := err.(*errors.Diagnostic); ok {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error[%s]: ", diag.Kind.Label())
		fmt.Fprintln(os.Stderr, diag.Message)
		color.New(color.Faint).Fprintf(os.Stderr, "hint: %s\n", diag.Suggestion())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
