package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osad-sakana/kururi-compiler/pkg/kururi"
)

var (
	outputFile     string
	compileVerbose bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a Kururi file to Python",
	Long: `Compile a Kururi program and write the generated Python source.

The output file defaults to the input path with a .py extension.

Examples:
  # Compile a program
  kururic compile hello.kururi

  # Compile with a custom output file
  kururic compile hello.kururi -o out.py`,
	Args: cobra.ExactArgs(1),
	RunE: compileFile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input>.py)")
	compileCmd.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "verbose output")
}

func compileFile(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", filename)
	}

	result, err := kururi.Compile(string(content))
	if err != nil {
		reportDiagnostic(err)
		return err
	}

	outFile := outputFile
	if outFile == "" {
		ext := filepath.Ext(filename)
		if ext != "" {
			outFile = strings.TrimSuffix(filename, ext) + ".py"
		} else {
			outFile = filename + ".py"
		}
	}

	if err := os.WriteFile(outFile, []byte(result.Code+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "  Tokens:     %d\n", len(result.Tokens))
		fmt.Fprintf(os.Stderr, "  Statements: %d\n", len(result.Program.Statements))
	}
	fmt.Printf("Compiled %s -> %s\n", filename, outFile)

	return nil
}
