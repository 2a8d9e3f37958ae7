package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osad-sakana/kururi-compiler/pkg/kururi"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Kururi file and print the AST",
	Args:  cobra.ExactArgs(1),
	RunE:  parseFile,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseFile(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	tokens, err := kururi.Lex(string(content))
	if err != nil {
		reportDiagnostic(err)
		return err
	}

	program, err := kururi.Parse(tokens)
	if err != nil {
		reportDiagnostic(err)
		return err
	}

	fmt.Println(program.String())
	return nil
}
