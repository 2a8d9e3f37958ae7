package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osad-sakana/kururi-compiler/pkg/kururi"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run semantic analysis on a Kururi file",
	Args:  cobra.ExactArgs(1),
	RunE:  checkFile,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkFile(_ *cobra.Command, args []string) error {
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

	if _, err := kururi.Analyze(program); err != nil {
		reportDiagnostic(err)
		return err
	}

	fmt.Printf("%s: no errors\n", args[0])
	return nil
}
