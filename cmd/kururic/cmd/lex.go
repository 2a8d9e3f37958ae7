package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osad-sakana/kururi-compiler/pkg/kururi"
	"github.com/osad-sakana/kururi-compiler/pkg/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Kururi file and print the token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func lexFile(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	tokens, err := kururi.Lex(string(content))
	if err != nil {
		reportDiagnostic(err)
		return err
	}

	for _, tok := range tokens {
		switch tok.Type {
		case token.IDENT, token.NUMBER, token.STRING:
			fmt.Printf("%-8s %s\n", tok.Type, tok)
		default:
			fmt.Println(tok.Type)
		}
	}
	return nil
}
