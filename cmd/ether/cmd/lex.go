package cmd

import (
	"fmt"
	"os"

	"github.com/huz-sh/ether/internal/errors"
	"github.com/huz-sh/ether/internal/intern"
	"github.com/huz-sh/ether/internal/lexer"
	"github.com/huz-sh/ether/pkg/token"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Dump the token stream for a file without parsing it",
	Long: `lex scans a file and prints every token it produces, one per line, as
"TYPE "lexeme" @file:line:col". It never parses or links, so it surfaces lexer
diagnostics in isolation.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	diags := errors.NewBag()
	tokens := lexer.New(path, string(src), intern.New(), diags).Run()

	for _, tok := range tokens {
		printToken(tok)
	}

	fmt.Print(diags.Render(false))
	if diags.HasErrors() {
		return fmt.Errorf("lex: %d error(s)", diags.ErrorCount())
	}
	return nil
}

func printToken(tok token.Token) {
	fmt.Printf("%-12s %-20q @%s\n", tok.Kind, tok.Lexeme, tok.Pos)
}
