package cmd

import (
	"fmt"
	"os"

	"github.com/huz-sh/ether/internal/errors"
	"github.com/huz-sh/ether/internal/intern"
	"github.com/huz-sh/ether/internal/lexer"
	"github.com/huz-sh/ether/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Dump the parsed top-level declarations without linking or resolving",
	Long: `parse lexes and parses a file and prints its top-level declarations in
S-expression form. It does not run the linker or resolver, so struct/
function references are shown unresolved.

Note: 'load' directives are printed as written; parse does not recursively
merge loaded files the way the full 'ether <file>' pipeline does.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	diags := errors.NewBag()
	tokens := lexer.New(path, string(src), intern.New(), diags).Run()
	prog := parser.New(tokens, diags).ParseProgram()

	for _, decl := range prog.Decls {
		fmt.Println(decl.String())
	}

	fmt.Print(diags.Render(false))
	if diags.HasErrors() {
		return fmt.Errorf("parse: %d error(s)", diags.ErrorCount())
	}
	return nil
}
