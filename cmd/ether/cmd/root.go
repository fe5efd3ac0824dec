// Package cmd implements ether's command-line interface: a cobra root
// command plus debug subcommands, kept as thin wrappers over internal/driver,
// internal/lexer and internal/parser so the pipeline logic never lives twice.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ether [file]",
	Short: "ether compiler",
	Long: `ether compiles a bracketed S-expression source file to a C translation
unit and hands it to a C compiler, producing a .o object file.

  ether main.eth

With no input file, ether prints a usage error and exits non-zero.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runCompile,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print stage-by-stage progress to stderr")
}
