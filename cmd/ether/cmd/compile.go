package cmd

import (
	"fmt"

	"github.com/huz-sh/ether/internal/driver"
	"github.com/spf13/cobra"
)

// runCompile is the root command's handler: the full lex/parse/link/resolve/
// emit/compile pipeline with stage-by-stage error handling.
func runCompile(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("ether: no input files supplied")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	res := driver.Compile(args[0], driver.Options{Verbose: verbose})

	fmt.Print(res.Diags.Render(false))
	if res.Aborted {
		return fmt.Errorf("ether: compilation aborted")
	}

	fmt.Printf("ether: wrote %s\n", res.ObjectPath)
	return nil
}
