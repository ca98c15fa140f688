// Command codexplusctl exercises the extension surface from the command
// line: rewriting prompts, running hook events, reading the status line,
// and listing the merged command registry. It contains no business logic
// beyond flag parsing and output formatting.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "codexplusctl",
		Short: "Exercise the codexplus extension engine from the command line",
	}
	root.AddCommand(newRewritePromptCmd())
	root.AddCommand(newRunEventCmd())
	root.AddCommand(newStatusLineCmd())
	root.AddCommand(newListCommandsCmd())
	return root
}
