package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRewritePromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite-prompt <text>...",
		Short: "Run the slash-command pipeline over a prompt and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := openSurface()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sf.RewritePrompt(strings.Join(args, " ")))
			return nil
		},
	}
}
