package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codexplus/ext/internal/paths"
)

var scopeColor = map[paths.Scope]*color.Color{
	paths.ScopeProjectHigh: color.New(color.FgMagenta, color.Bold),
	paths.ScopeProject:     color.New(color.FgCyan),
	paths.ScopeUser:        color.New(color.FgWhite),
}

func newListCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-commands",
		Short: "List the merged slash-command registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := openSurface()
			if err != nil {
				return err
			}
			cmds := sf.Commands()
			sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })

			for _, c := range cmds {
				c := c
				paint := scopeColor[c.Scope]
				if paint == nil {
					paint = color.New()
				}
				paint.Fprintf(cmd.OutOrStdout(), "/%-20s", c.Name)
				fmt.Fprintf(cmd.OutOrStdout(), " [%s]  %s\n", c.Scope, c.Description)
			}
			return nil
		},
	}
}
