package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codexplus/ext/extension"
)

func newStatusLineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status-line",
		Short: "Run the configured status-line command and print its output",
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := openSurface()
			if err != nil {
				return err
			}
			line, ok := sf.StatusLine(context.Background(), extension.NewSessionID())
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}
