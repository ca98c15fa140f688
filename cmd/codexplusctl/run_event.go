package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/codexplus/ext/extension"
	"github.com/codexplus/ext/internal/hooks"
	"github.com/codexplus/ext/internal/settings"
)

func newRunEventCmd() *cobra.Command {
	var toolName string

	cmd := &cobra.Command{
		Use:   "run-event <event>",
		Short: "Run every registered hook for an event, reading a HookInput JSON body from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event := settings.HookEvent(args[0])

			var input hooks.Input
			body, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("codexplusctl: read stdin: %w", err)
			}
			if len(body) > 0 {
				if err := json.Unmarshal(body, &input); err != nil {
					return fmt.Errorf("codexplusctl: decode hook input: %w", err)
				}
			}
			if toolName != "" {
				input.ToolName = toolName
			}
			if input.SessionID == "" {
				input.SessionID = extension.NewSessionID()
			}

			sf, err := openSurface()
			if err != nil {
				return err
			}

			agg := sf.RunEvent(context.Background(), event, input)
			out, err := json.MarshalIndent(agg, "", "  ")
			if err != nil {
				return fmt.Errorf("codexplusctl: encode aggregate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&toolName, "tool", "", "tool name for PreToolUse/PostToolUse matcher selection")
	return cmd
}
