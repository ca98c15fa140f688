package hooks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/codexplus/ext/internal/logging"
	"github.com/codexplus/ext/internal/paths"
	"github.com/codexplus/ext/internal/settings"
)

// Execute spawns exactly one HookCommand against one Input and returns its
// Outcome. It never returns an error itself: spawn and I/O failures are
// captured on the Outcome so the caller can log them and keep going, per
// §4.5/§7.
func Execute(ctx context.Context, cmd settings.HookCommand, root paths.Root, input Input) Outcome {
	deadline := time.Duration(cmd.TimeoutSeconds) * time.Second
	runCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	path := resolvePath(root, cmd.Command)
	argv0, args := argvFor(path)

	payload, err := json.Marshal(input)
	if err != nil {
		return Outcome{Command: cmd.Command, ExitCode: -1, Err: fmt.Errorf("hooks: marshal input: %w", err)}
	}

	execCmd := exec.CommandContext(runCtx, argv0, args...)
	execCmd.Dir = input.Cwd
	execCmd.Env = append(os.Environ(),
		"CODEX_SESSION_ID="+input.SessionID,
		"CODEX_CWD="+input.Cwd,
		"CODEX_HOOK_EVENT="+string(input.HookEventName),
	)
	execCmd.Stdin = bytes.NewReader(payload)

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr
	configureProcess(execCmd)

	runErr := execCmd.Run()

	if runCtx.Err() == context.DeadlineExceeded {
		logging.Logger.Warn().Str("command", cmd.Command).Dur("timeout", deadline).
			Msg("hook timed out")
		return Outcome{
			Command:     cmd.Command,
			ExitCode:    -1,
			IsBlocking:  false,
			BlockReason: fmt.Sprintf("hook %s timed out after %s", cmd.Command, deadline),
		}
	}

	exitCode := 0
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			logging.Logger.Warn().Str("command", cmd.Command).Err(runErr).Msg("hook failed to spawn")
			return Outcome{Command: cmd.Command, ExitCode: -1, Err: fmt.Errorf("hooks: spawn %s: %w", cmd.Command, runErr)}
		}
	}

	outcome := Outcome{Command: cmd.Command, ExitCode: exitCode, RawStdout: stdout.String()}

	if trimmed := bytes.TrimSpace(stdout.Bytes()); len(trimmed) > 0 {
		var parsed stdoutPayload
		if json.Unmarshal(trimmed, &parsed) == nil {
			outcome.StdoutParsed = &parsed
			outcome.AdditionalContext = truncate(parsed.HookSpecificOutput.AdditionalContext, maxAdditionalContextLen)
			outcome.Feedback = parsed.Feedback
			outcome.PromptOverride = parsed.Prompt
		}
	}

	outcome.IsBlocking = exitCode == 2 || (outcome.StdoutParsed != nil && outcome.StdoutParsed.Decision == "block")
	if outcome.IsBlocking {
		switch {
		case outcome.StdoutParsed != nil && outcome.StdoutParsed.Reason != "":
			outcome.BlockReason = outcome.StdoutParsed.Reason
		default:
			outcome.BlockReason = fmt.Sprintf("Hook %s exited with status 2", cmd.Command)
		}
	} else if exitCode != 0 {
		logging.Logger.Warn().Str("command", cmd.Command).Int("exit_code", exitCode).
			Str("stderr", stderr.String()).Msg("hook exited non-zero")
	}

	return outcome
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
