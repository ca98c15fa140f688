// Package hooks executes external processes at lifecycle events and
// aggregates their outcomes according to the exit-code/JSON blocking
// contract.
package hooks

import (
	"encoding/json"

	"github.com/codexplus/ext/internal/settings"
)

// Input is serialized to JSON on a hook's standard input. Event-specific
// fields are merged at the top level; a field irrelevant to the current
// event is simply omitted from the wire payload.
type Input struct {
	SessionID      string             `json:"sessionId"`
	TranscriptPath string             `json:"transcriptPath,omitempty"`
	Cwd            string             `json:"cwd"`
	HookEventName  settings.HookEvent `json:"hookEventName"`

	Prompt string `json:"prompt,omitempty"`

	ToolName     string          `json:"toolName,omitempty"`
	ToolUseID    string          `json:"toolUseId,omitempty"`
	ToolInput    json.RawMessage `json:"toolInput,omitempty"`
	ToolResponse json.RawMessage `json:"toolResponse,omitempty"`

	Source string `json:"source,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// hookSpecificOutput carries the nested block a hook may return.
type hookSpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// stdoutPayload is the tolerant decode of a hook's stdout JSON object.
// Feedback and Prompt are supplemental fields the reference implementation
// exposes beyond the informal schema: Feedback carries free text separate
// from the block Reason, and Prompt lets a hook rewrite the in-flight
// prompt for the hooks that run after it within the same event.
type stdoutPayload struct {
	Decision           string             `json:"decision"`
	Reason             string             `json:"reason"`
	Feedback           string             `json:"feedback"`
	Prompt             string             `json:"prompt"`
	HookSpecificOutput hookSpecificOutput `json:"hookSpecificOutput"`
}

// Outcome is what running one HookCommand against one Input produced.
type Outcome struct {
	Command  string
	ExitCode int
	// RawStdout is the hook's full captured stdout, used by the
	// status-line entry point which has no JSON decision contract.
	RawStdout string
	// StdoutParsed is nil when stdout did not decode as a JSON object.
	StdoutParsed      *stdoutPayload
	IsBlocking        bool
	AdditionalContext string
	BlockReason       string
	Feedback          string
	// PromptOverride is non-empty when the hook asked to rewrite the
	// in-flight prompt for subsequent hooks in this event.
	PromptOverride string
	// Err records a spawn/IO failure. It never makes the outcome
	// blocking on its own.
	Err error
}

// Aggregate is the result of running every matching hook for one event.
type Aggregate struct {
	Outcomes    []Outcome
	Blocked     bool
	BlockReason string
	AddedContext string
	// Prompt is the input prompt after any hook-driven rewrites; equals
	// the original prompt when no hook supplied an override.
	Prompt string
}

const maxAdditionalContextLen = 10000
