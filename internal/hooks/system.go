package hooks

import (
	"context"
	"strings"

	"github.com/codexplus/ext/internal/paths"
	"github.com/codexplus/ext/internal/settings"
)

// System is the per-event orchestrator: it holds the merged settings and
// the scope roots hook commands resolve against.
type System struct {
	settings *settings.Settings
	roots    map[paths.Scope]paths.Root
}

// NewSystem builds a System from a merged Settings view and the roots the
// session resolved (any precedence order; only the map matters here).
func NewSystem(s *settings.Settings, roots []paths.Root) *System {
	m := make(map[paths.Scope]paths.Root, len(roots))
	for _, r := range roots {
		m[r.Scope] = r
	}
	return &System{settings: s, roots: m}
}

// selector returns the per-event value a matcher is compared against:
// tool name for the two tool-use events, empty string otherwise.
func selector(event settings.HookEvent, input Input) string {
	switch event {
	case settings.EventPreToolUse, settings.EventPostToolUse:
		return input.ToolName
	default:
		return ""
	}
}

// Run executes every hook registered for event whose matcher admits input,
// in configured order, halting at the first blocking outcome.
func (s *System) Run(ctx context.Context, event settings.HookEvent, input Input) Aggregate {
	agg := Aggregate{Prompt: input.Prompt}
	if s == nil || s.settings == nil {
		return agg
	}

	sel := selector(event, input)
	var contexts []string

	for _, reg := range s.settings.HooksFor(event) {
		if ctx.Err() != nil {
			agg.AddedContext = strings.Join(contexts, "\n\n")
			agg.BlockReason = "cancelled"
			return agg
		}
		if !reg.Matches(sel) {
			continue
		}
		root, ok := s.roots[reg.Scope]
		if !ok {
			root = paths.Root{Scope: reg.Scope}
		}
		for _, hookCmd := range reg.Hooks {
			if ctx.Err() != nil {
				agg.AddedContext = strings.Join(contexts, "\n\n")
				agg.BlockReason = "cancelled"
				return agg
			}
			outcome := Execute(ctx, hookCmd, root, input)
			agg.Outcomes = append(agg.Outcomes, outcome)

			if outcome.IsBlocking {
				agg.Blocked = true
				agg.BlockReason = outcome.BlockReason
				return agg
			}

			if outcome.AdditionalContext != "" {
				contexts = append(contexts, outcome.AdditionalContext)
			}
			if outcome.PromptOverride != "" {
				input.Prompt = outcome.PromptOverride
				agg.Prompt = outcome.PromptOverride
			}
		}
	}

	agg.AddedContext = strings.Join(contexts, "\n\n")
	return agg
}
