package settings

import (
	"testing"

	"github.com/codexplus/ext/internal/paths"
)

func TestMergeConcatenatesHooksInSuppliedOrder(t *testing.T) {
	user := &Settings{Hooks: map[HookEvent][]HookRegistration{
		EventUserPromptSubmit: {{Matcher: "*", Hooks: []HookCommand{{Command: "user.sh"}}, Scope: paths.ScopeUser}},
	}}
	project := &Settings{Hooks: map[HookEvent][]HookRegistration{
		EventUserPromptSubmit: {{Matcher: "*", Hooks: []HookCommand{{Command: "project.sh"}}, Scope: paths.ScopeProject}},
	}}

	merged := Merge([]*Settings{user, project})
	regs := merged.Hooks[EventUserPromptSubmit]
	if len(regs) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(regs))
	}
	if regs[0].Hooks[0].Command != "user.sh" || regs[1].Hooks[0].Command != "project.sh" {
		t.Fatalf("expected user-then-project order, got %+v", regs)
	}
}

func TestMergeStatusLineHighestPrecedenceWins(t *testing.T) {
	user := &Settings{StatusLine: &StatusLineConfig{Command: "user_status.sh"}}
	project := &Settings{StatusLine: &StatusLineConfig{Command: "project_status.sh"}}

	merged := Merge([]*Settings{user, project})
	if merged.StatusLine == nil || merged.StatusLine.Command != "project_status.sh" {
		t.Fatalf("expected project status line to win, got %+v", merged.StatusLine)
	}

	mergedNoOverride := Merge([]*Settings{project, nil})
	if mergedNoOverride.StatusLine.Command != "project_status.sh" {
		t.Fatalf("expected nil scope to be a no-op, got %+v", mergedNoOverride.StatusLine)
	}
}
