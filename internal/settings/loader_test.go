package settings

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/codexplus/ext/internal/paths"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadScopeMissingFileIsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := paths.Resolve(fs, "/work", "/home/alice")[1]

	s, err := LoadScope(fs, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Hooks) != 0 || s.StatusLine != nil {
		t.Fatalf("expected empty settings, got %+v", s)
	}
}

func TestLoadScopeParsesHooksAndStatusLine(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := paths.Resolve(fs, "/work", "/home/alice")[1]
	writeFile(t, fs, root.Settings, `{
		"hooks": {
			"UserPromptSubmit": [
				{"matcher": "*", "hooks": [{"type": "command", "command": "add_context.py", "timeout": 5}]}
			]
		},
		"statusLine": {"type": "command", "command": "git_status.sh", "timeout": 2, "mode": "prepend"}
	}`)

	s, err := LoadScope(fs, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	regs := s.Hooks[EventUserPromptSubmit]
	if len(regs) != 1 || len(regs[0].Hooks) != 1 {
		t.Fatalf("unexpected hooks: %+v", regs)
	}
	if regs[0].Hooks[0].Command != "add_context.py" || regs[0].Hooks[0].TimeoutSeconds != 5 {
		t.Fatalf("unexpected hook command: %+v", regs[0].Hooks[0])
	}
	if s.StatusLine == nil || s.StatusLine.Command != "git_status.sh" || s.StatusLine.Mode != "prepend" {
		t.Fatalf("unexpected status line: %+v", s.StatusLine)
	}
}

func TestLoadScopeDefaultsTimeoutAndDropsEmptyRegistration(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := paths.Resolve(fs, "/work", "/home/alice")[1]
	writeFile(t, fs, root.Settings, `{
		"hooks": {
			"UserPromptSubmit": [
				{"hooks": [{"type": "command", "command": "test.sh"}]},
				{"matcher": "x", "hooks": []}
			]
		}
	}`)

	s, err := LoadScope(fs, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	regs := s.Hooks[EventUserPromptSubmit]
	if len(regs) != 1 {
		t.Fatalf("expected empty-hooks registration to be dropped, got %+v", regs)
	}
	if regs[0].Hooks[0].TimeoutSeconds != DefaultHookTimeoutSeconds {
		t.Fatalf("expected default timeout, got %d", regs[0].Hooks[0].TimeoutSeconds)
	}
}

func TestLoadScopeIgnoresUnknownEvent(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := paths.Resolve(fs, "/work", "/home/alice")[1]
	writeFile(t, fs, root.Settings, `{
		"hooks": {"NotARealEvent": [{"hooks": [{"type": "command", "command": "x"}]}]}
	}`)

	s, err := LoadScope(fs, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Hooks) != 0 {
		t.Fatalf("expected unknown event to be ignored, got %+v", s.Hooks)
	}
}

func TestLoadScopeMalformedJSONIsHardFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := paths.Resolve(fs, "/work", "/home/alice")[1]
	writeFile(t, fs, root.Settings, `{not json`)

	_, err := LoadScope(fs, root)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadIsolatesScopeFailures(t *testing.T) {
	fs := afero.NewMemMapFs()
	roots := paths.Resolve(fs, "/work", "/home/alice")
	// user scope: malformed
	writeFile(t, fs, roots[0].Settings, `{bad`)
	// project scope: valid
	writeFile(t, fs, roots[1].Settings, `{
		"hooks": {"SessionStart": [{"hooks": [{"type": "command", "command": "init.sh"}]}]}
	}`)

	s, err := Load(fs, "/work", "/home/alice")
	if err == nil {
		t.Fatal("expected error surfaced for the malformed user scope")
	}
	if len(s.Hooks[EventSessionStart]) != 1 {
		t.Fatalf("expected project scope to still load, got %+v", s.Hooks)
	}
}
