package extension

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/codexplus/ext/internal/hooks"
)

func TestSurfaceRewritePromptPassesThroughUnmatched(t *testing.T) {
	fs := afero.NewMemMapFs()
	sf, err := New(fs, "/work", "/home/alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sf.RewritePrompt("hello there"); got != "hello there" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestSurfaceRewritePromptSubstitutesArguments(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/work/.claude/commands/greet.md", []byte("Greet $ARGUMENTS warmly"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	sf, err := New(fs, "/work", "/home/alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sf.RewritePrompt("/greet World"); got != "Greet World warmly" {
		t.Fatalf("unexpected rewrite: %q", got)
	}
}

func TestSurfaceRunEventBlocksOnExitTwo(t *testing.T) {
	dir := t.TempDir()
	fs := afero.NewOsFs()

	hooksDir := filepath.Join(dir, ".claude", "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	script := filepath.Join(hooksDir, "deny.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 2\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	settingsJSON := `{"hooks":{"UserPromptSubmit":[{"hooks":[{"type":"command","command":"deny.sh"}]}]}}`
	if err := os.WriteFile(filepath.Join(dir, ".claude", "settings.json"), []byte(settingsJSON), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	sf, err := New(fs, dir, filepath.Join(dir, "home"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	agg := sf.RunEvent(context.Background(), "UserPromptSubmit", hooks.Input{Cwd: dir, SessionID: "s1"})
	if !agg.Blocked {
		t.Fatalf("expected blocked aggregate, got %+v", agg)
	}
}

func TestSurfaceStatusLineNoneConfigured(t *testing.T) {
	fs := afero.NewMemMapFs()
	sf, err := New(fs, "/work", "/home/alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sf.StatusLine(context.Background(), "s1"); ok {
		t.Fatal("expected no status line to be configured")
	}
}

func TestNewSessionIDReturnsDistinctNonEmptyValues(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()
	if a == "" || b == "" || a == b {
		t.Fatalf("expected distinct non-empty session ids, got %q and %q", a, b)
	}
}
