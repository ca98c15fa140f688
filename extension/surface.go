// Package extension is the integration surface a host coding-agent CLI
// embeds: three thin entry points over the configuration, command, and
// hook subsystems.
package extension

import (
	"context"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/codexplus/ext/internal/commands"
	"github.com/codexplus/ext/internal/hooks"
	"github.com/codexplus/ext/internal/paths"
	"github.com/codexplus/ext/internal/settings"
	"github.com/codexplus/ext/internal/watch"
)

// Input, Aggregate and HookEvent name the internal hook types used by
// RunEvent so that code outside this module can construct and hold them.
type (
	Input     = hooks.Input
	Aggregate = hooks.Aggregate
	HookEvent = settings.HookEvent
)

// Surface is constructed once per session and is safe for concurrent use:
// its settings view and command registry are read-only after Reload swaps
// them in atomically.
type Surface struct {
	fs   afero.Fs
	cwd  string
	home string

	mu       sync.RWMutex
	settings *settings.Settings
	registry *commands.Registry
	hookSys  *hooks.System
	roots    []paths.Root
}

// New resolves the three configuration roots for cwd/home, loads settings,
// and builds the command registry. A malformed settings.json in one scope
// is returned as a non-nil error but does not prevent the other scopes
// from contributing to the returned Surface.
func New(fs afero.Fs, cwd, home string) (*Surface, error) {
	sf := &Surface{fs: fs, cwd: cwd, home: home}
	err := sf.reload()
	return sf, err
}

func (sf *Surface) reload() error {
	roots := paths.Resolve(sf.fs, sf.cwd, sf.home)

	s, settingsErr := settings.Load(sf.fs, sf.cwd, sf.home)
	reg, regErr := commands.Build(sf.fs, roots)
	if regErr != nil && settingsErr == nil {
		settingsErr = regErr
	}

	sf.mu.Lock()
	sf.roots = roots
	sf.settings = s
	sf.registry = reg
	sf.hookSys = hooks.NewSystem(s, roots)
	sf.mu.Unlock()

	return settingsErr
}

// Reload re-reads configuration from disk and atomically swaps in the new
// settings view and command registry. Existing RunEvent/RewritePrompt
// calls in flight keep using the view they already captured.
func (sf *Surface) Reload() error {
	return sf.reload()
}

// Watch starts a watch.Watcher over this Surface's resolved roots. The
// caller decides when (or whether) to call Reload in response.
func (sf *Surface) Watch() (*watch.Watcher, error) {
	sf.mu.RLock()
	roots := sf.roots
	sf.mu.RUnlock()
	return watch.New(roots)
}

// RewritePrompt applies the slash-command pipeline: Detect, Lookup,
// Substitute. It returns userText unchanged if no command matches.
func (sf *Surface) RewritePrompt(userText string) string {
	name, args, ok := commands.Detect(userText)
	if !ok {
		return userText
	}

	sf.mu.RLock()
	reg := sf.registry
	sf.mu.RUnlock()

	cmd, ok := reg.Lookup(name)
	if !ok {
		return userText
	}
	return commands.Substitute(cmd, args)
}

// Commands returns every command in the merged registry, for callers that
// want to list or introspect them (e.g. a demo CLI's list-commands).
func (sf *Surface) Commands() []commands.Command {
	sf.mu.RLock()
	defer sf.mu.RUnlock()
	return sf.registry.All()
}

// RunEvent executes every hook registered for event against input.
func (sf *Surface) RunEvent(ctx context.Context, event settings.HookEvent, input hooks.Input) hooks.Aggregate {
	sf.mu.RLock()
	sys := sf.hookSys
	sf.mu.RUnlock()
	return sys.Run(ctx, event, input)
}

// StatusLine executes the configured status-line command and returns its
// stdout trimmed of trailing newlines. It returns ("", false) if no
// status line is configured, or on timeout/non-zero exit.
func (sf *Surface) StatusLine(ctx context.Context, sessionID string) (string, bool) {
	sf.mu.RLock()
	sl := sf.settings.StatusLine
	roots := sf.roots
	sf.mu.RUnlock()

	if sl == nil {
		return "", false
	}

	root := rootFor(roots, sl.Scope)
	cmd := settingsHookCommand(sl)
	outcome := hooks.Execute(ctx, cmd, root, hooks.Input{SessionID: sessionID, Cwd: sf.cwd})
	if outcome.Err != nil || outcome.ExitCode != 0 {
		return "", false
	}
	return strings.TrimRight(outcome.RawStdout, "\n"), true
}

func rootFor(roots []paths.Root, scope paths.Scope) paths.Root {
	for _, r := range roots {
		if r.Scope == scope {
			return r
		}
	}
	return paths.Root{}
}

func settingsHookCommand(sl *settings.StatusLineConfig) settings.HookCommand {
	return settings.HookCommand{
		Kind:           sl.Type,
		Command:        sl.Command,
		TimeoutSeconds: sl.TimeoutSeconds,
		Scope:          sl.Scope,
	}
}
