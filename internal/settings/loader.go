package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/codexplus/ext/internal/logging"
	"github.com/codexplus/ext/internal/paths"
)

// rawSettings mirrors settings.json's on-disk shape. Unknown top-level and
// nested keys are tolerated by simply not having a field for them.
type rawSettings struct {
	Hooks      map[string][]rawRegistration `json:"hooks"`
	StatusLine *rawStatusLine               `json:"statusLine"`
}

type rawRegistration struct {
	Matcher *string          `json:"matcher"`
	Hooks   []rawHookCommand `json:"hooks"`
}

type rawHookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout *int   `json:"timeout"`
}

type rawStatusLine struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout *int   `json:"timeout"`
	Mode    string `json:"mode"`
}

// LoadScope reads and decodes the settings.json for a single root. A
// missing file is not an error: it yields an empty *Settings. Malformed
// JSON is a hard failure named with the offending path, per §4.2.
func LoadScope(fs afero.Fs, root paths.Root) (*Settings, error) {
	data, err := afero.ReadFile(fs, root.Settings)
	if err != nil {
		if os.IsNotExist(err) {
			return newSettings(), nil
		}
		return nil, fmt.Errorf("settings: read %s: %w", root.Settings, err)
	}

	var raw rawSettings
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("settings: parse %s: %w", root.Settings, err)
	}

	out := newSettings()
	for eventName, regs := range raw.Hooks {
		event := HookEvent(eventName)
		if !KnownEvents[event] {
			logging.Logger.Warn().Str("event", eventName).Str("file", root.Settings).
				Msg("ignoring unknown hook event")
			continue
		}
		for _, reg := range regs {
			if len(reg.Hooks) == 0 {
				continue
			}
			matcher := "*"
			if reg.Matcher != nil {
				matcher = *reg.Matcher
			}
			commands := make([]HookCommand, 0, len(reg.Hooks))
			for _, h := range reg.Hooks {
				timeout := DefaultHookTimeoutSeconds
				if h.Timeout != nil && *h.Timeout > 0 {
					timeout = *h.Timeout
				}
				kind := h.Type
				if kind == "" {
					kind = "command"
				}
				commands = append(commands, HookCommand{
					Kind:           kind,
					Command:        h.Command,
					TimeoutSeconds: timeout,
					Scope:          root.Scope,
				})
			}
			out.Hooks[event] = append(out.Hooks[event], HookRegistration{
				Matcher: matcher,
				Hooks:   commands,
				Scope:   root.Scope,
			})
		}
	}

	if raw.StatusLine != nil {
		timeout := DefaultStatusLineTimeoutSeconds
		if raw.StatusLine.Timeout != nil && *raw.StatusLine.Timeout > 0 {
			timeout = *raw.StatusLine.Timeout
		}
		statusType := raw.StatusLine.Type
		if statusType == "" {
			statusType = "command"
		}
		out.StatusLine = &StatusLineConfig{
			Type:           statusType,
			Command:        raw.StatusLine.Command,
			TimeoutSeconds: timeout,
			Mode:           raw.StatusLine.Mode,
			Scope:          root.Scope,
		}
	}

	return out, nil
}

// Load resolves the three configuration roots for cwd/home and merges
// their settings. A malformed settings.json in one scope does not prevent
// the other scopes from loading; all such errors are joined and returned
// alongside the best-effort merged result.
func Load(fs afero.Fs, cwd, home string) (*Settings, error) {
	roots := paths.Resolve(fs, cwd, home)

	scoped := make([]*Settings, 0, len(roots))
	var errs []error
	for _, root := range roots {
		s, err := LoadScope(fs, root)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scoped = append(scoped, s)
	}

	merged := Merge(scoped)

	if len(errs) == 0 {
		return merged, nil
	}
	return merged, joinErrors(errs)
}

func joinErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	msg := "settings: multiple scopes failed to load:"
	for _, e := range errs {
		msg += "\n  " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
