package commands

import (
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/codexplus/ext/internal/paths"
)

// Registry is the merged, read-only set of commands available to a
// session, keyed by name.
type Registry struct {
	commands map[string]Command
}

// Build scans all three command directories rooted at roots (in ascending
// precedence order) and returns the merged registry. Higher-precedence
// scopes replace lower-precedence entries with the same name.
func Build(fs afero.Fs, roots []paths.Root) (*Registry, error) {
	reg := &Registry{commands: make(map[string]Command)}
	for _, root := range roots {
		cmds, err := LoadDir(fs, root.Commands, root.Scope)
		if err != nil {
			return nil, err
		}
		for _, c := range cmds {
			reg.commands[c.Name] = c
		}
	}
	return reg, nil
}

// Lookup returns the command registered under name, if any.
func (r *Registry) Lookup(name string) (Command, bool) {
	if r == nil {
		return Command{}, false
	}
	c, ok := r.commands[name]
	return c, ok
}

// Len reports the number of distinct commands in the registry.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.commands)
}

// All returns every command in the registry, in no particular order.
func (r *Registry) All() []Command {
	if r == nil {
		return nil
	}
	out := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		out = append(out, c)
	}
	return out
}

var detectRegexp = regexp.MustCompile(`^/([A-Za-z0-9_:-]+)(?: (.*))?$`)

// Detect matches userText against the slash-command grammar, returning the
// identifier and the raw argument remainder. ok is false if userText does
// not begin with a well-formed "/identifier".
func Detect(userText string) (name, args string, ok bool) {
	trimmed := strings.TrimLeft(userText, " \t\r\n")
	m := detectRegexp.FindStringSubmatch(firstLine(trimmed))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// firstLine returns s up to (not including) its first newline, since a
// command invocation only ever occupies the first line of the prompt.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Substitute replaces every literal occurrence of $ARGUMENTS in the
// command's body with args, including the empty string.
func Substitute(cmd Command, args string) string {
	return strings.ReplaceAll(cmd.Body, Substitution, args)
}
