// Package commands loads markdown-defined slash commands and resolves
// invocations of them in free-form user text.
package commands

import (
	"regexp"

	"github.com/codexplus/ext/internal/paths"
)

// NameRegexp is the accepted grammar for a command name: alphanumerics,
// underscore, hyphen, plus ':' for the namespace separator produced by
// commands nested under a subdirectory of commands/.
var NameRegexp = regexp.MustCompile(`^[A-Za-z0-9_:-]+$`)

// Substitution is the literal sentinel a command body substitutes with the
// invocation's raw argument string.
const Substitution = "$ARGUMENTS"

// Command is a named, documented prompt template loaded from one markdown
// file. It is never mutated after construction.
type Command struct {
	Name        string
	Description string
	Body        string
	Scope       paths.Scope
	Path        string
}
