// Package paths resolves the three configuration roots the rest of the
// engine reads from: project-high, project, and user.
package paths

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Scope identifies one of the three configuration roots, ordered by
// precedence (Highest wins).
type Scope string

const (
	ScopeProjectHigh Scope = "project-high"
	ScopeProject     Scope = "project"
	ScopeUser        Scope = "user"
)

// Ascending is the three scopes in ascending precedence order: user first,
// project-high last. Settings merges and command-registry builds walk in
// this order so that later entries win or append after earlier ones.
var Ascending = []Scope{ScopeUser, ScopeProject, ScopeProjectHigh}

// Root is one configuration directory and its well-known subdirectories.
type Root struct {
	Scope    Scope
	Dir      string
	Settings string
	Commands string
	Hooks    string
}

// Resolve produces the three scoped roots for a working directory cwd and
// a user home directory home, in ascending precedence order (matching
// Ascending). A blank home is tolerated: the user root is simply never
// present on disk, which Fs-backed callers treat as empty.
func Resolve(fs afero.Fs, cwd, home string) []Root {
	roots := []Root{
		newRoot(ScopeUser, filepath.Join(home, ".claude")),
		newRoot(ScopeProject, filepath.Join(cwd, ".claude")),
		newRoot(ScopeProjectHigh, filepath.Join(cwd, ".codexplus")),
	}
	_ = fs // reserved: Root does not itself touch the filesystem
	return roots
}

func newRoot(scope Scope, dir string) Root {
	return Root{
		Scope:    scope,
		Dir:      dir,
		Settings: filepath.Join(dir, "settings.json"),
		Commands: filepath.Join(dir, "commands"),
		Hooks:    filepath.Join(dir, "hooks"),
	}
}

// Descending returns roots in descending precedence order (project-high
// first), the order command-registry precedence conflicts are reasoned
// about in prose even though Build populates ascending.
func Descending(roots []Root) []Root {
	out := make([]Root, len(roots))
	for i, r := range roots {
		out[len(roots)-1-i] = r
	}
	return out
}
