package hooks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/codexplus/ext/internal/paths"
)

// resolvePath finds the file a bare command name refers to: as-is if it is
// absolute or contains a path separator, otherwise the scope's hooks/
// directory, falling back to the ambient search path (left to exec.Command
// to resolve, since it already searches PATH for a bare name).
func resolvePath(root paths.Root, command string) string {
	if filepath.IsAbs(command) || strings.ContainsAny(command, "/\\") {
		return command
	}
	candidate := filepath.Join(root.Hooks, command)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return command
}

// argvFor decides how to invoke path: directly if it is executable,
// otherwise via an interpreter selected by extension. Extensions the
// platform's interpreter table does not recognize are invoked directly and
// left to the OS to reject if they are not runnable.
func argvFor(path string) (argv0 string, args []string) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() && isExecutable(info) {
		return path, nil
	}
	if argv0, args, ok := interpreterFor(path); ok {
		return argv0, args
	}
	return path, nil
}
