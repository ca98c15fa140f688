//go:build !unix

package hooks

import (
	"os"
	"path/filepath"
	"strings"
)

// isExecutable is always false on Windows: there is no executable bit to
// check, so every hook is dispatched through interpreterFor instead.
func isExecutable(info os.FileInfo) bool {
	return false
}

// interpreterFor maps a hook's file extension to the interpreter that
// should run it. Windows adds .bat/.cmd/.ps1, which have no meaning on
// Unix.
func interpreterFor(path string) (argv0 string, args []string, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return "python3", []string{path}, true
	case ".js":
		return "node", []string{path}, true
	case ".bat", ".cmd":
		return "cmd.exe", []string{"/C", path}, true
	case ".ps1":
		return "powershell.exe", []string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-File", path}, true
	default:
		return "", nil, false
	}
}
