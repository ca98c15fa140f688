//go:build unix

package hooks

import (
	"os"
	"path/filepath"
	"strings"
)

func isExecutable(info os.FileInfo) bool {
	return info.Mode()&0o111 != 0
}

// interpreterFor maps a hook's file extension to the interpreter that
// should run it when the file itself is not marked executable.
func interpreterFor(path string) (argv0 string, args []string, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return "python3", []string{path}, true
	case ".sh":
		return "sh", []string{path}, true
	case ".js":
		return "node", []string{path}, true
	default:
		return "", nil, false
	}
}
