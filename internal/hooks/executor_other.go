//go:build !unix

package hooks

import "os/exec"

// configureProcess has no process-group support on non-Unix platforms; a
// timeout only kills the direct child, not any children it spawned.
func configureProcess(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		return cmd.Process.Kill()
	}
}
