//go:build unix

package hooks

import (
	"os/exec"
	"syscall"
)

// configureProcess puts the hook in its own process group so a timeout can
// kill the whole tree, not just the direct child.
func configureProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
