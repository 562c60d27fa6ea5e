//go:build unix

package launcher

import (
	"os/exec"
	"syscall"
)

// setupProcessAttributes starts the client in its own session so it has no
// controlling terminal and outlives the launcher.
func setupProcessAttributes(cmd *exec.Cmd, c Command) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}
