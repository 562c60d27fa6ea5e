//go:build windows

package launcher

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// setupProcessAttributes passes the quoted command line verbatim and keeps
// the client from allocating a console window.
func setupProcessAttributes(cmd *exec.Cmd, c Command) {
	attr := &syscall.SysProcAttr{
		CmdLine: c.CmdLine,
	}
	if c.HideWindow {
		attr.HideWindow = true
		attr.CreationFlags = windows.CREATE_NO_WINDOW
	}
	cmd.SysProcAttr = attr
}
