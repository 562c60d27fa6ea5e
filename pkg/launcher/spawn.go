package launcher

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
)

// Process is the handle returned by a successful spawn. *os.Process
// satisfies it.
type Process interface {
	Release() error
	Wait() (*os.ProcessState, error)
}

// Spawner asks the operating system to create a process.
type Spawner interface {
	Spawn(c Command) (Process, error)
}

// ExecSpawner starts processes through os/exec. Standard streams are left
// unset so the child writes to the null device.
type ExecSpawner struct{}

func (ExecSpawner) Spawn(c Command) (Process, error) {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Dir = c.Dir

	// Set up OS-specific process attributes
	setupProcessAttributes(cmd, c)

	if err := cmd.Start(); err != nil {
		return nil, errors.WithStack(err)
	}
	return cmd.Process, nil
}

// ErrorCode extracts the numeric OS error code from a spawn error. A missing
// executable is reported as ENOENT (ERROR_FILE_NOT_FOUND on Windows). It
// returns -1 when no code is available and 0 for a nil error.
func ErrorCode(err error) int {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	if errors.Is(err, exec.ErrNotFound) {
		return int(syscall.ENOENT)
	}
	return -1
}
