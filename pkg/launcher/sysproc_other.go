//go:build !unix && !windows

package launcher

import (
	"os/exec"
)

// setupProcessAttributes is a no-op on systems without sessions or windows
func setupProcessAttributes(cmd *exec.Cmd, c Command) {
}
