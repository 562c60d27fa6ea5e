//go:build unix

package launcher

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupProcessAttributesNewSession(t *testing.T) {
	layout := DefaultLayout()
	dir := filepath.FromSlash("/opt/app")
	c := layout.Command(layout.Resolve(dir, layout.ConfigPath(dir)))
	cmd := exec.Command(c.Path, c.Args...)

	setupProcessAttributes(cmd, c)

	require.NotNil(t, cmd.SysProcAttr)
	assert.True(t, cmd.SysProcAttr.Setsid)
	assert.False(t, cmd.SysProcAttr.Setpgid)
}
