//go:build unix

package launcher

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecSpawnerStartsDetachedProcess(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	dir := t.TempDir()
	marker := filepath.Join(dir, "started")

	process, err := ExecSpawner{}.Spawn(Command{
		Path: sh,
		Args: []string{"-c", "pwd > started"},
		Dir:  dir,
	})
	require.NoError(t, err)
	require.NotNil(t, process)
	require.NoError(t, process.Release())

	// The child runs on its own, poll for its side effect
	var data []byte
	assert.Eventually(t, func() bool {
		b, readErr := os.ReadFile(marker)
		if readErr != nil || len(b) == 0 {
			return false
		}
		data = b
		return true
	}, 5*time.Second, 20*time.Millisecond)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(string(data[:len(data)-1]))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
