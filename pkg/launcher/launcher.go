package launcher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ExecutableFunc returns the path of the running executable.
type ExecutableFunc func() (string, error)

type Launcher struct {
	layout     Layout
	spawner    Spawner
	executable ExecutableFunc
}

func NewLauncher() *Launcher {
	return &Launcher{
		layout:     DefaultLayout(),
		spawner:    ExecSpawner{},
		executable: os.Executable,
	}
}

func (l *Launcher) Layout() Layout {
	return l.layout
}

func (l *Launcher) SetLayout(layout Layout) {
	l.layout = layout
}

func (l *Launcher) SetInterpreter(interpreter string) {
	l.layout.Interpreter = interpreter
}

func (l *Launcher) SetSpawner(spawner Spawner) {
	l.spawner = spawner
}

func (l *Launcher) SetExecutable(executable ExecutableFunc) {
	l.executable = executable
}

// SelfDir returns the absolute directory containing the running executable.
func (l *Launcher) SelfDir() (string, error) {
	exe, err := l.executable()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate executable")
	}
	if exe == "" {
		return "", errors.New("executable path is empty")
	}

	// Resolve symlinks so the client is looked up next to the real binary
	if resolved, err := filepath.EvalSymlinks(exe); err == nil && resolved != "" {
		exe = resolved
	}

	dir, err := filepath.Abs(filepath.Dir(exe))
	if err != nil {
		return "", errors.Wrapf(err, "failed to make %s absolute", exe)
	}
	return dir, nil
}

// DefaultConfigPath returns the config file expected next to the executable.
func (l *Launcher) DefaultConfigPath() (string, error) {
	dir, err := l.SelfDir()
	if err != nil {
		return "", err
	}
	return l.layout.ConfigPath(dir), nil
}

// Paths resolves the launcher directory once and derives the client paths
// from it. An empty configPath selects the config file next to the
// executable.
func (l *Launcher) Paths(configPath string) (Paths, error) {
	dir, err := l.SelfDir()
	if err != nil {
		return Paths{}, &DirError{Err: err}
	}
	if configPath == "" {
		configPath = l.layout.ConfigPath(dir)
	}
	return l.layout.Resolve(dir, configPath), nil
}

// DirError reports that the launcher directory could not be resolved, so
// nothing was started.
type DirError struct {
	Err error
}

func (e *DirError) Error() string {
	return "cannot resolve launcher directory: " + e.Err.Error()
}

func (e *DirError) Unwrap() error {
	return e.Err
}

type RunOptions struct {
	LogOutput func(string)
	Stderr    io.Writer // Diagnostics, defaults to os.Stderr
}

/////////////////////////////////////////////////////////////////////
// Launch
/////////////////////////////////////////////////////////////////////

// Launch starts the client script with configPath, or with the default config
// path when it is empty, and returns without waiting for it. The process
// handle is released right after creation. Failures are reported on the diagnostic stream and returned; Launch never
// terminates the caller.
func (l *Launcher) Launch(configPath string, options ...RunOptions) error {
	// Get options
	var runOptions RunOptions
	if len(options) > 0 {
		runOptions = options[0]
	}

	// Helper function to log if available
	log := func(msg string) {
		if runOptions.LogOutput != nil {
			runOptions.LogOutput(msg)
		}
	}

	stderr := runOptions.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	paths, err := l.Paths(configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	cmd := l.layout.Command(paths)

	log("Launcher directory: " + paths.SelfDir)
	log("Client directory: " + paths.ClientDir)
	log("Config path: " + paths.Config)
	log("Command: " + cmd.CmdLine)

	process, err := l.spawner.Spawn(cmd)
	if err != nil {
		fmt.Fprintf(stderr, "CreateProcess failed (%d)\n", ErrorCode(err))
		return errors.Wrapf(err, "failed to start %s", cmd.Path)
	}

	// Don't wait
	if err := process.Release(); err != nil {
		log("Failed to release process handle: " + err.Error())
	}

	log("Client process started")
	return nil
}
