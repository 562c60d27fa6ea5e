package launcher

import (
	"path/filepath"
	"strings"
)

/////////////////////////////////////////////////////////////////////
// Layout
/////////////////////////////////////////////////////////////////////

// Layout describes where the client lives relative to the launcher and how
// it is invoked.
type Layout struct {
	Interpreter string   `json:"interpreter"`
	ClientDir   string   `json:"clientDir"`
	Script      []string `json:"script"` // relative to ClientDir
	ConfigFile  string   `json:"configFile"`
	ConfigFlag  string   `json:"configFlag"`
}

func DefaultLayout() Layout {
	return Layout{
		Interpreter: "python",
		ClientDir:   "client",
		Script:      []string{"src", "main.py"},
		ConfigFile:  "config.json",
		ConfigFlag:  "--configPath",
	}
}

// ClientPath returns the working directory of the client for a launcher
// located in dir.
func (l Layout) ClientPath(dir string) string {
	return filepath.Join(dir, l.ClientDir)
}

func (l Layout) ScriptPath(dir string) string {
	elems := append([]string{l.ClientPath(dir)}, l.Script...)
	return filepath.Join(elems...)
}

func (l Layout) ConfigPath(dir string) string {
	return filepath.Join(dir, l.ConfigFile)
}

/////////////////////////////////////////////////////////////////////
// Paths & command
/////////////////////////////////////////////////////////////////////

// Paths holds the values computed for a single launch.
type Paths struct {
	SelfDir   string `json:"selfDir"`
	ClientDir string `json:"clientDir"`
	Script    string `json:"script"`
	Config    string `json:"config"`
}

// Resolve computes the client paths for a launcher located in dir. The
// config path is forwarded untouched.
func (l Layout) Resolve(dir, configPath string) Paths {
	return Paths{
		SelfDir:   dir,
		ClientDir: l.ClientPath(dir),
		Script:    l.ScriptPath(dir),
		Config:    configPath,
	}
}

// Command is the process creation request handed to a Spawner.
type Command struct {
	Path       string
	Args       []string
	Dir        string
	CmdLine    string
	HideWindow bool
}

func (l Layout) Command(p Paths) Command {
	return Command{
		Path:       l.Interpreter,
		Args:       []string{p.Script, l.ConfigFlag, p.Config},
		Dir:        p.ClientDir,
		CmdLine:    CommandLine(l.Interpreter, p.Script, l.ConfigFlag, p.Config),
		HideWindow: true,
	}
}

// CommandLine formats `"<interpreter>" "<script>" <flag> "<config>"`.
func CommandLine(interpreter, script, flag, configPath string) string {
	return strings.Join([]string{
		quote(interpreter),
		quote(script),
		flag,
		quote(configPath),
	}, " ")
}

func quote(s string) string {
	return `"` + s + `"`
}
