package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"limeal.fr/runclient/pkg/launcher"
)

var interpreter string
var configPath string
var strict bool // Reflect process creation failures in the exit status

// newLauncher is replaced in tests.
var newLauncher = launcher.NewLauncher

func init() {
	rootCmd.PersistentFlags().StringVarP(&interpreter, "interpreter", "i", "", "The interpreter used to run the client (default \"python\")")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "The config path passed to the client (default <launcher dir>/config.json)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Exit with a non-zero status when the client cannot be started")
}

// setupLauncher builds the launcher from the flags. The launcher directory
// is resolved later, once, by Launch or Paths.
func setupLauncher() *launcher.Launcher {
	l := newLauncher()
	if interpreter != "" {
		l.SetInterpreter(interpreter)
	}
	return l
}

func runLaunch(cmd *cobra.Command, args []string) error {
	l := setupLauncher()

	launchOptions := launcher.RunOptions{
		Stderr: cmd.ErrOrStderr(),
	}
	if debug {
		launchOptions.LogOutput = func(msg string) {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		}
	}

	err := l.Launch(configPath, launchOptions)
	if err != nil {
		if debug {
			fmt.Fprintf(cmd.ErrOrStderr(), "%+v\n", err)
		}

		// Nothing can be started without the launcher directory
		var dirErr *launcher.DirError
		if strict || errors.As(err, &dirErr) {
			return err
		}
	}
	return nil
}
