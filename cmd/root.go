package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "runclient",
	Short: "runclient starts the client script shipped next to it",
	Long: `runclient starts the client script shipped next to it.

It runs client/src/main.py from the directory containing this executable with the
python interpreter, passes config.json (from the same directory) as --configPath and
returns immediately. The client runs detached, without a console window.`,
	// Arguments and unknown flags are ignored, a file dropped on the
	// executable must still start the client.
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	RunE:               runLaunch,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug mode")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
