package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X limeal.fr/runclient/cmd.version=..."
var version = "master"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the runclient version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "runclient", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
