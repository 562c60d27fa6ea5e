package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"limeal.fr/runclient/pkg/launcher"
)

var pathsJSON bool

// pathsReport is the --json output of the paths command.
type pathsReport struct {
	Layout      launcher.Layout `json:"layout"`
	Paths       launcher.Paths  `json:"paths"`
	CommandLine string          `json:"commandLine"`
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the resolved client paths without starting it",
	Long: `Print the resolved client paths without starting it.

The output shows the launcher directory, the client working directory, the script,
the config path and the exact command line the client would be started with.
With --json the layout, the paths and the command line are printed as a JSON object.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := setupLauncher()

		paths, err := l.Paths(configPath)
		if err != nil {
			return err
		}
		command := l.Layout().Command(paths)

		out := cmd.OutOrStdout()
		if pathsJSON {
			bytes, err := json.MarshalIndent(pathsReport{
				Layout:      l.Layout(),
				Paths:       paths,
				CommandLine: command.CmdLine,
			}, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to encode paths")
			}
			fmt.Fprintln(out, string(bytes))
			return nil
		}

		fmt.Fprintln(out, "[*] Client")
		fmt.Fprintln(out, "- Launcher directory:", paths.SelfDir)
		fmt.Fprintln(out, "- Client directory:", paths.ClientDir)
		fmt.Fprintln(out, "- Script:", paths.Script)
		fmt.Fprintln(out, "- Config:", paths.Config)
		fmt.Fprintln(out, "- Command:", command.CmdLine)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
	pathsCmd.Flags().BoolVar(&pathsJSON, "json", false, "Print the paths as JSON")
}
