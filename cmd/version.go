package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/cmdpal/pkg/settings"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print cmdpal version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
		return nil
	},
}

func cliVersionString() string {
	info := settings.VersionInformation
	s := fmt.Sprintf("%s %s (go %s)", settings.CliBinaryName, info.BuildVersion, runtime.Version())
	if info.Commit != "" && info.Commit != "unknown" {
		s += fmt.Sprintf(" commit %s", info.Commit)
	}
	return s
}
