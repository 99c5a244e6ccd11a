package cmd

import (
	"fmt"

	"devserver/core/launcher"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", launcher.Name, version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
