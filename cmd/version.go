package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ripple-cli/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the Ripple CLI",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
