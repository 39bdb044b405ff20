package cmd

import (
	"ripple-cli/term"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   `ripple [command] [flags]`,
	Short: "Ripple: share posts and follow people from your terminal",
	Run: func(cmd *cobra.Command, args []string) {
		term.PrintCustomHelp()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		term.OutputErrorAndExit("Error executing root command: %v", err)
	}
}
