package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ripple-cli/auth"
	"ripple-cli/term"
)

var signOutCmd = &cobra.Command{
	Use:   "sign-out",
	Short: "Sign out and clear the stored session",
	Args:  cobra.NoArgs,
	Run:   signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)
}

func signOut(cmd *cobra.Command, args []string) {
	if !auth.IsLoggedIn() {
		fmt.Println("You're not signed in.")
		return
	}

	who := ""
	if u := auth.GetCurrentUser(); u != nil {
		who = " @" + u.UserName
	}

	if err := auth.ClearSession(); err != nil {
		term.OutputErrorAndExit("Error clearing session: %v", err)
	}

	fmt.Printf("✅ Signed out%s\n", who)
}
