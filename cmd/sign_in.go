package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	shared "ripple-shared"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/term"
)

var signInCmd = &cobra.Command{
	Use:   "sign-in",
	Short: "Sign in to a Ripple account",
	Args:  cobra.NoArgs,
	Run:   signIn,
}

func init() {
	RootCmd.AddCommand(signInCmd)

	signInCmd.Flags().String("email", "", "Email or username to sign in with")
	signInCmd.Flags().String("host", "", "API host to sign in against")
}

func signIn(cmd *cobra.Command, args []string) {
	auth.MustRequireGuest()

	emailOrUsername, err := cmd.Flags().GetString("email")
	if err != nil {
		term.OutputErrorAndExit("Error getting email: %v", err)
	}
	host, err := cmd.Flags().GetString("host")
	if err != nil {
		term.OutputErrorAndExit("Error getting host: %v", err)
	}

	if emailOrUsername == "" {
		emailOrUsername, err = term.GetRequiredUserStringInput("Email or username:")
		if err != nil {
			term.OutputErrorAndExit("Error getting email: %v", err)
		}
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		term.OutputErrorAndExit("Error getting password: %v", err)
	}

	term.StartSpinner("")
	res, apiErr := api.Client.SignIn(shared.LoginRequest{
		EmailOrUsername: emailOrUsername,
		Password:        password,
	})
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error signing in: %s", apiErr.Msg)
	}

	if host == "" {
		host = api.GetApiHost()
	}

	if err := auth.SetSession(res.User, res.Token, host); err != nil {
		term.OutputErrorAndExit("Error storing session: %v", err)
	}

	fmt.Printf("✅ Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint("@"+res.User.UserName))
	term.PrintCmds("", "feed", "new", "profile")
}
