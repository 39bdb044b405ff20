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

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Ripple account",
	Args:  cobra.NoArgs,
	Run:   register,
}

func init() {
	RootCmd.AddCommand(registerCmd)
}

func register(cmd *cobra.Command, args []string) {
	auth.MustRequireGuest()

	firstName, err := term.GetRequiredUserStringInput("First name:")
	if err != nil {
		term.OutputErrorAndExit("Error getting first name: %v", err)
	}

	lastName, err := term.GetUserStringInput("Last name:")
	if err != nil {
		term.OutputErrorAndExit("Error getting last name: %v", err)
	}

	userName, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		term.OutputErrorAndExit("Error getting username: %v", err)
	}

	email, err := term.GetRequiredUserStringInput("Email:")
	if err != nil {
		term.OutputErrorAndExit("Error getting email: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		term.OutputErrorAndExit("Error getting password: %v", err)
	}

	term.StartSpinner("")
	res, apiErr := api.Client.Register(shared.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		UserName:  userName,
		Email:     email,
		Password:  password,
	})
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error creating account: %s", apiErr.Msg)
	}

	if err := auth.SetSession(res.User, res.Token, api.GetApiHost()); err != nil {
		term.OutputErrorAndExit("Error storing session: %v", err)
	}

	fmt.Printf("🎉 Welcome to Ripple, %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(res.User.FullName()))
	term.PrintCmds("", "feed", "new", "follow")
}
