package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	shared "ripple-shared"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/lib"
	"ripple-cli/term"
)

var followCmd = &cobra.Command{
	Use:   "follow [user-id or @username]",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	Run:   follow,
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow [user-id or @username]",
	Short: "Unfollow a user",
	Args:  cobra.ExactArgs(1),
	Run:   unfollow,
}

func init() {
	RootCmd.AddCommand(followCmd)
	RootCmd.AddCommand(unfollowCmd)
}

func follow(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	user := resolveUserArg(args[0])

	term.StartSpinner("")
	apiErr := api.Client.Follow(user.UserId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	lib.FeedRefresh.Trigger()

	fmt.Printf("✅ Following @%s\n", user.UserName)
	term.PrintCmds("", "feed")
}

func unfollow(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	user := resolveUserArg(args[0])

	term.StartSpinner("")
	apiErr := api.Client.Unfollow(user.UserId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	lib.FeedRefresh.Trigger()

	fmt.Printf("✅ Unfollowed @%s\n", user.UserName)
}

// resolveUserArg accepts a numeric user id or an @username and returns the
// matching user.
func resolveUserArg(arg string) *shared.User {
	if userId, err := strconv.ParseInt(arg, 10, 64); err == nil {
		term.StartSpinner("")
		user, apiErr := api.Client.GetUser(userId)
		term.StopSpinner()
		if apiErr != nil {
			term.HandleApiError(apiErr)
		}
		return user
	}

	username := strings.TrimPrefix(arg, "@")

	term.StartSpinner("")
	users, apiErr := api.Client.ListUsers()
	term.StopSpinner()
	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	for _, user := range users {
		if strings.EqualFold(user.UserName, username) {
			return user
		}
	}

	term.OutputErrorAndExit("No user named @%s", username)
	return nil
}
