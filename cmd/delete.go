package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/lib"
	"ripple-cli/term"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [post-id]",
	Aliases: []string{"del"},
	Short:   "Delete one of your posts",
	Args:    cobra.ExactArgs(1),
	Run:     deletePost,
}

func init() {
	RootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func deletePost(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	blogId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if !skipConfirm {
		confirmed, err := term.ConfirmYesNo("Delete post #%d? This can't be undone.", blogId)
		if err != nil {
			term.OutputErrorAndExit("Error getting confirmation: %v", err)
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return
		}
	}

	term.StartSpinner("")
	apiErr := api.Client.DeleteBlog(blogId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	lib.FeedRefresh.Trigger()

	fmt.Printf("🗑️  Deleted post #%d\n", blogId)
}
