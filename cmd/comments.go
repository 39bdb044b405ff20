package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/format"
	"ripple-cli/term"
)

var commentsCmd = &cobra.Command{
	Use:     "comments [post-id]",
	Aliases: []string{"cms"},
	Short:   "List comments on a post",
	Args:    cobra.ExactArgs(1),
	Run:     comments,
}

func init() {
	RootCmd.AddCommand(commentsCmd)
}

func comments(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	blogId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	term.StartSpinner("")
	list, apiErr := api.Client.ListCommentsByBlog(blogId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if len(list) == 0 {
		fmt.Println("No comments yet.")
		term.PrintCmds("", "comment")
		return
	}

	for _, comment := range list {
		who := "someone"
		if comment.User != nil {
			who = comment.User.FullName()
		}
		edited := ""
		if comment.UpdatedAt != nil {
			edited = " (edited)"
		}
		fmt.Printf("#%d %s %s%s\n", comment.Id,
			color.New(color.Bold).Sprint(who),
			color.New(color.Faint).Sprint(format.Time(comment.CreatedAt)),
			edited)
		fmt.Printf("  %s\n", comment.Content)
	}
}
