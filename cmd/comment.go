package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	shared "ripple-shared"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/term"
)

var commentCmd = &cobra.Command{
	Use:     "comment [post-id] [text]",
	Aliases: []string{"cm"},
	Short:   "Comment on a post",
	Args:    cobra.RangeArgs(1, 2),
	Run:     comment,
}

var commentEditCmd = &cobra.Command{
	Use:   "comment-edit [comment-id] [text]",
	Short: "Edit one of your comments",
	Args:  cobra.RangeArgs(1, 2),
	Run:   commentEdit,
}

var commentRmCmd = &cobra.Command{
	Use:   "comment-rm [comment-id]",
	Short: "Delete one of your comments",
	Args:  cobra.ExactArgs(1),
	Run:   commentRm,
}

func init() {
	RootCmd.AddCommand(commentCmd)
	RootCmd.AddCommand(commentEditCmd)
	RootCmd.AddCommand(commentRmCmd)
}

func comment(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	blogId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	content := commentText(args, 1)

	term.StartSpinner("")
	res, apiErr := api.Client.AddComment(blogId, shared.CreateCommentRequest{Content: content})
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("💬 Commented on post #%d (comment #%d)\n", blogId, res.Id)
}

func commentEdit(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	commentId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid comment id: %s", args[0])
	}

	content := commentText(args, 1)

	term.StartSpinner("")
	_, apiErr := api.Client.UpdateComment(commentId, shared.CreateCommentRequest{Content: content})
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("✅ Updated comment #%d\n", commentId)
}

func commentRm(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	commentId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid comment id: %s", args[0])
	}

	term.StartSpinner("")
	apiErr := api.Client.DeleteComment(commentId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("🗑️  Deleted comment #%d\n", commentId)
}

func commentText(args []string, idx int) string {
	if len(args) > idx && strings.TrimSpace(args[idx]) != "" {
		return strings.TrimSpace(args[idx])
	}

	content, err := term.GetRequiredUserStringInput("Comment:")
	if err != nil {
		term.OutputErrorAndExit("Error getting comment: %v", err)
	}
	return content
}
