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

var editTitle string
var editContent string
var editStatus string

var editCmd = &cobra.Command{
	Use:     "edit [post-id]",
	Aliases: []string{"e"},
	Short:   "Edit one of your posts",
	Args:    cobra.ExactArgs(1),
	Run:     edit,
}

func init() {
	RootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
	editCmd.Flags().StringVar(&editStatus, "status", "", "New status (active or hidden)")
}

func edit(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	blogId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	req := shared.UpdateBlogRequest{
		Title:   strings.TrimSpace(editTitle),
		Content: strings.TrimSpace(editContent),
	}

	switch strings.ToLower(editStatus) {
	case "":
	case "active":
		req.Status = shared.BlogStatusActive
	case "hidden":
		req.Status = shared.BlogStatusHidden
	default:
		term.OutputErrorAndExit("Invalid status %q (use active or hidden)", editStatus)
	}

	if req.Title == "" && req.Content == "" && req.Status == "" {
		// nothing passed via flags--fetch the post and prompt
		term.StartSpinner("")
		blog, apiErr := api.Client.GetBlog(blogId)
		term.StopSpinner()
		if apiErr != nil {
			term.HandleApiError(apiErr)
		}

		req.Title, err = term.GetUserStringInputWithDefault("Title:", blog.Title)
		if err != nil {
			term.OutputErrorAndExit("Error getting title: %v", err)
		}

		req.Content, err = term.GetUserStringInputWithDefault("Content:", blog.Content)
		if err != nil {
			term.OutputErrorAndExit("Error getting content: %v", err)
		}
	}

	if len([]rune(req.Content)) > maxPostContentLength {
		term.OutputErrorAndExit("Posts are limited to %d characters (yours is %d)", maxPostContentLength, len([]rune(req.Content)))
	}

	term.StartSpinner("")
	blog, apiErr := api.Client.UpdateBlog(blogId, req)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	lib.FeedRefresh.Trigger()

	fmt.Printf("✅ Updated %q\n", blog.Title)
}
