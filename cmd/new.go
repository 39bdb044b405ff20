package cmd

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	shared "ripple-shared"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/lib"
	"ripple-cli/term"
)

const maxPostContentLength = 1000

const uploadRejectedMsg = "Only real .jpg, .png, and .mp4 files are allowed"

var newTitle string
var newContent string
var newDraft bool
var newMedia []string

var newCmd = &cobra.Command{
	Use:     "new",
	Aliases: []string{"n"},
	Short:   "Publish a new post, optionally with media",
	Args:    cobra.NoArgs,
	Run:     newPost,
}

func init() {
	RootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Post title")
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "Post content")
	newCmd.Flags().BoolVar(&newDraft, "hidden", false, "Create the post hidden instead of publishing it")
	newCmd.Flags().StringSliceVarP(&newMedia, "media", "m", nil, "Media files to attach (repeatable)")
}

func newPost(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	title := strings.TrimSpace(newTitle)
	content := strings.TrimSpace(newContent)
	var err error

	if title == "" {
		title, err = term.GetRequiredUserStringInput("Title:")
		if err != nil {
			term.OutputErrorAndExit("Error getting title: %v", err)
		}
	}

	if content == "" {
		content, err = term.GetRequiredUserStringInput("Content:")
		if err != nil {
			term.OutputErrorAndExit("Error getting content: %v", err)
		}
	}

	if len([]rune(content)) > maxPostContentLength {
		term.OutputErrorAndExit("Posts are limited to %d characters (yours is %d)", maxPostContentLength, len([]rune(content)))
	}

	req := shared.CreateBlogRequest{
		Title:   title,
		Content: content,
	}
	if newDraft {
		req.Status = shared.BlogStatusHidden
	}

	var blog *shared.Blog
	var apiErr *shared.ApiError

	if len(newMedia) > 0 {
		uploads, err := lib.LoadMediaFiles(newMedia)
		if err != nil {
			term.OutputErrorAndExit("%v", err)
		}

		term.StartSpinner("📤 Uploading...")
		blog, apiErr = api.Client.CreateBlogWithMedia(req, uploads)
		term.StopSpinner()

		// the backend sniffs file content too; a bare 400 on upload means
		// it disagreed with the extension
		if apiErr != nil && apiErr.Status == http.StatusBadRequest && !apiErr.FromServer {
			term.OutputErrorAndExit(uploadRejectedMsg)
		}
	} else {
		term.StartSpinner("")
		blog, apiErr = api.Client.CreateBlog(req)
		term.StopSpinner()
	}

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	lib.FeedRefresh.Trigger()

	fmt.Printf("✅ Published %s (#%d)\n", color.New(color.Bold).Sprintf("%q", blog.Title), blog.Id)
	if len(blog.MediaFiles) > 0 {
		fmt.Printf("   with %d %s\n", len(blog.MediaFiles), shared.Pluralize(len(blog.MediaFiles), "attachment", "attachments"))
	}
	term.PrintCmds("", "show", "feed")
}
