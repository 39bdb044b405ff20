package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	shared "ripple-shared"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/format"
	"ripple-cli/lib"
	"ripple-cli/term"
)

var showCmd = &cobra.Command{
	Use:     "show [post-id]",
	Aliases: []string{"sh"},
	Short:   "Show a post with its media and comments",
	Args:    cobra.ExactArgs(1),
	Run:     show,
}

func init() {
	RootCmd.AddCommand(showCmd)
}

func show(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	blogId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	showBlog(blogId)
}

func showBlog(blogId int64) {
	term.StartSpinner("")

	errCh := make(chan *shared.ApiError, 3)
	var blog *shared.Blog
	var comments []*shared.Comment
	var likeStatus *shared.LikeStatus

	go func() {
		res, apiErr := api.Client.GetBlog(blogId)
		blog = res
		errCh <- apiErr
	}()

	go func() {
		res, apiErr := api.Client.ListCommentsByBlog(blogId)
		comments = res
		errCh <- apiErr
	}()

	go func() {
		res, apiErr := api.Client.GetLikeStatus(blogId)
		likeStatus = res
		errCh <- apiErr
	}()

	var apiErr *shared.ApiError
	for i := 0; i < 3; i++ {
		if e := <-errCh; e != nil {
			apiErr = e
		}
	}

	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Println(color.New(color.Bold, term.ColorHiCyan).Sprint(blog.Title))
	fmt.Println(color.New(color.Faint).Sprintf("%s · %s", blog.AuthorName(), format.Time(blog.CreatedAt)))
	fmt.Println(term.GetDivisionLine())

	md, err := term.GetMarkdown(blog.Content)
	if err != nil {
		fmt.Println(blog.Content)
	} else {
		fmt.Print(md)
	}

	if len(blog.MediaFiles) > 0 {
		fmt.Println(term.GetDivisionLine())
		for _, media := range blog.MediaFiles {
			fmt.Printf("📎 %s\n", lib.NormalizeMediaURL(media.Url))
		}
	}

	fmt.Println(term.GetDivisionLine())

	heart := "♡"
	if likeStatus.Liked {
		heart = color.New(term.ColorHiRed).Sprint("♥")
	}
	fmt.Printf("%s %d · 💬 %d\n",
		heart, likeStatus.LikeCount, len(comments))

	if len(comments) > 0 {
		fmt.Println()
		for _, comment := range comments {
			who := "someone"
			if comment.User != nil {
				who = comment.User.FullName()
			}
			fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(who), color.New(color.Faint).Sprint(format.Time(comment.CreatedAt)))
			fmt.Printf("  %s\n", comment.Content)
		}
	}

	term.PrintCmds("", "like", "comment", "report")
}
