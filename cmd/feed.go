package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	feedtui "ripple-cli/feed_tui"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/format"
	"ripple-cli/term"
)

var feedPlain bool

var feedCmd = &cobra.Command{
	Use:     "feed",
	Aliases: []string{"f"},
	Short:   "Browse the feed of people you follow",
	Args:    cobra.NoArgs,
	Run:     feed,
}

func init() {
	RootCmd.AddCommand(feedCmd)

	feedCmd.Flags().BoolVar(&feedPlain, "plain", false, "Print the feed as a table instead of opening the interactive view")
}

func feed(cmd *cobra.Command, args []string) {
	user := auth.MustGetUser()

	if feedPlain {
		printPlainFeed()
		return
	}

	openedId, apiErr, err := feedtui.StartFeedUI(user)
	if err != nil {
		term.OutputErrorAndExit("Error showing feed: %v", err)
	}
	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if openedId != 0 {
		showBlog(openedId)
	}
}

func printPlainFeed() {
	term.StartSpinner("")
	blogs, apiErr := api.Client.GetFeed()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if len(blogs) == 0 {
		fmt.Println("Nothing here yet. Follow some people to fill your feed.")
		term.PrintCmds("", "follow")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Title", "Author", "Likes", "Comments", "Posted"})

	for _, blog := range blogs {
		table.Append([]string{
			strconv.FormatInt(blog.Id, 10),
			blog.Title,
			blog.AuthorName(),
			strconv.Itoa(blog.LikeCount),
			strconv.Itoa(blog.CommentCount),
			format.Time(blog.CreatedAt),
		})
	}

	table.Render()
	term.PrintCmds("", "show", "like", "comment")
}
