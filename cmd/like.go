package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/term"
)

var likeCmd = &cobra.Command{
	Use:   "like [post-id]",
	Short: "Like or unlike a post",
	Args:  cobra.ExactArgs(1),
	Run:   like,
}

func init() {
	RootCmd.AddCommand(likeCmd)
}

func like(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	blogId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	term.StartSpinner("")

	status, apiErr := api.Client.GetLikeStatus(blogId)
	if apiErr != nil {
		term.StopSpinner()
		term.HandleApiError(apiErr)
	}

	if status.Liked {
		apiErr = api.Client.Unlike(blogId)
	} else {
		apiErr = api.Client.Like(blogId)
	}
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if status.Liked {
		fmt.Printf("♡ Unliked post #%d (%d likes)\n", blogId, status.LikeCount-1)
	} else {
		fmt.Printf("%s Liked post #%d (%d likes)\n",
			color.New(term.ColorHiRed).Sprint("♥"), blogId, status.LikeCount+1)
	}
}
