package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	shared "ripple-shared"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/term"
)

var reportCmd = &cobra.Command{
	Use:   "report [post-id]",
	Short: "Report a post",
	Args:  cobra.ExactArgs(1),
	Run:   report,
}

func init() {
	RootCmd.AddCommand(reportCmd)
}

func report(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	blogId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	labels := make([]string, 0, len(shared.ReportReasons))
	for _, reason := range shared.ReportReasons {
		labels = append(labels, shared.ReportReasonLabels[reason])
	}

	selected, err := term.SelectFromList("Why are you reporting this post?", labels)
	if err != nil {
		term.OutputErrorAndExit("Error getting reason: %v", err)
	}

	var reason shared.ReportReason
	for r, label := range shared.ReportReasonLabels {
		if label == selected {
			reason = r
			break
		}
	}

	details := ""
	if reason == shared.ReportReasonOther {
		details, err = term.GetRequiredUserStringInput("Tell us more:")
	} else {
		details, err = term.GetUserStringInput("Anything to add? (optional)")
	}
	if err != nil {
		term.OutputErrorAndExit("Error getting details: %v", err)
	}

	term.StartSpinner("")
	res, apiErr := api.Client.CreateReport(shared.CreateReportRequest{
		BlogId:  blogId,
		Reason:  reason,
		Details: details,
	})
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	msg := res.Message
	if msg == "" {
		msg = "Thanks. Our moderators will take a look."
	}
	fmt.Println("✅", msg)
}
