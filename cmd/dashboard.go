package cmd

import (
	"github.com/spf13/cobra"

	dashboardtui "ripple-cli/dashboard_tui"

	"ripple-cli/auth"
	"ripple-cli/term"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the admin dashboard (admins only)",
	Args:    cobra.NoArgs,
	Run:     dashboard,
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

func dashboard(cmd *cobra.Command, args []string) {
	admin := auth.MustResolveAdmin()

	apiErr, err := dashboardtui.StartDashboardUI(admin)
	if err != nil {
		term.OutputErrorAndExit("Error showing dashboard: %v", err)
	}
	if apiErr != nil {
		term.HandleApiError(apiErr)
	}
}
