package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"ripple-cli/auth"
	"ripple-cli/format"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	Run:   whoami,
}

func init() {
	RootCmd.AddCommand(whoamiCmd)
}

func whoami(cmd *cobra.Command, args []string) {
	user := auth.MustGetUser()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Username", "Email", "Role", "Joined"})
	table.Append([]string{
		user.FullName(),
		"@" + user.UserName,
		user.Email,
		user.Role,
		format.Time(user.CreatedAt),
	})
	table.Render()

	fmt.Println("API host:", auth.GetHost())
}
