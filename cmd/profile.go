package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	shared "ripple-shared"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/format"
	"ripple-cli/term"
)

var profileEdit bool
var profileDeleteAccount bool

var profileCmd = &cobra.Command{
	Use:     "profile [user-id or @username]",
	Aliases: []string{"pr"},
	Short:   "Show a user profile and their posts",
	Args:    cobra.MaximumNArgs(1),
	Run:     profile,
}

func init() {
	RootCmd.AddCommand(profileCmd)

	profileCmd.Flags().BoolVar(&profileEdit, "edit", false, "Edit your profile")
	profileCmd.Flags().BoolVar(&profileDeleteAccount, "delete-account", false, "Permanently delete your account")
}

func profile(cmd *cobra.Command, args []string) {
	self := auth.MustGetUser()

	if profileEdit {
		editProfile(self)
		return
	}

	if profileDeleteAccount {
		deleteAccount(self)
		return
	}

	user := self
	if len(args) > 0 {
		user = resolveUserArg(args[0])
	}

	term.StartSpinner("")

	errCh := make(chan *shared.ApiError, 2)
	var counts *shared.FollowCounts
	var blogs []*shared.Blog

	go func() {
		res, apiErr := api.Client.GetFollowCounts(user.UserId)
		counts = res
		errCh <- apiErr
	}()

	go func() {
		res, apiErr := api.Client.ListBlogsByUser(user.UserId)
		blogs = res
		errCh <- apiErr
	}()

	var apiErr *shared.ApiError
	for i := 0; i < 2; i++ {
		if e := <-errCh; e != nil {
			apiErr = e
		}
	}

	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Println(color.New(color.Bold, term.ColorHiCyan).Sprint(user.FullName()), color.New(color.Faint).Sprint("@"+user.UserName))
	fmt.Printf("%d following · %d followers · joined %s\n",
		counts.Following, counts.Followers, format.Time(user.CreatedAt))
	fmt.Println(term.GetDivisionLine())

	if len(blogs) == 0 {
		fmt.Println("No posts yet.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Title", "Likes", "Comments", "Posted"})

	for _, blog := range blogs {
		table.Append([]string{
			strconv.FormatInt(blog.Id, 10),
			blog.Title,
			strconv.Itoa(blog.LikeCount),
			strconv.Itoa(blog.CommentCount),
			format.Time(blog.CreatedAt),
		})
	}

	table.Render()
}

func editProfile(self *shared.User) {
	req := shared.UpdateUserRequest{}
	var err error

	req.FirstName, err = term.GetUserStringInputWithDefault("First name:", self.FirstName)
	if err != nil {
		term.OutputErrorAndExit("Error getting first name: %v", err)
	}

	req.LastName, err = term.GetUserStringInputWithDefault("Last name:", self.LastName)
	if err != nil {
		term.OutputErrorAndExit("Error getting last name: %v", err)
	}

	req.UserName, err = term.GetUserStringInputWithDefault("Username:", self.UserName)
	if err != nil {
		term.OutputErrorAndExit("Error getting username: %v", err)
	}

	req.Email, err = term.GetUserStringInputWithDefault("Email:", self.Email)
	if err != nil {
		term.OutputErrorAndExit("Error getting email: %v", err)
	}

	req.Password, err = term.GetUserStringInput("New password (leave empty to keep):")
	if err != nil {
		term.OutputErrorAndExit("Error getting password: %v", err)
	}

	term.StartSpinner("")
	updated, apiErr := api.Client.UpdateUser(self.UserId, req)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if err := auth.SetCachedUser(updated); err != nil {
		term.OutputErrorAndExit("Error caching account: %v", err)
	}

	fmt.Println("✅ Profile updated")
}

func deleteAccount(self *shared.User) {
	confirmed, err := term.ConfirmYesNo("Permanently delete @%s and all your posts?", self.UserName)
	if err != nil {
		term.OutputErrorAndExit("Error getting confirmation: %v", err)
	}
	if !confirmed {
		fmt.Println("Cancelled.")
		return
	}

	term.StartSpinner("")
	apiErr := api.Client.DeleteUser(self.UserId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if err := auth.ClearSession(); err != nil {
		term.OutputErrorAndExit("Error clearing session: %v", err)
	}

	fmt.Println("Your account has been deleted. 👋")
}
