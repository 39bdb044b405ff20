package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/format"
	"ripple-cli/lib"
	"ripple-cli/term"
	"ripple-cli/ui"

	shared "ripple-shared"
)

var notifsUnreadOnly bool
var notifsWatch bool
var notifsMarkRead int64
var notifsDelete int64
var notifsOpen int64

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notifs"},
	Short:   "List notifications and unread count",
	Args:    cobra.NoArgs,
	Run:     notifications,
}

func init() {
	RootCmd.AddCommand(notificationsCmd)

	notificationsCmd.Flags().BoolVar(&notifsUnreadOnly, "unread", false, "Only show unread notifications")
	notificationsCmd.Flags().BoolVar(&notifsWatch, "watch", false, "Keep polling the unread count")
	notificationsCmd.Flags().Int64Var(&notifsMarkRead, "read", 0, "Mark a notification read by id")
	notificationsCmd.Flags().Int64Var(&notifsDelete, "rm", 0, "Delete a notification by id")
	notificationsCmd.Flags().Int64Var(&notifsOpen, "open", 0, "Open a notification's post and dismiss it")
}

func notifications(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	if notifsMarkRead != 0 {
		markNotificationRead(notifsMarkRead)
		return
	}

	if notifsDelete != 0 {
		deleteNotification(notifsDelete)
		return
	}

	if notifsOpen != 0 {
		openNotification(notifsOpen)
		return
	}

	if notifsWatch {
		watchNotifications()
		return
	}

	term.StartSpinner("")
	list, apiErr := api.Client.ListNotifications()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	flat := make([]shared.Notification, 0, len(list))
	for _, n := range list {
		flat = append(flat, *n)
	}
	notifs := ui.NewNotificationList(flat)

	shown := 0
	for _, n := range notifs.Items() {
		if notifsUnreadOnly && n.Read {
			continue
		}
		shown++

		marker := "  "
		if !n.Read {
			marker = color.New(term.ColorHiCyan, color.Bold).Sprint("● ")
		}

		fmt.Printf("%s#%d %s %s %s\n", marker, n.Id, notificationIcon(n.Type), n.Message,
			color.New(color.Faint).Sprint(format.Time(n.CreatedAt)))
	}

	if shown == 0 {
		fmt.Println("No notifications. 🎉")
		return
	}

	unread := notifs.UnreadCount()
	if unread > 0 {
		fmt.Printf("\n%d unread · mark read with --read [id]\n", unread)
	}
}

func notificationIcon(t shared.NotificationType) string {
	switch t {
	case shared.NotificationLike:
		return "♥"
	case shared.NotificationComment:
		return "💬"
	case shared.NotificationFollow:
		return "👤"
	default:
		return "🔔"
	}
}

func markNotificationRead(id int64) {
	term.StartSpinner("")
	apiErr := api.Client.MarkNotificationRead(id)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("✅ Marked notification #%d read\n", id)
}

func deleteNotification(id int64) {
	term.StartSpinner("")
	apiErr := api.Client.DeleteNotification(id)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("🗑️  Deleted notification #%d\n", id)
}

// Opening a notification dismisses it: the entry leaves the local list
// before the server confirms, and comes back in place if the delete fails.
func openNotification(id int64) {
	term.StartSpinner("")
	list, apiErr := api.Client.ListNotifications()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	flat := make([]shared.Notification, 0, len(list))
	for _, n := range list {
		flat = append(flat, *n)
	}
	notifs := ui.NewNotificationList(flat)

	removed := notifs.Remove(id)
	if removed == nil {
		term.OutputErrorAndExit("No notification #%d", id)
	}

	if apiErr := api.Client.DeleteNotification(id); apiErr != nil {
		notifs.Restore(removed)
		term.HandleApiError(apiErr)
	}

	if removed.Item.BlogId == nil {
		fmt.Printf("🗑️  Dismissed notification #%d\n", id)
		return
	}

	showBlog(*removed.Item.BlogId)
}

func watchNotifications() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("Watching for notifications every", lib.NotificationPollInterval, "· ctrl+c to stop")

	lib.StartUnreadPoll(ctx,
		func() (int, error) {
			count, apiErr := api.Client.GetUnreadNotificationCount()
			if apiErr != nil {
				return 0, fmt.Errorf("%s", apiErr.Msg)
			}
			return count, nil
		},
		func(count int) {
			term.ClearCurrentLine()
			if count == 0 {
				fmt.Print("🔔 no unread notifications\r")
			} else {
				fmt.Print(color.New(color.Bold, term.ColorHiCyan).Sprintf("🔔 %d unread %s\r",
					count, shared.Pluralize(count, "notification", "notifications")))
			}
		})

	<-sigCh
	fmt.Println()
}
