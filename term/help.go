package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var CmdDesc = map[string][2]string{
	"sign-in":       {"", "sign in to an existing account"},
	"register":      {"", "create a new account"},
	"sign-out":      {"", "sign out and clear the stored session"},
	"whoami":        {"", "show the signed-in user"},
	"feed":          {"f", "browse the feed of people you follow"},
	"new":           {"n", "publish a new post, optionally with media"},
	"show":          {"sh", "show a post with its media and comments"},
	"edit":          {"e", "edit one of your posts"},
	"delete":        {"del", "delete one of your posts"},
	"comment":       {"cm", "comment on a post"},
	"comments":      {"cms", "list comments on a post"},
	"like":          {"", "like or unlike a post"},
	"follow":        {"", "follow a user"},
	"unfollow":      {"", "unfollow a user"},
	"profile":       {"pr", "show a user profile and their posts"},
	"notifications": {"notifs", "list notifications and unread count"},
	"report":        {"", "report a post"},
	"dashboard":     {"dash", "open the admin dashboard (admins only)"},
}

func PrintCmds(prefix string, cmds ...string) {
	printCmds(os.Stderr, prefix, []color.Attribute{color.Bold, color.FgHiWhite, color.BgCyan}, cmds...)
}

func printCmds(w io.Writer, prefix string, colors []color.Attribute, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			if strings.Contains(cmd, alias) {
				cmd = strings.Replace(cmd, alias, fmt.Sprintf("(%s)", alias), 1)
			} else {
				cmd = fmt.Sprintf("%s (%s)", cmd, alias)
			}
		}
		styled := color.New(colors...).Sprintf(" ripple %s ", cmd)

		fmt.Fprintf(w, "%s%s 👉 %s\n", prefix, styled, desc)
	}
}

// PrintCustomHelp prints the top-level help output.
func PrintCustomHelp() {
	builder := &strings.Builder{}

	color.New(color.Bold, color.BgGreen).Fprintln(builder, " Usage ")
	color.New(color.Bold).Fprintln(builder, "  ripple [command] [flags]")
	fmt.Fprintln(builder)

	color.New(color.Bold, color.BgGreen).Fprintln(builder, " Help ")
	color.New(color.Bold).Fprintln(builder, "  ripple help")
	color.New(color.Bold).Fprintln(builder, "  ripple [command] --help")
	fmt.Fprintln(builder)

	color.New(color.Bold, color.BgMagenta).Fprintln(builder, " Account ")
	printCmds(builder, " ", []color.Attribute{color.Bold}, "sign-in", "register", "whoami", "sign-out")
	fmt.Fprintln(builder)

	color.New(color.Bold, color.BgBlue).Fprintln(builder, " Posts ")
	printCmds(builder, " ", []color.Attribute{color.Bold}, "feed", "new", "show", "edit", "delete")
	fmt.Fprintln(builder)

	color.New(color.Bold, color.BgBlue).Fprintln(builder, " Social ")
	printCmds(builder, " ", []color.Attribute{color.Bold}, "comment", "comments", "like", "follow", "unfollow", "profile", "report")
	fmt.Fprintln(builder)

	color.New(color.Bold, color.BgBlue).Fprintln(builder, " Notifications ")
	printCmds(builder, " ", []color.Attribute{color.Bold}, "notifications")
	fmt.Fprintln(builder)

	color.New(color.Bold, color.BgBlue).Fprintln(builder, " Admin ")
	printCmds(builder, " ", []color.Attribute{color.Bold}, "dashboard")

	fmt.Print(builder.String())
}
