package feedtui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	shared "ripple-shared"

	"ripple-cli/format"
	"ripple-cli/term"
)

var borderColor = lipgloss.Color("#444")
var helpTextColor = lipgloss.Color("#ddd")
var dimTextColor = lipgloss.Color("#888")

const sidebarWidth = 32

func (m *feedUIModel) View() string {
	if m.loading && len(m.blogs) == 0 {
		return "\n " + m.spinner.View() + " Loading your feed..."
	}

	views := []string{
		m.renderHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderFeed(), m.renderSidebar()),
		m.renderHelp(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func (m *feedUIModel) renderHeader() string {
	title := color.New(color.Bold, term.ColorHiCyan).Sprint(" Ripple")

	bell := "🔔"
	if m.unreadCount > 0 {
		bell = color.New(color.Bold, term.ColorHiRed).Sprintf("🔔 %d", m.unreadCount)
	}

	who := color.New(term.ColorHiGreen).Sprint(m.self.FullName())

	right := fmt.Sprintf("%s  %s ", bell, who)
	padding := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	style := lipgloss.NewStyle().Width(m.width).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(borderColor)
	return style.Render(title + strings.Repeat(" ", padding) + right)
}

func (m *feedUIModel) renderFeed() string {
	width := m.width - sidebarWidth
	if width < 40 {
		width = m.width
	}
	style := lipgloss.NewStyle().Width(width).Padding(0, 1)

	if len(m.blogs) == 0 {
		empty := "Nothing here yet. Follow some people to fill your feed."
		return style.Render("\n" + color.New(color.FgWhite).Sprint(empty))
	}

	var rows []string
	end := min(m.offset+feedPageSize, len(m.blogs))
	for i := m.offset; i < end; i++ {
		rows = append(rows, m.renderBlogRow(i, width-2))
	}

	if end < len(m.blogs) {
		rows = append(rows, lipgloss.NewStyle().Foreground(dimTextColor).Render(
			fmt.Sprintf("  … %d more", len(m.blogs)-end)))
	}

	return style.Render(strings.Join(rows, "\n"))
}

func (m *feedUIModel) renderBlogRow(i, width int) string {
	blog := m.blogs[i]
	t := m.likeState(blog)

	cursor := "  "
	titleColor := color.New(color.Bold)
	if i == m.cursor && !m.sidebarFocused {
		cursor = color.New(term.ColorHiCyan, color.Bold).Sprint("> ")
		titleColor = color.New(color.Bold, term.ColorHiCyan)
	}

	heart := "♡"
	if t.On {
		heart = color.New(term.ColorHiRed).Sprint("♥")
	}

	title := blog.Title
	if lipgloss.Width(title) > width-20 && width > 24 {
		title = string([]rune(title)[:width-24]) + "…"
	}

	meta := lipgloss.NewStyle().Foreground(dimTextColor).Render(fmt.Sprintf(
		"%s · %s · %s %d · 💬 %d",
		blog.AuthorName(),
		format.Time(blog.CreatedAt),
		heart, t.Count,
		blog.CommentCount,
	))

	return cursor + titleColor.Sprint(title) + "\n    " + meta
}

func (m *feedUIModel) renderSidebar() string {
	if m.width < 80 || m.suggestions == nil {
		return ""
	}

	style := lipgloss.NewStyle().
		Width(sidebarWidth).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(borderColor)

	head := color.New(color.Bold).Sprint("Who to follow")

	var search string
	if m.searching {
		search = color.New(term.ColorHiYellow).Sprint("🔎 " + m.searchInput + "▌")
	} else if m.suggestions.Search() != "" {
		search = lipgloss.NewStyle().Foreground(dimTextColor).Render("🔎 " + m.suggestions.Search())
	}

	rows := []string{head}
	if search != "" {
		rows = append(rows, search)
	}
	rows = append(rows, "")

	displayed := m.suggestions.Displayed()
	if len(displayed) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(dimTextColor).Render("No one to suggest"))
	}

	for i, u := range displayed {
		rows = append(rows, m.renderSuggestionRow(i, u))
	}

	if !m.suggestions.EndReached() {
		rows = append(rows, "", lipgloss.NewStyle().Foreground(dimTextColor).Render("(m) show more"))
	}

	return style.Render(strings.Join(rows, "\n"))
}

func (m *feedUIModel) renderSuggestionRow(i int, u shared.User) string {
	cursor := "  "
	name := u.FullName()
	if i == m.sidebarCursor && m.sidebarFocused && !m.searching {
		cursor = color.New(term.ColorHiCyan, color.Bold).Sprint("> ")
		name = color.New(term.ColorHiCyan).Sprint(name)
	}
	handle := lipgloss.NewStyle().Foreground(dimTextColor).Render("@" + u.UserName)
	return cursor + name + " " + handle
}

func (m *feedUIModel) renderHelp() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Foreground(helpTextColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(borderColor)

	if m.searching {
		return style.Render(" type to search • (enter) apply • (esc) cancel")
	}

	s := " (j/k) move • (l) like • (o) open • (r) reload • (tab) sidebar"
	if m.sidebarFocused {
		s = " (j/k) move • (enter) follow • (m) more • (/) search • (tab) feed"
	}
	s += " • (q)uit"

	return style.Render(s)
}
