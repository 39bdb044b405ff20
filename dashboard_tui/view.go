package dashboardtui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	shared "ripple-shared"

	"ripple-cli/format"
	"ripple-cli/term"
	"ripple-cli/ui"
)

var borderColor = lipgloss.Color("#444")
var helpTextColor = lipgloss.Color("#ddd")
var dimTextColor = lipgloss.Color("#888")

func (m *dashboardUIModel) View() string {
	if m.loading && len(m.users) == 0 {
		return "\n " + m.spinner.View() + " Loading dashboard..."
	}

	if m.confirm.Phase() != ui.ConfirmIdle {
		return m.renderConfirm()
	}

	views := []string{
		m.renderTabs(),
		m.renderTable(),
		m.renderStatus(),
		m.renderHelp(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func (m *dashboardUIModel) renderTabs() string {
	var tabs []string
	for i, label := range tabLabels {
		if i == int(m.tab) {
			tabs = append(tabs, color.New(color.Bold, term.ColorHiCyan).Sprintf(" %s ", label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(dimTextColor).Render(fmt.Sprintf(" %s ", label)))
		}
	}

	line := color.New(color.Bold).Sprint(" Admin ·") + strings.Join(tabs, "·")

	if m.tab == tabReports {
		badge := fmt.Sprintf("%d open", len(m.reports))
		if m.reasonFilter != "" {
			badge += " · " + shared.ReportReasonLabels[m.reasonFilter]
		}
		line += lipgloss.NewStyle().Foreground(dimTextColor).Render("  (" + badge + ")")
	}

	if m.searching {
		line += "  " + color.New(term.ColorHiYellow).Sprint("🔎 "+m.searchInput+"▌")
	} else if m.search != "" {
		line += "  " + lipgloss.NewStyle().Foreground(dimTextColor).Render("🔎 "+m.search)
	}

	style := lipgloss.NewStyle().Width(m.width).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(borderColor)
	return style.Render(line)
}

func (m *dashboardUIModel) renderTable() string {
	switch m.tab {
	case tabUsers:
		return m.renderUsers()
	case tabPosts:
		return m.renderPosts()
	default:
		return m.renderReports()
	}
}

func (m *dashboardUIModel) renderUsers() string {
	users := m.filteredUsers()
	if len(users) == 0 {
		return m.renderEmpty("No users match.")
	}

	var rows []string
	end := min(m.offset+dashboardPageSize, len(users))
	for i := m.offset; i < end; i++ {
		u := users[i]

		role := " "
		if u.UserId == m.superAdminId {
			role = color.New(term.ColorHiMagenta, color.Bold).Sprint("★")
		} else if u.IsAdmin() {
			role = color.New(term.ColorHiMagenta).Sprint("A")
		}

		status := color.New(term.ColorHiGreen).Sprint("active")
		if u.Status == shared.UserStatusBanned {
			status = color.New(term.ColorHiRed).Sprint("banned")
		}

		meta := lipgloss.NewStyle().Foreground(dimTextColor).Render(fmt.Sprintf(
			"@%s · %s · %d posts · %d followers",
			u.UserName, u.Email, m.postCounts[u.UserId], m.followerCounts[u.UserId],
		))

		rows = append(rows, fmt.Sprintf("%s%s %s  %s  %s",
			m.cursorMark(i), role, color.New(color.Bold).Sprint(u.FullName()), status, meta))
	}

	return m.tableStyle().Render(strings.Join(rows, "\n") + m.renderOverflow(end, len(users)))
}

func (m *dashboardUIModel) renderPosts() string {
	posts := m.filteredPosts()
	if len(posts) == 0 {
		return m.renderEmpty("No posts match.")
	}

	var rows []string
	end := min(m.offset+dashboardPageSize, len(posts))
	for i := m.offset; i < end; i++ {
		b := posts[i]

		status := color.New(term.ColorHiGreen).Sprint("active")
		if b.Status == shared.BlogStatusHidden {
			status = color.New(term.ColorHiYellow).Sprint("hidden")
		}

		meta := lipgloss.NewStyle().Foreground(dimTextColor).Render(fmt.Sprintf(
			"%s · %s · ♥ %d · 💬 %d",
			b.AuthorName(), format.Time(b.CreatedAt), b.LikeCount, b.CommentCount,
		))

		rows = append(rows, fmt.Sprintf("%s%s  %s  %s",
			m.cursorMark(i), color.New(color.Bold).Sprint(b.Title), status, meta))
	}

	return m.tableStyle().Render(strings.Join(rows, "\n") + m.renderOverflow(end, len(posts)))
}

func (m *dashboardUIModel) renderReports() string {
	reports := m.filteredReports()
	if len(reports) == 0 {
		return m.renderEmpty("No open reports. 🎉")
	}

	var rows []string
	end := min(m.offset+dashboardPageSize, len(reports))
	for i := m.offset; i < end; i++ {
		r := reports[i]

		reason := color.New(term.ColorHiRed).Sprint(shared.ReportReasonLabels[r.Reason])

		meta := lipgloss.NewStyle().Foreground(dimTextColor).Render(fmt.Sprintf(
			"post %q by %s · reported by %s · %s",
			r.BlogTitle, r.ReportedUserName, r.ReporterName, format.Time(r.CreatedAt),
		))

		row := fmt.Sprintf("%s%s  %s", m.cursorMark(i), reason, meta)
		if r.Details != "" && i == m.cursor {
			row += "\n    " + lipgloss.NewStyle().Foreground(dimTextColor).Render(r.Details)
		}
		rows = append(rows, row)
	}

	return m.tableStyle().Render(strings.Join(rows, "\n") + m.renderOverflow(end, len(reports)))
}

func (m *dashboardUIModel) cursorMark(i int) string {
	if i == m.cursor {
		return color.New(term.ColorHiCyan, color.Bold).Sprint("> ")
	}
	return "  "
}

func (m *dashboardUIModel) tableStyle() lipgloss.Style {
	return lipgloss.NewStyle().Width(m.width).Padding(0, 1)
}

func (m *dashboardUIModel) renderEmpty(msg string) string {
	return m.tableStyle().Render("\n" + lipgloss.NewStyle().Foreground(dimTextColor).Render(msg))
}

func (m *dashboardUIModel) renderOverflow(end, total int) string {
	if end >= total {
		return ""
	}
	return "\n" + lipgloss.NewStyle().Foreground(dimTextColor).Render(fmt.Sprintf("  … %d more", total-end))
}

func (m *dashboardUIModel) renderConfirm() string {
	style := lipgloss.NewStyle().
		Padding(1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Width(m.width - 2)

	prompt := "⚠️  " + color.New(color.Bold).Sprint(m.confirm.Action().Describe())

	switch {
	case m.executing():
		prompt += "\n\n " + m.spinner.View() + " Working..."
	case m.confirm.Err() != "":
		prompt += "\n\n" + color.New(term.ColorHiRed, color.Bold).Sprint(m.confirm.Err())
		prompt += "\n\n" + lipgloss.NewStyle().Foreground(helpTextColor).Render("(r) retry • (n) cancel")
	default:
		prompt += "\n\n" + lipgloss.NewStyle().Foreground(helpTextColor).Render("(y) confirm • (n) cancel")
	}

	return style.Render(prompt)
}

func (m *dashboardUIModel) renderStatus() string {
	if m.status == "" {
		return ""
	}
	return lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#eee")).Render(m.status)
}

func (m *dashboardUIModel) renderHelp() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Foreground(helpTextColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(borderColor)

	var s string
	switch m.tab {
	case tabUsers:
		s = " (j/k) move • (a) toggle admin • (b) ban/unban • (d) delete • (/) search"
	case tabPosts:
		s = " (j/k) move • (b) hide/unhide • (d) delete • (/) search"
	default:
		s = " (j/k) move • (d) delete post • (x) dismiss • (f) reason • (/) search"
	}
	s += " • (tab) next • (R) reload • (q)uit"

	return style.Render(s)
}
