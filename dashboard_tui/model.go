package dashboardtui

import (
	"strings"

	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	shared "ripple-shared"

	"ripple-cli/term"
	"ripple-cli/ui"
)

type dashboardTab int

const (
	tabUsers dashboardTab = iota
	tabPosts
	tabReports
)

var tabLabels = []string{"Users", "Posts", "Reports"}

const dashboardPageSize = 12

type dashboardUIModel struct {
	self   *shared.User
	keymap keymap

	tab    dashboardTab
	cursor int
	offset int

	users          []*shared.User
	posts          []*shared.Blog
	reports        []*shared.AdminReportItem
	followerCounts map[int64]int
	postCounts     map[int64]int

	// superAdminId is the admin with the lowest id; their role can't be
	// changed and they can't be banned or deleted
	superAdminId int64

	searching   bool
	searchInput string
	search      string

	reasonFilter shared.ReportReason

	confirm ui.ConfirmFlow
	status  string

	loading bool
	spinner spinner.Model

	width  int
	height int

	err    error
	apiErr *shared.ApiError
}

type keymap = struct {
	up,
	down,
	nextTab,
	prevTab,
	search,
	filter,
	toggleRole,
	toggleStatus,
	del,
	dismiss,
	yes,
	no,
	retry,
	reload,
	quit bubbleKey.Binding
}

func initialModel(self *shared.User) *dashboardUIModel {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(term.AccentANSI))

	return &dashboardUIModel{
		self:           self,
		followerCounts: make(map[int64]int),
		postCounts:     make(map[int64]int),
		loading:        true,
		spinner:        s,
		keymap: keymap{
			up: bubbleKey.NewBinding(
				bubbleKey.WithKeys("up", "k"),
				bubbleKey.WithHelp("k", "up"),
			),

			down: bubbleKey.NewBinding(
				bubbleKey.WithKeys("down", "j"),
				bubbleKey.WithHelp("j", "down"),
			),

			nextTab: bubbleKey.NewBinding(
				bubbleKey.WithKeys("tab", "right"),
				bubbleKey.WithHelp("tab", "next tab"),
			),

			prevTab: bubbleKey.NewBinding(
				bubbleKey.WithKeys("shift+tab", "left"),
				bubbleKey.WithHelp("shift+tab", "prev tab"),
			),

			search: bubbleKey.NewBinding(
				bubbleKey.WithKeys("/"),
				bubbleKey.WithHelp("/", "search"),
			),

			filter: bubbleKey.NewBinding(
				bubbleKey.WithKeys("f"),
				bubbleKey.WithHelp("f", "filter reason"),
			),

			toggleRole: bubbleKey.NewBinding(
				bubbleKey.WithKeys("a"),
				bubbleKey.WithHelp("a", "toggle admin"),
			),

			toggleStatus: bubbleKey.NewBinding(
				bubbleKey.WithKeys("b"),
				bubbleKey.WithHelp("b", "ban/unban · hide/unhide"),
			),

			del: bubbleKey.NewBinding(
				bubbleKey.WithKeys("d"),
				bubbleKey.WithHelp("d", "delete"),
			),

			dismiss: bubbleKey.NewBinding(
				bubbleKey.WithKeys("x"),
				bubbleKey.WithHelp("x", "dismiss report"),
			),

			yes: bubbleKey.NewBinding(
				bubbleKey.WithKeys("y", "enter"),
				bubbleKey.WithHelp("y", "confirm"),
			),

			no: bubbleKey.NewBinding(
				bubbleKey.WithKeys("n", "esc"),
				bubbleKey.WithHelp("n", "cancel"),
			),

			retry: bubbleKey.NewBinding(
				bubbleKey.WithKeys("r"),
				bubbleKey.WithHelp("r", "retry"),
			),

			reload: bubbleKey.NewBinding(
				bubbleKey.WithKeys("R"),
				bubbleKey.WithHelp("R", "reload"),
			),

			quit: bubbleKey.NewBinding(
				bubbleKey.WithKeys("q", "ctrl+c"),
				bubbleKey.WithHelp("q", "quit"),
			),
		},
	}
}

func (m dashboardUIModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadDashboard())
}

// recompute derives super-admin and per-user post counts from loaded data.
func (m *dashboardUIModel) recompute() {
	m.superAdminId = 0
	for _, u := range m.users {
		if !u.IsAdmin() {
			continue
		}
		if m.superAdminId == 0 || u.UserId < m.superAdminId {
			m.superAdminId = u.UserId
		}
	}

	m.postCounts = make(map[int64]int, len(m.users))
	for _, b := range m.posts {
		m.postCounts[b.AuthorId()]++
	}
}

func (m *dashboardUIModel) filteredUsers() []*shared.User {
	if m.search == "" {
		return m.users
	}
	needle := strings.ToLower(m.search)
	var out []*shared.User
	for _, u := range m.users {
		if strings.Contains(strings.ToLower(u.FullName()), needle) ||
			strings.Contains(strings.ToLower(u.UserName), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}

func (m *dashboardUIModel) filteredPosts() []*shared.Blog {
	if m.search == "" {
		return m.posts
	}
	needle := strings.ToLower(m.search)
	var out []*shared.Blog
	for _, b := range m.posts {
		if strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.AuthorName()), needle) {
			out = append(out, b)
		}
	}
	return out
}

func (m *dashboardUIModel) filteredReports() []*shared.AdminReportItem {
	var out []*shared.AdminReportItem
	needle := strings.ToLower(m.search)
	for _, r := range m.reports {
		if m.reasonFilter != "" && r.Reason != m.reasonFilter {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.ReportedUserName), needle) &&
			!strings.Contains(strings.ToLower(r.BlogTitle), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (m *dashboardUIModel) rowCount() int {
	switch m.tab {
	case tabUsers:
		return len(m.filteredUsers())
	case tabPosts:
		return len(m.filteredPosts())
	default:
		return len(m.filteredReports())
	}
}
