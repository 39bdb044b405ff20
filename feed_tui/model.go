package feedtui

import (
	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	shared "ripple-shared"

	"ripple-cli/term"
	"ripple-cli/ui"
)

const feedPageSize = 8

type feedUIModel struct {
	self   *shared.User
	keymap keymap

	blogs   []*shared.Blog
	likes   map[int64]*ui.Toggle
	pending map[int64]ui.ToggleRequest
	cursor  int
	offset  int

	// feedGen scopes feed responses to the reload that requested them;
	// responses from an earlier reload are dropped
	feedGen uint64

	suggestions    *ui.SuggestionList
	sidebarFocused bool
	sidebarCursor  int

	searching   bool
	searchInput string
	searchSeq   int

	unreadCount int

	loading bool
	spinner spinner.Model

	width  int
	height int

	selectedBlogId int64

	err    error
	apiErr *shared.ApiError
}

type keymap = struct {
	up,
	down,
	like,
	open,
	reload,
	tab,
	search,
	more,
	enter,
	escape,
	quit bubbleKey.Binding
}

func initialModel(self *shared.User) *feedUIModel {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(term.AccentANSI))

	return &feedUIModel{
		self:    self,
		likes:   make(map[int64]*ui.Toggle),
		pending: make(map[int64]ui.ToggleRequest),
		loading: true,
		spinner: s,
		keymap: keymap{
			up: bubbleKey.NewBinding(
				bubbleKey.WithKeys("up", "k"),
				bubbleKey.WithHelp("k", "up"),
			),

			down: bubbleKey.NewBinding(
				bubbleKey.WithKeys("down", "j"),
				bubbleKey.WithHelp("j", "down"),
			),

			like: bubbleKey.NewBinding(
				bubbleKey.WithKeys("l"),
				bubbleKey.WithHelp("l", "like"),
			),

			open: bubbleKey.NewBinding(
				bubbleKey.WithKeys("o"),
				bubbleKey.WithHelp("o", "open"),
			),

			reload: bubbleKey.NewBinding(
				bubbleKey.WithKeys("r"),
				bubbleKey.WithHelp("r", "reload"),
			),

			tab: bubbleKey.NewBinding(
				bubbleKey.WithKeys("tab"),
				bubbleKey.WithHelp("tab", "switch pane"),
			),

			search: bubbleKey.NewBinding(
				bubbleKey.WithKeys("/"),
				bubbleKey.WithHelp("/", "search people"),
			),

			more: bubbleKey.NewBinding(
				bubbleKey.WithKeys("m"),
				bubbleKey.WithHelp("m", "more suggestions"),
			),

			enter: bubbleKey.NewBinding(
				bubbleKey.WithKeys("enter"),
				bubbleKey.WithHelp("enter", "follow"),
			),

			escape: bubbleKey.NewBinding(
				bubbleKey.WithKeys("esc"),
				bubbleKey.WithHelp("esc", "back"),
			),

			quit: bubbleKey.NewBinding(
				bubbleKey.WithKeys("q", "ctrl+c"),
				bubbleKey.WithHelp("q", "quit"),
			),
		},
	}
}

func (m feedUIModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadFeed(),
		loadSidebar(m.self.UserId),
		fetchUnreadCount(),
		pollTick(),
	)
}

func (m *feedUIModel) selectedBlog() *shared.Blog {
	if m.cursor < 0 || m.cursor >= len(m.blogs) {
		return nil
	}
	return m.blogs[m.cursor]
}

func (m *feedUIModel) likeState(blog *shared.Blog) *ui.Toggle {
	t, ok := m.likes[blog.Id]
	if !ok {
		t = &ui.Toggle{Count: blog.LikeCount}
		m.likes[blog.Id] = t
	}
	return t
}
