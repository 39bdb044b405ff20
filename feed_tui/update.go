package feedtui

import (
	"time"
	"unicode/utf8"

	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	shared "ripple-shared"

	"ripple-cli/api"
	"ripple-cli/lib"
	"ripple-cli/ui"
)

type feedLoadedMsg struct {
	gen    uint64
	blogs  []*shared.Blog
	apiErr *shared.ApiError
}

type likeStatusMsg struct {
	blogId int64
	liked  bool
	count  int
}

type likeResolvedMsg struct {
	blogId int64
	req    ui.ToggleRequest
	apiErr *shared.ApiError
}

type sidebarLoadedMsg struct {
	users       []shared.User
	followedIds []int64
	apiErr      *shared.ApiError
}

type followResolvedMsg struct {
	userId int64
	apiErr *shared.ApiError
}

type unreadCountMsg struct {
	count int
}

type pollTickMsg struct{}

type searchDebounceMsg struct {
	seq int
}

type feedRefreshMsg struct{}

func (m *feedUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case spinner.TickMsg:
		if m.loading {
			spinnerModel, cmd := m.spinner.Update(msg)
			m.spinner = spinnerModel
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case feedLoadedMsg:
		if msg.gen != m.feedGen {
			return m, nil
		}
		m.loading = false
		if msg.apiErr != nil {
			m.apiErr = msg.apiErr
			return m, tea.Quit
		}
		m.blogs = msg.blogs
		if m.cursor >= len(m.blogs) {
			m.cursor = max(0, len(m.blogs)-1)
		}
		var cmds []tea.Cmd
		for _, blog := range m.blogs {
			m.likeState(blog).Sync(false, blog.LikeCount)
			cmds = append(cmds, fetchLikeStatus(blog.Id))
		}
		return m, tea.Batch(cmds...)

	case likeStatusMsg:
		if t, ok := m.likes[msg.blogId]; ok {
			if _, inflight := m.pending[msg.blogId]; !inflight {
				t.Sync(msg.liked, msg.count)
			}
		}

	case likeResolvedMsg:
		if t, ok := m.likes[msg.blogId]; ok {
			t.Resolve(msg.req, msg.apiErr != nil)
		}
		delete(m.pending, msg.blogId)

	case sidebarLoadedMsg:
		if msg.apiErr != nil {
			// the feed still works without suggestions
			return m, nil
		}
		m.suggestions = ui.NewSuggestionList(m.self.UserId, msg.users, msg.followedIds)

	case followResolvedMsg:
		if msg.apiErr == nil && m.suggestions != nil {
			m.suggestions.MarkFollowed(msg.userId)
			if m.sidebarCursor >= len(m.suggestions.Displayed()) {
				m.sidebarCursor = max(0, len(m.suggestions.Displayed())-1)
			}
			lib.FeedRefresh.Trigger()
			return m, m.reloadFeed()
		}

	case unreadCountMsg:
		m.unreadCount = msg.count

	case pollTickMsg:
		return m, tea.Batch(fetchUnreadCount(), pollTick())

	case searchDebounceMsg:
		if msg.seq == m.searchSeq && m.suggestions != nil {
			if m.suggestions.SetSearch(m.searchInput) {
				m.sidebarCursor = 0
			}
		}

	case feedRefreshMsg:
		return m, m.reloadFeed()

	case tea.KeyMsg:
		if m.searching {
			return m.searchInputUpdate(msg)
		}

		switch {
		case bubbleKey.Matches(msg, m.keymap.quit):
			return m, tea.Quit

		case bubbleKey.Matches(msg, m.keymap.tab):
			m.sidebarFocused = !m.sidebarFocused

		case bubbleKey.Matches(msg, m.keymap.reload):
			return m, m.reloadFeed()

		case bubbleKey.Matches(msg, m.keymap.search):
			if m.suggestions != nil {
				m.searching = true
				m.sidebarFocused = true
			}

		case bubbleKey.Matches(msg, m.keymap.up):
			m.moveCursor(-1)

		case bubbleKey.Matches(msg, m.keymap.down):
			m.moveCursor(1)

		case bubbleKey.Matches(msg, m.keymap.more):
			if m.sidebarFocused && m.suggestions != nil {
				m.suggestions.LoadMore()
			}

		case bubbleKey.Matches(msg, m.keymap.enter):
			if m.sidebarFocused {
				return m, m.followSelected()
			}

		case bubbleKey.Matches(msg, m.keymap.like):
			return m, m.toggleLikeSelected()

		case bubbleKey.Matches(msg, m.keymap.open):
			if blog := m.selectedBlog(); blog != nil {
				m.selectedBlogId = blog.Id
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m *feedUIModel) searchInputUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.searching = false
		return m, nil

	case tea.KeyEnter:
		m.searching = false
		m.searchSeq++
		seq := m.searchSeq
		return m, func() tea.Msg { return searchDebounceMsg{seq: seq} }

	case tea.KeyBackspace:
		if len(m.searchInput) > 0 {
			_, size := utf8.DecodeLastRuneInString(m.searchInput)
			m.searchInput = m.searchInput[:len(m.searchInput)-size]
		}

	case tea.KeyRunes, tea.KeySpace:
		m.searchInput += string(msg.Runes)
		if msg.Type == tea.KeySpace {
			m.searchInput += " "
		}

	default:
		return m, nil
	}

	m.searchSeq++
	seq := m.searchSeq
	return m, tea.Tick(ui.SuggestionSearchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func (m *feedUIModel) moveCursor(delta int) {
	if m.sidebarFocused {
		if m.suggestions == nil {
			return
		}
		n := len(m.suggestions.Displayed())
		m.sidebarCursor = clamp(m.sidebarCursor+delta, 0, n-1)
		return
	}

	m.cursor = clamp(m.cursor+delta, 0, len(m.blogs)-1)
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+feedPageSize {
		m.offset = m.cursor - feedPageSize + 1
	}
}

func (m *feedUIModel) reloadFeed() tea.Cmd {
	m.feedGen++
	m.loading = true
	gen := m.feedGen
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		blogs, apiErr := api.Client.GetFeed()
		return feedLoadedMsg{gen: gen, blogs: blogs, apiErr: apiErr}
	})
}

func (m *feedUIModel) loadFeed() tea.Cmd {
	gen := m.feedGen
	return func() tea.Msg {
		blogs, apiErr := api.Client.GetFeed()
		return feedLoadedMsg{gen: gen, blogs: blogs, apiErr: apiErr}
	}
}

func (m *feedUIModel) toggleLikeSelected() tea.Cmd {
	blog := m.selectedBlog()
	if blog == nil {
		return nil
	}

	t := m.likeState(blog)
	req := t.BeginToggle()
	m.pending[blog.Id] = req
	blogId := blog.Id

	return func() tea.Msg {
		var apiErr *shared.ApiError
		if req.On {
			apiErr = api.Client.Like(blogId)
		} else {
			apiErr = api.Client.Unlike(blogId)
		}
		return likeResolvedMsg{blogId: blogId, req: req, apiErr: apiErr}
	}
}

func (m *feedUIModel) followSelected() tea.Cmd {
	if m.suggestions == nil {
		return nil
	}
	displayed := m.suggestions.Displayed()
	if m.sidebarCursor < 0 || m.sidebarCursor >= len(displayed) {
		return nil
	}
	userId := displayed[m.sidebarCursor].UserId

	return func() tea.Msg {
		apiErr := api.Client.Follow(userId)
		return followResolvedMsg{userId: userId, apiErr: apiErr}
	}
}

func fetchLikeStatus(blogId int64) tea.Cmd {
	return func() tea.Msg {
		status, apiErr := api.Client.GetLikeStatus(blogId)
		if apiErr != nil {
			return nil
		}
		return likeStatusMsg{blogId: blogId, liked: status.Liked, count: status.LikeCount}
	}
}

func loadSidebar(selfId int64) tea.Cmd {
	return func() tea.Msg {
		users, apiErr := api.Client.ListUsers()
		if apiErr != nil {
			return sidebarLoadedMsg{apiErr: apiErr}
		}

		followedIds, apiErr := api.Client.GetFollowingIds()
		if apiErr != nil {
			return sidebarLoadedMsg{apiErr: apiErr}
		}

		flat := make([]shared.User, 0, len(users))
		for _, u := range users {
			flat = append(flat, *u)
		}

		return sidebarLoadedMsg{users: flat, followedIds: followedIds}
	}
}

func fetchUnreadCount() tea.Cmd {
	return func() tea.Msg {
		count, apiErr := api.Client.GetUnreadNotificationCount()
		if apiErr != nil {
			return nil
		}
		return unreadCountMsg{count: count}
	}
}

func pollTick() tea.Cmd {
	return tea.Tick(lib.NotificationPollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
