package dashboardtui

import (
	"unicode/utf8"

	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	shared "ripple-shared"

	"ripple-cli/api"
	"ripple-cli/ui"
)

type dashboardLoadedMsg struct {
	users          []*shared.User
	posts          []*shared.Blog
	reports        []*shared.AdminReportItem
	followerCounts []*shared.UserFollowerCount
	apiErr         *shared.ApiError
}

func (m *dashboardUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case spinner.TickMsg:
		if m.loading || m.executing() {
			spinnerModel, cmd := m.spinner.Update(msg)
			m.spinner = spinnerModel
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case dashboardLoadedMsg:
		m.loading = false
		if msg.apiErr != nil {
			m.apiErr = msg.apiErr
			return m, tea.Quit
		}
		m.users = msg.users
		m.posts = msg.posts
		m.reports = msg.reports
		m.followerCounts = make(map[int64]int, len(msg.followerCounts))
		for _, fc := range msg.followerCounts {
			m.followerCounts[fc.UserId] = fc.Count
		}
		m.recompute()
		m.clampCursor()

	case actionDoneMsg:
		if msg.apiErr != nil {
			m.confirm.Fail(msg.apiErr.Msg)
			return m, nil
		}
		m.confirm.Succeed()
		m.status = "Done."
		return m, m.reload()

	case tea.KeyMsg:
		m.status = ""

		if m.searching {
			return m.searchInputUpdate(msg)
		}

		if m.confirm.Phase() != ui.ConfirmIdle {
			return m.confirmUpdate(msg)
		}

		switch {
		case bubbleKey.Matches(msg, m.keymap.quit):
			return m, tea.Quit

		case bubbleKey.Matches(msg, m.keymap.nextTab):
			m.setTab((m.tab + 1) % 3)

		case bubbleKey.Matches(msg, m.keymap.prevTab):
			m.setTab((m.tab + 2) % 3)

		case bubbleKey.Matches(msg, m.keymap.up):
			m.moveCursor(-1)

		case bubbleKey.Matches(msg, m.keymap.down):
			m.moveCursor(1)

		case bubbleKey.Matches(msg, m.keymap.search):
			m.searching = true
			m.searchInput = m.search

		case bubbleKey.Matches(msg, m.keymap.filter):
			if m.tab == tabReports {
				m.cycleReasonFilter()
			}

		case bubbleKey.Matches(msg, m.keymap.reload):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, loadDashboard())

		case bubbleKey.Matches(msg, m.keymap.toggleRole):
			if u := m.selectedUser(); u != nil {
				m.stage(m.stageRoleToggle(u))
			}

		case bubbleKey.Matches(msg, m.keymap.toggleStatus):
			switch m.tab {
			case tabUsers:
				if u := m.selectedUser(); u != nil {
					m.stage(m.stageStatusToggle(u))
				}
			case tabPosts:
				if b := m.selectedPost(); b != nil {
					m.confirm.Open(m.stagePostStatusToggle(b))
				}
			}

		case bubbleKey.Matches(msg, m.keymap.del):
			switch m.tab {
			case tabUsers:
				if u := m.selectedUser(); u != nil {
					m.stage(m.stageUserDelete(u))
				}
			case tabPosts:
				if b := m.selectedPost(); b != nil {
					m.confirm.Open(ui.DeletePost{BlogId: b.Id, Title: b.Title})
				}
			case tabReports:
				if r := m.selectedReport(); r != nil {
					m.confirm.Open(ui.DeleteReportedPost{
						BlogId:   r.BlogId,
						ReportId: r.ReportId,
						Title:    r.BlogTitle,
					})
				}
			}

		case bubbleKey.Matches(msg, m.keymap.dismiss):
			if m.tab == tabReports {
				if r := m.selectedReport(); r != nil {
					m.confirm.Open(ui.DismissReport{ReportId: r.ReportId})
				}
			}
		}
	}

	return m, nil
}

func (m *dashboardUIModel) confirmUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.confirm.Phase() {
	case ui.ConfirmPending:
		switch {
		case bubbleKey.Matches(msg, m.keymap.yes):
			if action := m.confirm.Confirm(); action != nil {
				return m, tea.Batch(m.spinner.Tick, dispatch(action))
			}
		case bubbleKey.Matches(msg, m.keymap.no):
			m.confirm.Cancel()
		}

	case ui.ConfirmExecuting:
		// only reachable with a staged failure; in-flight actions ignore keys
		if m.confirm.Err() == "" {
			return m, nil
		}
		switch {
		case bubbleKey.Matches(msg, m.keymap.retry), bubbleKey.Matches(msg, m.keymap.yes):
			if action := m.confirm.Retry(); action != nil {
				return m, tea.Batch(m.spinner.Tick, dispatch(action))
			}
		case bubbleKey.Matches(msg, m.keymap.no):
			m.confirm.Cancel()
		}
	}

	return m, nil
}

func (m *dashboardUIModel) searchInputUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.searching = false

	case tea.KeyEnter:
		m.searching = false
		m.search = m.searchInput
		m.cursor = 0
		m.offset = 0

	case tea.KeyBackspace:
		if len(m.searchInput) > 0 {
			_, size := utf8.DecodeLastRuneInString(m.searchInput)
			m.searchInput = m.searchInput[:len(m.searchInput)-size]
		}

	case tea.KeyRunes:
		m.searchInput += string(msg.Runes)

	case tea.KeySpace:
		m.searchInput += " "
	}

	return m, nil
}

func (m *dashboardUIModel) stage(action ui.AdminAction, denied string) {
	if denied != "" {
		m.status = denied
		return
	}
	m.confirm.Open(action)
}

func (m *dashboardUIModel) executing() bool {
	return m.confirm.Phase() == ui.ConfirmExecuting && m.confirm.Err() == ""
}

func (m *dashboardUIModel) setTab(tab dashboardTab) {
	m.tab = tab
	m.cursor = 0
	m.offset = 0
	m.search = ""
	m.searchInput = ""
}

func (m *dashboardUIModel) cycleReasonFilter() {
	if m.reasonFilter == "" {
		m.reasonFilter = shared.ReportReasons[0]
	} else {
		next := ""
		for i, r := range shared.ReportReasons {
			if r == m.reasonFilter && i+1 < len(shared.ReportReasons) {
				next = string(shared.ReportReasons[i+1])
				break
			}
		}
		m.reasonFilter = shared.ReportReason(next)
	}
	m.cursor = 0
	m.offset = 0
}

func (m *dashboardUIModel) moveCursor(delta int) {
	n := m.rowCount()
	if n == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+dashboardPageSize {
		m.offset = m.cursor - dashboardPageSize + 1
	}
}

func (m *dashboardUIModel) clampCursor() {
	n := m.rowCount()
	if m.cursor >= n {
		m.cursor = max(0, n-1)
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
}

func (m *dashboardUIModel) selectedUser() *shared.User {
	users := m.filteredUsers()
	if m.tab != tabUsers || m.cursor >= len(users) {
		return nil
	}
	return users[m.cursor]
}

func (m *dashboardUIModel) selectedPost() *shared.Blog {
	posts := m.filteredPosts()
	if m.tab != tabPosts || m.cursor >= len(posts) {
		return nil
	}
	return posts[m.cursor]
}

func (m *dashboardUIModel) selectedReport() *shared.AdminReportItem {
	reports := m.filteredReports()
	if m.tab != tabReports || m.cursor >= len(reports) {
		return nil
	}
	return reports[m.cursor]
}

func (m *dashboardUIModel) reload() tea.Cmd {
	return loadDashboard()
}

func loadDashboard() tea.Cmd {
	return func() tea.Msg {
		errCh := make(chan *shared.ApiError, 4)
		res := dashboardLoadedMsg{}

		go func() {
			users, apiErr := api.Client.ListAdminUsers()
			res.users = users
			errCh <- apiErr
		}()

		go func() {
			posts, apiErr := api.Client.ListAdminPosts()
			res.posts = posts
			errCh <- apiErr
		}()

		go func() {
			reports, apiErr := api.Client.ListAdminReports()
			res.reports = reports
			errCh <- apiErr
		}()

		go func() {
			counts, apiErr := api.Client.GetAdminFollowerCounts()
			res.followerCounts = counts
			errCh <- apiErr
		}()

		for i := 0; i < 4; i++ {
			if apiErr := <-errCh; apiErr != nil {
				res.apiErr = apiErr
			}
		}

		return res
	}
}
