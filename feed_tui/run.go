package feedtui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	shared "ripple-shared"

	"ripple-cli/lib"
)

// StartFeedUI runs the interactive feed until the user quits or opens a
// post. Returns the id of the post the user opened, or 0. Feed-refresh
// broadcasts arriving while the view is open trigger a reload in place.
func StartFeedUI(self *shared.User) (int64, *shared.ApiError, error) {
	initial := initialModel(self)

	program := tea.NewProgram(initial, tea.WithAltScreen())

	refreshCh, unsubscribe := lib.FeedRefresh.Subscribe()
	defer unsubscribe()
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-refreshCh:
				program.Send(feedRefreshMsg{})
			}
		}
	}()

	m, err := program.Run()
	if err != nil {
		return 0, nil, fmt.Errorf("error running feed UI: %v", err)
	}

	mod := m.(*feedUIModel)

	if mod.err != nil {
		return 0, nil, mod.err
	}
	if mod.apiErr != nil {
		return 0, mod.apiErr, nil
	}

	return mod.selectedBlogId, nil, nil
}
