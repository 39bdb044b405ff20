package dashboardtui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	shared "ripple-shared"
)

// StartDashboardUI runs the admin dashboard until the admin quits. The
// caller is responsible for the admin gate; self is the signed-in admin.
func StartDashboardUI(self *shared.User) (*shared.ApiError, error) {
	initial := initialModel(self)

	program := tea.NewProgram(initial, tea.WithAltScreen())

	m, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("error running dashboard UI: %v", err)
	}

	mod := m.(*dashboardUIModel)

	if mod.err != nil {
		return nil, mod.err
	}

	return mod.apiErr, nil
}
