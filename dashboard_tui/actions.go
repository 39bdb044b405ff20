package dashboardtui

import (
	tea "github.com/charmbracelet/bubbletea"

	shared "ripple-shared"

	"ripple-cli/api"
	"ripple-cli/ui"
)

type actionDoneMsg struct {
	action ui.AdminAction
	apiErr *shared.ApiError
}

// dispatch executes a confirmed action against the API. Unknown variants
// can't happen; the confirm flow only stages the types below.
func dispatch(action ui.AdminAction) tea.Cmd {
	return func() tea.Msg {
		var apiErr *shared.ApiError

		switch a := action.(type) {
		case ui.ToggleUserRole:
			_, apiErr = api.Client.UpdateUserRole(a.UserId, a.NewRole)

		case ui.ToggleUserStatus:
			_, apiErr = api.Client.UpdateUserStatus(a.UserId, a.NewStatus)

		case ui.DeleteUser:
			apiErr = api.Client.DeleteUser(a.UserId)

		case ui.TogglePostStatus:
			_, apiErr = api.Client.UpdateBlogStatus(a.BlogId, a.NewStatus)

		case ui.DeletePost:
			apiErr = api.Client.DeleteBlog(a.BlogId)

		case ui.DeleteReportedPost:
			// deleting the post cascades to its reports server-side
			apiErr = api.Client.DeleteBlog(a.BlogId)

		case ui.DismissReport:
			apiErr = api.Client.DeleteReport(a.ReportId)
		}

		return actionDoneMsg{action: action, apiErr: apiErr}
	}
}

// stageUserAction builds the action a key maps to for the selected user,
// or returns "" reason why it isn't allowed.
func (m *dashboardUIModel) stageRoleToggle(u *shared.User) (ui.AdminAction, string) {
	if u.UserId == m.superAdminId {
		return nil, "The primary admin's role can't be changed."
	}
	if u.UserId == m.self.UserId {
		return nil, "You can't change your own role here."
	}

	newRole := shared.RoleAdmin
	if u.IsAdmin() {
		newRole = shared.RoleUser
	}
	return ui.ToggleUserRole{UserId: u.UserId, UserName: u.UserName, NewRole: newRole}, ""
}

func (m *dashboardUIModel) stageStatusToggle(u *shared.User) (ui.AdminAction, string) {
	if u.UserId == m.self.UserId {
		return nil, "You can't ban yourself."
	}
	if u.IsAdmin() {
		return nil, "Admins can't be banned. Demote them first."
	}

	newStatus := shared.UserStatusBanned
	if u.Status == shared.UserStatusBanned {
		newStatus = shared.UserStatusActive
	}
	return ui.ToggleUserStatus{UserId: u.UserId, UserName: u.UserName, NewStatus: newStatus}, ""
}

func (m *dashboardUIModel) stageUserDelete(u *shared.User) (ui.AdminAction, string) {
	if u.UserId == m.self.UserId {
		return nil, "You can't delete your own account here."
	}
	if u.IsAdmin() {
		return nil, "Admins can't be deleted. Demote them first."
	}
	return ui.DeleteUser{UserId: u.UserId, UserName: u.UserName}, ""
}

func (m *dashboardUIModel) stagePostStatusToggle(b *shared.Blog) ui.AdminAction {
	newStatus := shared.BlogStatusHidden
	if b.Status == shared.BlogStatusHidden {
		newStatus = shared.BlogStatusActive
	}
	return ui.TogglePostStatus{BlogId: b.Id, Title: b.Title, NewStatus: newStatus}
}
