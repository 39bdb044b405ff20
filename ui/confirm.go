package ui

import (
	"fmt"

	shared "ripple-shared"
)

// ConfirmPhase is the lifecycle of a destructive admin action.
type ConfirmPhase int

const (
	// ConfirmIdle means no action is pending.
	ConfirmIdle ConfirmPhase = iota

	// ConfirmPending means an action awaits the admin's yes/no.
	ConfirmPending

	// ConfirmExecuting means the action was confirmed and its request is
	// in flight, or has failed and awaits retry/cancel.
	ConfirmExecuting
)

// AdminAction is one of the confirmable dashboard actions. Each variant
// carries exactly the identifiers its request needs; dispatch is a type
// switch at the call site.
type AdminAction interface {
	// Describe returns the confirmation prompt shown to the admin.
	Describe() string
}

type ToggleUserRole struct {
	UserId   int64
	UserName string
	NewRole  string
}

func (a ToggleUserRole) Describe() string {
	if a.NewRole == shared.RoleAdmin {
		return fmt.Sprintf("Promote %s to admin?", a.UserName)
	}
	return fmt.Sprintf("Demote %s to regular user?", a.UserName)
}

type ToggleUserStatus struct {
	UserId    int64
	UserName  string
	NewStatus string
}

func (a ToggleUserStatus) Describe() string {
	if a.NewStatus == shared.UserStatusBanned {
		return fmt.Sprintf("Ban %s?", a.UserName)
	}
	return fmt.Sprintf("Unban %s?", a.UserName)
}

type DeleteUser struct {
	UserId   int64
	UserName string
}

func (a DeleteUser) Describe() string {
	return fmt.Sprintf("Permanently delete %s and all their content?", a.UserName)
}

type DeletePost struct {
	BlogId int64
	Title  string
}

func (a DeletePost) Describe() string {
	return fmt.Sprintf("Permanently delete the post %q?", a.Title)
}

type TogglePostStatus struct {
	BlogId    int64
	Title     string
	NewStatus string
}

func (a TogglePostStatus) Describe() string {
	if a.NewStatus == shared.BlogStatusHidden {
		return fmt.Sprintf("Hide the post %q?", a.Title)
	}
	return fmt.Sprintf("Restore the post %q?", a.Title)
}

// DeleteReportedPost deletes a post surfaced by a report; its reports go
// with it.
type DeleteReportedPost struct {
	BlogId   int64
	ReportId int64
	Title    string
}

func (a DeleteReportedPost) Describe() string {
	return fmt.Sprintf("Delete the reported post %q? Its reports are removed too.", a.Title)
}

type DismissReport struct {
	ReportId int64
}

func (a DismissReport) Describe() string {
	return "Dismiss this report?"
}

// ConfirmFlow is the idle -> pending -> executing machine behind the
// dashboard's confirmation modal. Opening a new action while one is in
// flight is ignored; a failed execution stays in the executing phase so
// the admin can retry or cancel.
type ConfirmFlow struct {
	phase  ConfirmPhase
	action AdminAction
	err    string
}

func (f *ConfirmFlow) Phase() ConfirmPhase { return f.phase }
func (f *ConfirmFlow) Action() AdminAction { return f.action }
func (f *ConfirmFlow) Err() string         { return f.err }

// Open stages an action for confirmation. Ignored unless the flow is
// idle. Returns whether the action was staged.
func (f *ConfirmFlow) Open(action AdminAction) bool {
	if f.phase != ConfirmIdle {
		return false
	}
	f.action = action
	f.phase = ConfirmPending
	f.err = ""
	return true
}

// Confirm moves a pending action into execution and returns it. Returns
// nil if nothing is pending.
func (f *ConfirmFlow) Confirm() AdminAction {
	if f.phase != ConfirmPending {
		return nil
	}
	f.phase = ConfirmExecuting
	return f.action
}

// Fail records an execution error. The flow stays in the executing phase
// with the action still staged.
func (f *ConfirmFlow) Fail(msg string) {
	if f.phase != ConfirmExecuting {
		return
	}
	f.err = msg
}

// Retry re-dispatches a failed action and returns it. Returns nil unless
// an execution failure is staged.
func (f *ConfirmFlow) Retry() AdminAction {
	if f.phase != ConfirmExecuting || f.err == "" {
		return nil
	}
	f.err = ""
	return f.action
}

// Succeed resets the flow after a successful execution.
func (f *ConfirmFlow) Succeed() {
	f.reset()
}

// Cancel abandons the staged action from either the pending or the
// failed-executing state.
func (f *ConfirmFlow) Cancel() {
	if f.phase == ConfirmExecuting && f.err == "" {
		return
	}
	f.reset()
}

func (f *ConfirmFlow) reset() {
	f.phase = ConfirmIdle
	f.action = nil
	f.err = ""
}
