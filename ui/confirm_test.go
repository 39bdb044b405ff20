package ui

import "testing"

func TestConfirmFlowHappyPath(t *testing.T) {
	var flow ConfirmFlow

	if !flow.Open(DeleteUser{UserId: 7, UserName: "mallory"}) {
		t.Fatal("open from idle should stage the action")
	}
	if flow.Phase() != ConfirmPending {
		t.Fatalf("phase after open: got %v", flow.Phase())
	}

	action := flow.Confirm()
	if action == nil {
		t.Fatal("confirm should hand back the staged action")
	}
	if _, ok := action.(DeleteUser); !ok {
		t.Fatalf("staged action type changed: %T", action)
	}

	flow.Succeed()
	if flow.Phase() != ConfirmIdle || flow.Action() != nil {
		t.Error("success should reset the flow")
	}
}

func TestConfirmFlowIgnoresOpenWhileBusy(t *testing.T) {
	var flow ConfirmFlow

	flow.Open(DismissReport{ReportId: 1})
	if flow.Open(DeletePost{BlogId: 2}) {
		t.Error("open while pending should be ignored")
	}

	flow.Confirm()
	if flow.Open(DeletePost{BlogId: 2}) {
		t.Error("open while executing should be ignored")
	}

	if _, ok := flow.Action().(DismissReport); !ok {
		t.Errorf("original action was replaced: %T", flow.Action())
	}
}

func TestConfirmFlowFailureStaysForRetry(t *testing.T) {
	var flow ConfirmFlow

	flow.Open(ToggleUserStatus{UserId: 3, UserName: "bob", NewStatus: "BANNED"})
	flow.Confirm()
	flow.Fail("boom")

	if flow.Phase() != ConfirmExecuting || flow.Err() != "boom" {
		t.Fatalf("failure should stay in executing with the error staged: phase=%v err=%q", flow.Phase(), flow.Err())
	}

	action := flow.Retry()
	if action == nil {
		t.Fatal("retry should re-dispatch the same action")
	}
	if flow.Err() != "" {
		t.Error("retry should clear the staged error")
	}

	flow.Succeed()
	if flow.Phase() != ConfirmIdle {
		t.Error("success after retry should reset")
	}
}

func TestConfirmFlowCancel(t *testing.T) {
	var flow ConfirmFlow

	flow.Open(DeletePost{BlogId: 2, Title: "spam"})
	flow.Cancel()
	if flow.Phase() != ConfirmIdle {
		t.Error("cancel from pending should reset")
	}

	flow.Open(DeletePost{BlogId: 2, Title: "spam"})
	flow.Confirm()

	// in flight: cancel must not abandon the action mid-request
	flow.Cancel()
	if flow.Phase() != ConfirmExecuting {
		t.Error("cancel while in flight should be ignored")
	}

	flow.Fail("boom")
	flow.Cancel()
	if flow.Phase() != ConfirmIdle {
		t.Error("cancel after failure should reset")
	}
}

func TestConfirmFlowGuards(t *testing.T) {
	var flow ConfirmFlow

	if flow.Confirm() != nil {
		t.Error("confirm with nothing pending should return nil")
	}
	if flow.Retry() != nil {
		t.Error("retry with no failure should return nil")
	}

	flow.Open(DismissReport{ReportId: 1})
	if flow.Retry() != nil {
		t.Error("retry while pending should return nil")
	}
}
