package ui

import "testing"

func TestToggleOptimisticFlip(t *testing.T) {
	toggle := &Toggle{On: false, Count: 5}

	req := toggle.BeginToggle()

	if !toggle.On || toggle.Count != 6 {
		t.Errorf("after toggle: got on=%v count=%d, want on=true count=6", toggle.On, toggle.Count)
	}
	if !req.On || req.PrevOn || req.PrevCount != 5 {
		t.Errorf("request snapshot: got %+v", req)
	}
}

func TestToggleRevertOnFailure(t *testing.T) {
	toggle := &Toggle{On: false, Count: 5}

	req := toggle.BeginToggle()
	applied := toggle.Resolve(req, true)

	if !applied {
		t.Fatal("expected the failure to be applied")
	}
	if toggle.On || toggle.Count != 5 {
		t.Errorf("after revert: got on=%v count=%d, want on=false count=5", toggle.On, toggle.Count)
	}
}

func TestToggleKeepOnSuccess(t *testing.T) {
	toggle := &Toggle{On: true, Count: 3}

	req := toggle.BeginToggle()
	toggle.Resolve(req, false)

	if toggle.On || toggle.Count != 2 {
		t.Errorf("after unlike: got on=%v count=%d, want on=false count=2", toggle.On, toggle.Count)
	}
}

func TestToggleStaleResponseDiscarded(t *testing.T) {
	toggle := &Toggle{On: false, Count: 5}

	first := toggle.BeginToggle()
	second := toggle.BeginToggle()

	// the first request failing must not clobber the second flip
	if applied := toggle.Resolve(first, true); applied {
		t.Error("stale response should be discarded")
	}
	if toggle.On || toggle.Count != 5 {
		t.Errorf("after stale failure: got on=%v count=%d, want on=false count=5", toggle.On, toggle.Count)
	}

	if applied := toggle.Resolve(second, false); !applied {
		t.Error("latest response should be applied")
	}
}

func TestToggleCountFloorsAtZero(t *testing.T) {
	toggle := &Toggle{On: true, Count: 0}

	toggle.BeginToggle()

	if toggle.Count != 0 {
		t.Errorf("count went negative: %d", toggle.Count)
	}
}

func TestToggleSyncInvalidatesInflight(t *testing.T) {
	toggle := &Toggle{On: false, Count: 5}

	req := toggle.BeginToggle()
	toggle.Sync(true, 10)

	if applied := toggle.Resolve(req, true); applied {
		t.Error("response predating a sync should be discarded")
	}
	if !toggle.On || toggle.Count != 10 {
		t.Errorf("after sync: got on=%v count=%d, want on=true count=10", toggle.On, toggle.Count)
	}
}
