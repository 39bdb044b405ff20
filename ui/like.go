// Package ui holds the view-state bookkeeping shared by the commands and
// TUIs: optimistic toggles, list windows, the admin confirm flow, media
// selection. Everything here is plain state with no I/O.
package ui

// Toggle is optimistic like/follow state for one entity. The UI flips it
// before the network call resolves and reverts on failure. Each flip issues
// a monotonically increasing request token; only the response matching the
// latest token is applied, so overlapping toggles on the same entity can't
// lose updates.
type Toggle struct {
	On    bool
	Count int

	seq uint64
}

// ToggleRequest captures one optimistic flip: the token that must match on
// resolution and the pre-flip values to revert to.
type ToggleRequest struct {
	Token     uint64
	On        bool
	PrevOn    bool
	PrevCount int
}

// BeginToggle applies the flip optimistically and returns the request to
// resolve once the network call finishes. The count never goes below zero.
func (t *Toggle) BeginToggle() ToggleRequest {
	req := ToggleRequest{
		PrevOn:    t.On,
		PrevCount: t.Count,
	}

	t.On = !t.On
	if t.On {
		t.Count++
	} else if t.Count > 0 {
		t.Count--
	}

	t.seq++
	req.Token = t.seq
	req.On = t.On

	return req
}

// Resolve applies the outcome of a toggle request. Stale responses (a newer
// toggle was issued since) are discarded. On failure the pre-toggle values
// are restored exactly. Returns whether the response was applied.
func (t *Toggle) Resolve(req ToggleRequest, failed bool) bool {
	if req.Token != t.seq {
		return false
	}

	if failed {
		t.On = req.PrevOn
		t.Count = req.PrevCount
	}

	return true
}

// Sync overwrites local state with server-confirmed values, e.g. after a
// like-status fetch. It invalidates any outstanding requests.
func (t *Toggle) Sync(on bool, count int) {
	t.On = on
	t.Count = count
	t.seq++
}
