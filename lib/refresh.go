package lib

import "sync"

// Broadcast is a minimal in-process pub/sub used to tell live views to
// reload. Subscribers get a non-blocking signal channel; a trigger while a
// signal is already pending is coalesced.
type Broadcast struct {
	mu   sync.Mutex
	subs map[chan struct{}]bool
}

func NewBroadcast() *Broadcast {
	return &Broadcast{subs: map[chan struct{}]bool{}}
}

// Subscribe returns a signal channel and an unsubscribe func. The channel
// is buffered; receivers drain it at their own pace.
func (b *Broadcast) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	b.subs[ch] = true
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}

	return ch, unsubscribe
}

// Trigger signals every subscriber. Never blocks.
func (b *Broadcast) Trigger() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// FeedRefresh signals that followed-author content changed and feed views
// should reload. Follow/unfollow and post creation trigger it.
var FeedRefresh = NewBroadcast()
