package lib

import (
	"context"
	"time"
)

// NotificationPollInterval is how often the unread-notification count is
// refreshed while a live view is open.
const NotificationPollInterval = 30 * time.Second

// StartUnreadPoll calls fetch immediately and then on every tick until the
// context is cancelled, delivering each successful count to onCount. Fetch
// errors are skipped; the previous count stands until the next tick.
func StartUnreadPoll(ctx context.Context, fetch func() (int, error), onCount func(int)) {
	go func() {
		if n, err := fetch(); err == nil {
			onCount(n)
		}

		ticker := time.NewTicker(NotificationPollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := fetch(); err == nil {
					onCount(n)
				}
			}
		}
	}()
}
