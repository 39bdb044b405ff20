package ui

import (
	shared "ripple-shared"
)

// NotificationList is local notification state with optimistic removal:
// opening a notification removes it from the list immediately, and the
// entry is restored in place if the server-side delete fails.
type NotificationList struct {
	items []shared.Notification
}

func NewNotificationList(items []shared.Notification) *NotificationList {
	return &NotificationList{items: items}
}

func (l *NotificationList) Items() []shared.Notification {
	return l.items
}

func (l *NotificationList) UnreadCount() int {
	n := 0
	for _, item := range l.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// RemovedNotification remembers where an optimistically removed entry
// lived so Restore can put it back in order.
type RemovedNotification struct {
	Item  shared.Notification
	Index int
}

// Remove takes a notification out of the list by id and returns a
// restore handle, or nil if the id isn't present.
func (l *NotificationList) Remove(id int64) *RemovedNotification {
	for i, item := range l.items {
		if item.Id == id {
			removed := &RemovedNotification{Item: item, Index: i}
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return removed
		}
	}
	return nil
}

// Restore reinserts an optimistically removed notification at its old
// position.
func (l *NotificationList) Restore(r *RemovedNotification) {
	if r == nil {
		return
	}
	i := r.Index
	if i > len(l.items) {
		i = len(l.items)
	}
	l.items = append(l.items[:i], append([]shared.Notification{r.Item}, l.items[i:]...)...)
}

// MarkRead flags a notification read locally.
func (l *NotificationList) MarkRead(id int64) {
	for i := range l.items {
		if l.items[i].Id == id {
			l.items[i].Read = true
			return
		}
	}
}
