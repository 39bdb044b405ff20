package ui

import (
	"testing"

	shared "ripple-shared"
)

func notifFixture() *NotificationList {
	return NewNotificationList([]shared.Notification{
		{Id: 1, Message: "alice liked your post"},
		{Id: 2, Message: "bob commented", Read: true},
		{Id: 3, Message: "carol followed you"},
	})
}

func TestNotificationRemoveAndRestore(t *testing.T) {
	list := notifFixture()

	removed := list.Remove(2)
	if removed == nil {
		t.Fatal("remove should return a restore handle")
	}
	if len(list.Items()) != 2 {
		t.Fatalf("after remove: got %d items", len(list.Items()))
	}

	list.Restore(removed)

	items := list.Items()
	if len(items) != 3 || items[1].Id != 2 {
		t.Errorf("restore should reinsert at the old position: %v", items)
	}
}

func TestNotificationRemoveMissing(t *testing.T) {
	list := notifFixture()

	if removed := list.Remove(99); removed != nil {
		t.Error("removing an unknown id should return nil")
	}
	if len(list.Items()) != 3 {
		t.Error("unknown id should leave the list untouched")
	}
}

func TestNotificationRemoveKeepsTarget(t *testing.T) {
	blogId := int64(42)
	list := NewNotificationList([]shared.Notification{
		{Id: 1, Message: "alice liked your post", BlogId: &blogId},
	})

	removed := list.Remove(1)
	if removed == nil {
		t.Fatal("remove should return a restore handle")
	}
	if removed.Item.BlogId == nil || *removed.Item.BlogId != 42 {
		t.Errorf("the handle should carry the target post: %v", removed.Item.BlogId)
	}
}

func TestNotificationUnreadCount(t *testing.T) {
	list := notifFixture()

	if got := list.UnreadCount(); got != 2 {
		t.Errorf("unread count: got %d, want 2", got)
	}

	list.MarkRead(1)
	if got := list.UnreadCount(); got != 1 {
		t.Errorf("unread count after mark: got %d, want 1", got)
	}
}

func TestNotificationRestoreAtEnd(t *testing.T) {
	list := notifFixture()

	removed := list.Remove(3)
	list.Remove(1)
	list.Remove(2)

	list.Restore(removed)

	items := list.Items()
	if len(items) != 1 || items[0].Id != 3 {
		t.Errorf("restore past the end should append: %v", items)
	}
}
