package lib

import (
	"testing"
	"time"
)

func TestBroadcastDeliversToSubscribers(t *testing.T) {
	b := NewBroadcast()

	ch1, unsub1 := b.Subscribe()
	ch2, unsub2 := b.Subscribe()
	defer unsub1()
	defer unsub2()

	b.Trigger()

	for i, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d never got the signal", i)
		}
	}
}

func TestBroadcastCoalescesPendingSignals(t *testing.T) {
	b := NewBroadcast()

	ch, unsub := b.Subscribe()
	defer unsub()

	b.Trigger()
	b.Trigger()
	b.Trigger()

	<-ch

	select {
	case <-ch:
		t.Error("undrained triggers should coalesce into one signal")
	default:
	}
}

func TestBroadcastUnsubscribe(t *testing.T) {
	b := NewBroadcast()

	ch, unsub := b.Subscribe()
	unsub()

	b.Trigger()

	select {
	case <-ch:
		t.Error("unsubscribed channel should not be signalled")
	default:
	}
}

func TestBroadcastTriggerWithoutSubscribers(t *testing.T) {
	b := NewBroadcast()
	b.Trigger()
}
