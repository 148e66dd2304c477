package bus

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishReachesSubscribers(t *testing.T) {
	b := New(testLogger())
	defer b.Close()

	ch1, unsub1 := b.Subscribe()
	defer unsub1()
	ch2, unsub2 := b.Subscribe()
	defer unsub2()

	b.Publish("bookmark_added", []byte(`{"marketId":"m1"}`))

	for i, ch := range []<-chan Message{ch1, ch2} {
		select {
		case msg := <-ch:
			if msg.Event != "bookmark_added" {
				t.Errorf("subscriber %d: event = %q", i, msg.Event)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d: no message", i)
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(testLogger())
	defer b.Close()

	ch, unsub := b.Subscribe()
	unsub()
	unsub() // idempotent

	b.Publish("event", nil)

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("received on unsubscribed channel")
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCloseClosesSubscriberChannels(t *testing.T) {
	b := New(testLogger())
	ch, _ := b.Subscribe()

	b.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("channel delivered after Close")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}
