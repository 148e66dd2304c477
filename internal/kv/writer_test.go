package kv

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
)

// recordingStore captures every Set in order.
type recordingStore struct {
	mu     sync.Mutex
	writes []string
}

func (r *recordingStore) Set(_ context.Context, _ string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, value)
	return nil
}

func (r *recordingStore) last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return "", false
	}
	return r.writes[len(r.writes)-1], true
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriterLastEnqueuedWins(t *testing.T) {
	store := &recordingStore{}
	w := NewWriter(store, "k", testLogger())

	for _, v := range []string{"v1", "v2", "v3", "v4", "v5"} {
		w.Enqueue(v)
	}
	w.Close()

	last, ok := store.last()
	if !ok {
		t.Fatal("no writes reached the store")
	}
	if last != "v5" {
		t.Errorf("final value = %q, want %q", last, "v5")
	}
}

func TestWriterCloseFlushesPending(t *testing.T) {
	store := &recordingStore{}
	w := NewWriter(store, "k", testLogger())

	w.Enqueue("only")
	w.Close()

	last, ok := store.last()
	if !ok {
		t.Fatal("pending value was not flushed on Close")
	}
	if last != "only" {
		t.Errorf("flushed value = %q, want %q", last, "only")
	}
}

func TestWriterEnqueueAfterCloseIsDropped(t *testing.T) {
	store := &recordingStore{}
	w := NewWriter(store, "k", testLogger())
	w.Enqueue("before")
	w.Close()

	w.Enqueue("after")

	store.mu.Lock()
	defer store.mu.Unlock()
	for _, v := range store.writes {
		if v == "after" {
			t.Error("value enqueued after Close reached the store")
		}
	}
}

func TestWriterConcurrentEnqueue(t *testing.T) {
	store := &recordingStore{}
	w := NewWriter(store, "k", testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				w.Enqueue("x")
			}
		}()
	}
	wg.Wait()
	w.Enqueue("final")
	w.Close()

	last, ok := store.last()
	if !ok {
		t.Fatal("no writes reached the store")
	}
	if last != "final" {
		t.Errorf("final value = %q, want %q", last, "final")
	}
}
