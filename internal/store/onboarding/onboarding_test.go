package onboarding

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/tradex-app/tradex/internal/kv/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFreshStoreIsIncomplete(t *testing.T) {
	s := New(memory.New(), testLogger())
	defer s.Close()
	s.Hydrate(context.Background())

	if s.Completed() {
		t.Error("fresh store reports completed")
	}
}

func TestMarkCompletePersists(t *testing.T) {
	ctx := context.Background()
	kvs := memory.New()

	s := New(kvs, testLogger())
	s.Hydrate(ctx)
	s.MarkComplete()
	s.Close()

	if !s.Completed() {
		t.Error("MarkComplete did not take effect")
	}

	raw, err := kvs.Get(ctx, StorageKey)
	if err != nil {
		t.Fatalf("flag not persisted: %v", err)
	}
	if raw != "true" {
		t.Errorf("persisted value = %q, want %q", raw, "true")
	}

	// A second store over the same backend hydrates complete.
	s2 := New(kvs, testLogger())
	defer s2.Close()
	s2.Hydrate(ctx)
	if !s2.Completed() {
		t.Error("persisted flag not restored")
	}
}

func TestUnexpectedValueCountsAsIncomplete(t *testing.T) {
	ctx := context.Background()
	kvs := memory.New()
	if err := kvs.Set(ctx, StorageKey, "yes"); err != nil {
		t.Fatal(err)
	}

	s := New(kvs, testLogger())
	defer s.Close()
	s.Hydrate(ctx)

	if s.Completed() {
		t.Error("non-canonical value treated as complete")
	}
}
