// Package onboarding persists the single has-seen-onboarding boolean.
package onboarding

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/tradex-app/tradex/internal/domain"
	"github.com/tradex-app/tradex/internal/kv"
)

// StorageKey is the onboarding store's exclusive key in the KV adapter.
const StorageKey = "tradex_onboarding_complete"

// completeValue is the only persisted value that means "done". Anything
// else, including a read error, re-shows onboarding — the fail-safe side.
const completeValue = "true"

// Store is the onboarding flag store.
type Store struct {
	store  domain.KVStore
	writer *kv.Writer
	logger *slog.Logger

	mu        sync.RWMutex
	completed bool
	hydrated  bool
}

// New creates a Store. Call Hydrate once at startup and Close on shutdown.
func New(store domain.KVStore, logger *slog.Logger) *Store {
	return &Store{
		store:  store,
		writer: kv.NewWriter(store, StorageKey, logger),
		logger: logger.With(slog.String("component", "onboarding_store")),
	}
}

// Hydrate reads the persisted flag. Errors are swallowed and count as
// incomplete.
func (s *Store) Hydrate(ctx context.Context) {
	raw, err := s.store.Get(ctx, StorageKey)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrated = true

	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("onboarding: read failed, treating as incomplete",
				slog.String("error", err.Error()))
		}
		s.completed = false
		return
	}
	s.completed = raw == completeValue
}

// Completed reports whether onboarding has been finished.
func (s *Store) Completed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completed
}

// MarkComplete sets the flag and enqueues the persist.
func (s *Store) MarkComplete() {
	s.mu.Lock()
	s.completed = true
	s.mu.Unlock()

	s.writer.Enqueue(completeValue)
}

// Close flushes the write queue.
func (s *Store) Close() {
	s.writer.Close()
}
