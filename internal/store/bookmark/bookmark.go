// Package bookmark holds the user's watchlist: an ordered list of full
// market snapshots plus a derived id set, persisted as one JSON array.
package bookmark

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/tradex-app/tradex/internal/domain"
	"github.com/tradex-app/tradex/internal/kv"
)

// StorageKey is the bookmark store's exclusive key in the KV adapter.
const StorageKey = "@tradex_bookmarks"

// Event names published on toggles.
const (
	EventAdded   = "bookmark_added"
	EventRemoved = "bookmark_removed"
)

// Store is the watchlist state store. The in-memory id set and the
// persisted array stay in lockstep after every toggle; persistence always
// rewrites the whole list through the write queue.
type Store struct {
	store  domain.KVStore
	writer *kv.Writer
	events domain.Publisher // optional
	logger *slog.Logger

	mu      sync.RWMutex
	items   []domain.MarketItem
	ids     map[string]struct{}
	loading bool
}

// New creates a Store. events may be nil. Call Hydrate before use and Close
// on shutdown.
func New(store domain.KVStore, events domain.Publisher, logger *slog.Logger) *Store {
	return &Store{
		store:   store,
		writer:  kv.NewWriter(store, StorageKey, logger),
		events:  events,
		logger:  logger.With(slog.String("component", "bookmark_store")),
		ids:     make(map[string]struct{}),
		loading: true,
	}
}

// Hydrate loads the persisted array. Any error, including a missing key or
// corrupt JSON, leaves the watchlist empty.
func (s *Store) Hydrate(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	raw, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("bookmark: read failed, starting empty",
				slog.String("error", err.Error()))
		}
		return
	}

	var items []domain.MarketItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("bookmark: corrupt array, starting empty",
			slog.String("error", err.Error()))
		return
	}

	ids := make(map[string]struct{}, len(items))
	for _, m := range items {
		ids[m.ID] = struct{}{}
	}

	s.mu.Lock()
	s.items = items
	s.ids = ids
	s.mu.Unlock()
}

// Loading reports whether hydration is still in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Toggle adds item to the watchlist if absent, removes it if present, then
// persists the full list. It returns true when the item ended up bookmarked.
func (s *Store) Toggle(item domain.MarketItem) bool {
	s.mu.Lock()
	_, present := s.ids[item.ID]
	if present {
		s.removeLocked(item.ID)
	} else {
		s.items = append(s.items, item)
		s.ids[item.ID] = struct{}{}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snapshot)
	s.publish(item.ID, !present)
	return !present
}

// ToggleDetail converts the detail shape into a MarketItem and toggles it.
func (s *Store) ToggleDetail(detail domain.MarketDetail) bool {
	return s.Toggle(FromDetail(detail))
}

// IsBookmarked reports membership by market id.
func (s *Store) IsBookmarked(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// Items returns a copy of the watchlist in insertion order.
func (s *Store) Items() []domain.MarketItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Count returns the watchlist size.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Close flushes the write queue.
func (s *Store) Close() {
	s.writer.Close()
}

// removeLocked drops the entry whose id matches. Caller holds s.mu.
func (s *Store) removeLocked(id string) {
	for i, m := range s.items {
		if m.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	delete(s.ids, id)
}

// snapshotLocked copies the list. Caller holds s.mu (read or write).
func (s *Store) snapshotLocked() []domain.MarketItem {
	out := make([]domain.MarketItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) persist(items []domain.MarketItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		s.logger.Warn("bookmark: marshal failed", slog.String("error", err.Error()))
		return
	}
	s.writer.Enqueue(string(raw))
}

func (s *Store) publish(id string, added bool) {
	if s.events == nil {
		return
	}
	event := EventRemoved
	if added {
		event = EventAdded
	}
	payload, _ := json.Marshal(map[string]string{"marketId": id})
	s.events.Publish(event, payload)
}
