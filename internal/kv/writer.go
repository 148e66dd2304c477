// Package kv provides the write queue that serializes store persistence
// through a domain.KVStore key.
package kv

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// writeTimeout bounds a single backend write.
const writeTimeout = 5 * time.Second

// Writer is a per-key write queue. Callers enqueue whole-value snapshots and
// return immediately; a single goroutine applies them to the backing store.
// Pending values coalesce, so the last enqueued snapshot always wins and
// overlapping writers can never interleave into a lost update. Write errors
// are logged and dropped, matching the stores' fire-and-forget contract.
type Writer struct {
	store  domainKV
	key    string
	logger *slog.Logger

	mu      sync.Mutex
	pending *string
	closed  bool

	kick chan struct{}
	done chan struct{}
}

// domainKV is the subset of domain.KVStore the writer needs. Declared
// locally so the package has no import cycle with domain consumers.
type domainKV interface {
	Set(ctx context.Context, key, value string) error
}

// NewWriter creates a Writer for one storage key and starts its goroutine.
func NewWriter(store domainKV, key string, logger *slog.Logger) *Writer {
	w := &Writer{
		store:  store,
		key:    key,
		logger: logger.With(slog.String("component", "kv_writer"), slog.String("key", key)),
		kick:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w
}

// Enqueue replaces the pending snapshot for the key. It never blocks. Calls
// after Close are dropped.
func (w *Writer) Enqueue(value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending = &value

	// Non-blocking kick under the lock so it can never race the close.
	select {
	case w.kick <- struct{}{}:
	default:
		// A drain is already scheduled; it will pick up the new value.
	}
}

// Close flushes any pending write and stops the goroutine. Safe to call more
// than once.
func (w *Writer) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.kick)
	}
	w.mu.Unlock()

	<-w.done
}

func (w *Writer) run() {
	defer close(w.done)
	for range w.kick {
		w.drain()
	}
	// Final drain covers a value enqueued just before Close.
	w.drain()
}

// drain writes pending snapshots until none remain. Re-checking after each
// write keeps the last enqueued value authoritative.
func (w *Writer) drain() {
	for {
		w.mu.Lock()
		p := w.pending
		w.pending = nil
		w.mu.Unlock()

		if p == nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := w.store.Set(ctx, w.key, *p); err != nil {
			w.logger.Warn("kv: write failed", slog.String("error", err.Error()))
		}
		cancel()
	}
}
