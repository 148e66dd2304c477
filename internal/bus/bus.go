// Package bus is an in-process pub/sub fan-out for store change events.
// Producers and consumers live in the same process here, so channels replace
// the external broker a multi-process deployment would need.
package bus

import (
	"log/slog"
	"sync"
)

// Message is one published event.
type Message struct {
	Event   string
	Payload []byte
}

// Bus fans published messages out to every subscriber. Publish never blocks:
// a subscriber whose buffer is full drops the message and the drop is
// logged.
type Bus struct {
	logger *slog.Logger

	mu     sync.RWMutex
	subs   map[chan Message]struct{}
	closed bool
}

// subBuffer is the per-subscriber channel capacity.
const subBuffer = 64

// New creates an empty Bus.
func New(logger *slog.Logger) *Bus {
	return &Bus{
		logger: logger.With(slog.String("component", "bus")),
		subs:   make(map[chan Message]struct{}),
	}
}

// Publish sends the event to all current subscribers without blocking.
func (b *Bus) Publish(event string, payload []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	msg := Message{Event: event, Payload: payload}
	for ch := range b.subs {
		select {
		case ch <- msg:
		default:
			b.logger.Warn("bus: subscriber full, dropping event",
				slog.String("event", event))
		}
	}
}

// Subscribe registers a new subscriber and returns its channel plus an
// unsubscribe function. The channel is closed on unsubscribe and on Close.
func (b *Bus) Subscribe() (<-chan Message, func()) {
	ch := make(chan Message, subBuffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			if _, ok := b.subs[ch]; ok {
				delete(b.subs, ch)
				close(ch)
			}
			b.mu.Unlock()
		})
	}
	return ch, unsubscribe
}

// Close shuts the bus down and closes every subscriber channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
