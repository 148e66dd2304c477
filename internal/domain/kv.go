package domain

import "context"

// KVStore is the device-local key-value persistence adapter. Each state
// store exclusively owns its keys; no two stores share a key. Get returns
// ErrNotFound when the key is absent. Writes to the same key are
// last-write-wins; callers that need deterministic ordering serialize
// through a write queue.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
