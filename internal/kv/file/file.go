// Package file implements domain.KVStore as a single JSON file on disk, the
// stand-in for device-local storage when the service runs without Redis or
// Postgres.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tradex-app/tradex/internal/domain"
)

// Store persists a string map to one JSON file. Every mutation rewrites the
// file through a temp-file rename so a crash mid-write never truncates
// existing state.
type Store struct {
	path string

	mu   sync.Mutex
	data map[string]string
}

// Open loads the store at path, creating parent directories as needed. A
// missing file yields an empty store; a corrupt file is an error so the
// operator can decide what to do with it.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("kv/file: mkdir %s: %w", filepath.Dir(path), err)
	}

	s := &Store{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("kv/file: read %s: %w", path, err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("kv/file: parse %s: %w", path, err)
	}
	return s, nil
}

// Get returns the value for key, or domain.ErrNotFound.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

// Set stores value under key and flushes the file.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flushLocked()
}

// Delete removes key and flushes the file.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flushLocked()
}

// flushLocked writes the map to disk. Caller holds s.mu.
func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("kv/file: marshal: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("kv/file: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("kv/file: rename %s: %w", s.path, err)
	}
	return nil
}

// Compile-time interface check.
var _ domain.KVStore = (*Store)(nil)
