// Package session holds the authenticated user session and persists it
// through the key-value adapter.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/tradex-app/tradex/internal/domain"
	"github.com/tradex-app/tradex/internal/kv"
)

// StorageKey is the session store's exclusive key in the KV adapter.
const StorageKey = "auth-storage"

// envelope is the persisted session shape.
type envelope struct {
	User        *domain.User `json:"user"`
	IsFirstTime bool         `json:"isFirstTime"`
	SessionID   string       `json:"sessionId,omitempty"`
}

// Store is the session state store. Until Hydrate completes, Hydrated
// reports false and callers must treat the session as unknown — neither
// logged in nor logged out.
type Store struct {
	store  domain.KVStore
	writer *kv.Writer
	auth   domain.AuthGateway
	logger *slog.Logger

	mu          sync.RWMutex
	user        *domain.User
	isFirstTime bool
	sessionID   string
	hydrated    bool
}

// New creates a Store. Call Hydrate before reading session state and Close
// on shutdown to flush the pending write.
func New(store domain.KVStore, auth domain.AuthGateway, logger *slog.Logger) *Store {
	return &Store{
		store:       store,
		writer:      kv.NewWriter(store, StorageKey, logger),
		auth:        auth,
		logger:      logger.With(slog.String("component", "session_store")),
		isFirstTime: true,
	}
}

// Hydrate loads the persisted envelope. Read or parse failures are logged
// and treated as an absent session; hydration always completes.
func (s *Store) Hydrate(ctx context.Context) {
	raw, err := s.store.Get(ctx, StorageKey)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.hydrated = true }()

	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("session: read failed, starting logged out",
				slog.String("error", err.Error()))
		}
		return
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		s.logger.Warn("session: corrupt envelope, starting logged out",
			slog.String("error", err.Error()))
		return
	}

	s.user = env.User
	s.isFirstTime = env.IsFirstTime
	s.sessionID = env.SessionID
}

// Hydrated reports whether the persisted state has been loaded.
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Current returns the logged-in user, if any.
func (s *Store) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// SendOTP validates the phone number and asks the gateway to send a code.
func (s *Store) SendOTP(ctx context.Context, phone string) (bool, error) {
	if !domain.IsValidPhoneNumber(phone) {
		return false, domain.ErrInvalidPhone
	}
	ok, err := s.auth.SendOTP(ctx, phone)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// VerifyOTP checks the code with the gateway and, on success, establishes
// the session. The wrong code is not an error; it returns (false, nil) and
// the UI decides what to show.
func (s *Store) VerifyOTP(ctx context.Context, phone, code string) (bool, error) {
	if !domain.IsValidPhoneNumber(phone) {
		return false, domain.ErrInvalidPhone
	}

	ok, err := s.auth.VerifyOTP(ctx, phone, code)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	s.SetUser(domain.User{PhoneNumber: phone, IsLoggedIn: true})
	return true, nil
}

// SetUser replaces the in-memory user and enqueues the persist. It returns
// immediately; a failed write is logged by the queue, never surfaced.
func (s *Store) SetUser(user domain.User) {
	s.mu.Lock()
	u := user
	s.user = &u
	s.isFirstTime = false
	if s.sessionID == "" {
		s.sessionID = uuid.NewString()
	}
	env := s.envelopeLocked()
	s.mu.Unlock()

	s.persist(env)
}

// Logout clears the user and enqueues the persist, same fire-and-forget
// semantics as SetUser.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.sessionID = ""
	env := s.envelopeLocked()
	s.mu.Unlock()

	s.persist(env)
}

// Close flushes the write queue.
func (s *Store) Close() {
	s.writer.Close()
}

// envelopeLocked snapshots the persisted shape. Caller holds s.mu.
func (s *Store) envelopeLocked() envelope {
	return envelope{
		User:        s.user,
		IsFirstTime: s.isFirstTime,
		SessionID:   s.sessionID,
	}
}

func (s *Store) persist(env envelope) {
	raw, err := json.Marshal(env)
	if err != nil {
		s.logger.Warn("session: marshal failed", slog.String("error", err.Error()))
		return
	}
	s.writer.Enqueue(string(raw))
}
