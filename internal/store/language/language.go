// Package language holds the selected language, the language catalog, and
// the active translation map.
package language

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tradex-app/tradex/internal/domain"
	"github.com/tradex-app/tradex/internal/kv"
)

// StorageKey is the language store's exclusive key in the KV adapter. The
// persisted value is the raw language code, e.g. "hi".
const StorageKey = "@tradex_language"

// DefaultCode is the fallback language.
const DefaultCode = "en"

// Store is the language/translation state store.
type Store struct {
	store  domain.KVStore
	writer *kv.Writer
	gw     domain.LanguageGateway
	logger *slog.Logger

	mu           sync.RWMutex
	catalog      []domain.Language
	current      domain.Language
	translations domain.Translations
	loading      bool
}

// New creates a Store. Call Init before use and Close on shutdown.
func New(store domain.KVStore, gw domain.LanguageGateway, logger *slog.Logger) *Store {
	return &Store{
		store:        store,
		writer:       kv.NewWriter(store, StorageKey, logger),
		gw:           gw,
		logger:       logger.With(slog.String("component", "language_store")),
		translations: domain.Translations{},
		loading:      true,
	}
}

// Init runs the startup sequence in order: fetch the catalog, resolve the
// persisted code (default "en" if absent or unknown), fetch translations,
// set current state. Any failure falls back to the default language and its
// translations; loading always ends false.
func (s *Store) Init(ctx context.Context) {
	defer s.setLoading(false)

	catalog, err := s.gw.FetchAvailableLanguages(ctx)
	if err != nil {
		s.logger.Warn("language: catalog fetch failed, using default",
			slog.String("error", err.Error()))
		s.fallbackToDefault(ctx)
		return
	}
	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	code := DefaultCode
	raw, err := s.store.Get(ctx, StorageKey)
	if err == nil {
		if _, ok := findLanguage(catalog, raw); ok {
			code = raw
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Warn("language: read failed, using default",
			slog.String("error", err.Error()))
	}

	translations, err := s.gw.FetchTranslations(ctx, code)
	if err != nil {
		s.logger.Warn("language: translations fetch failed, using default",
			slog.String("error", err.Error()))
		s.fallbackToDefault(ctx)
		return
	}

	s.mu.Lock()
	if lang, ok := findLanguage(s.catalog, code); ok {
		s.current = lang
	}
	s.translations = translations
	s.mu.Unlock()
}

// ChangeLanguage switches to code. Unknown codes are a logged no-op error
// with no storage write. Loading is cleared in a defer so it never hangs.
func (s *Store) ChangeLanguage(ctx context.Context, code string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.RLock()
	lang, ok := findLanguage(s.catalog, code)
	s.mu.RUnlock()
	if !ok {
		s.logger.Warn("language: change to unknown code ignored",
			slog.String("code", code))
		return fmt.Errorf("language: change to %q: %w", code, domain.ErrUnknownLanguage)
	}

	translations, err := s.gw.FetchTranslations(ctx, code)
	if err != nil {
		return fmt.Errorf("language: fetch translations for %q: %w", code, err)
	}

	s.mu.Lock()
	s.current = lang
	s.translations = translations
	s.mu.Unlock()

	s.writer.Enqueue(code)
	return nil
}

// T looks up key in the active translation map. It returns the translation,
// else the first fallback if given, else the key verbatim. It never fails.
func (s *Store) T(key string, fallback ...string) string {
	s.mu.RLock()
	v, ok := s.translations[key]
	s.mu.RUnlock()

	if ok {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return key
}

// Current returns the selected language.
func (s *Store) Current() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Languages returns a copy of the loaded catalog.
func (s *Store) Languages() []domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Language, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Translations returns a copy of the active translation map.
func (s *Store) Translations() domain.Translations {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.Translations, len(s.translations))
	for k, v := range s.translations {
		out[k] = v
	}
	return out
}

// Loading reports whether an init or language change is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Close flushes the write queue.
func (s *Store) Close() {
	s.writer.Close()
}

// fallbackToDefault pins the store to English. The embedded English entry is
// used when even the catalog fetch failed.
func (s *Store) fallbackToDefault(ctx context.Context) {
	lang := domain.Language{Code: DefaultCode, Name: "English", NativeName: "English", Flag: "🇬🇧"}

	s.mu.RLock()
	if l, ok := findLanguage(s.catalog, DefaultCode); ok {
		lang = l
	}
	s.mu.RUnlock()

	translations, err := s.gw.FetchTranslations(ctx, DefaultCode)
	if err != nil {
		s.logger.Warn("language: default translations fetch failed",
			slog.String("error", err.Error()))
		translations = domain.Translations{}
	}

	s.mu.Lock()
	s.current = lang
	s.translations = translations
	s.mu.Unlock()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func findLanguage(catalog []domain.Language, code string) (domain.Language, bool) {
	for _, l := range catalog {
		if l.Code == code {
			return l, true
		}
	}
	return domain.Language{}, false
}
