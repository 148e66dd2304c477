package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tradex-app/tradex/internal/domain"
)

// LanguageService defines what the language handler needs from the store.
type LanguageService interface {
	Languages() []domain.Language
	Current() domain.Language
	Translations() domain.Translations
	ChangeLanguage(ctx context.Context, code string) error
	Loading() bool
}

// LanguageHandler serves the localization endpoints.
type LanguageHandler struct {
	languages LanguageService
	logger    *slog.Logger
}

// NewLanguageHandler creates a LanguageHandler.
func NewLanguageHandler(languages LanguageService, logger *slog.Logger) *LanguageHandler {
	return &LanguageHandler{languages: languages, logger: logger}
}

// ListLanguages returns the catalog and the current selection.
// GET /api/languages
func (h *LanguageHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"languages": h.languages.Languages(),
		"current":   h.languages.Current(),
		"loading":   h.languages.Loading(),
	})
}

// GetTranslations returns the active translation map.
// GET /api/translations
func (h *LanguageHandler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"language":     h.languages.Current().Code,
		"translations": h.languages.Translations(),
	})
}

type changeLanguageRequest struct {
	Code string `json:"code"`
}

// ChangeLanguage switches the selected language.
// PUT /api/language
func (h *LanguageHandler) ChangeLanguage(w http.ResponseWriter, r *http.Request) {
	var req changeLanguageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.languages.ChangeLanguage(r.Context(), req.Code); err != nil {
		if errors.Is(err, domain.ErrUnknownLanguage) {
			writeError(w, http.StatusBadRequest, "unknown language code")
			return
		}
		h.logger.ErrorContext(r.Context(), "handler: change language failed",
			slog.String("code", req.Code),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to change language")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"current": h.languages.Current(),
	})
}
