package handler

import (
	"log/slog"
	"net/http"
)

// OnboardingService defines what the onboarding handler needs from the
// store.
type OnboardingService interface {
	Completed() bool
	MarkComplete()
}

// OnboardingHandler serves the onboarding flag endpoints.
type OnboardingHandler struct {
	onboarding OnboardingService
	logger     *slog.Logger
}

// NewOnboardingHandler creates an OnboardingHandler.
func NewOnboardingHandler(onboarding OnboardingService, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{onboarding: onboarding, logger: logger}
}

// GetOnboarding reports whether onboarding has been completed.
// GET /api/onboarding
func (h *OnboardingHandler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"completed": h.onboarding.Completed(),
	})
}

// CompleteOnboarding marks onboarding as done.
// POST /api/onboarding/complete
func (h *OnboardingHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	h.onboarding.MarkComplete()
	writeJSON(w, http.StatusOK, map[string]bool{"completed": true})
}
