package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tradex-app/tradex/internal/domain"
)

// SessionService defines what the auth handler needs from the session
// store. Declared locally so the handler does not depend on the concrete
// store implementation.
type SessionService interface {
	Hydrated() bool
	Current() (domain.User, bool)
	SendOTP(ctx context.Context, phone string) (bool, error)
	VerifyOTP(ctx context.Context, phone, code string) (bool, error)
	Logout()
}

// AuthHandler serves login/OTP/session endpoints.
type AuthHandler struct {
	sessions SessionService
	logger   *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(sessions SessionService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, logger: logger}
}

type otpRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code,omitempty"`
}

// SendOTP validates the phone and triggers an OTP send.
// POST /api/auth/otp
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, err := h.sessions.SendOTP(r.Context(), req.Phone)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPhone) {
			writeError(w, http.StatusBadRequest, "invalid phone number")
			return
		}
		h.logger.ErrorContext(r.Context(), "handler: send otp failed",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to send otp")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"sent": ok})
}

// VerifyOTP checks the code and establishes the session on success. A wrong
// code is a 200 with verified=false; the client shows the message.
// POST /api/auth/otp/verify
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, err := h.sessions.VerifyOTP(r.Context(), req.Phone, req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPhone) {
			writeError(w, http.StatusBadRequest, "invalid phone number")
			return
		}
		h.logger.ErrorContext(r.Context(), "handler: verify otp failed",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to verify otp")
		return
	}

	resp := map[string]any{"verified": ok}
	if ok {
		if user, loggedIn := h.sessions.Current(); loggedIn {
			resp["user"] = user
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Logout clears the session.
// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	writeJSON(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

// GetSession returns the current session. While the store is still
// hydrating the client must treat the session as unknown, so the response
// carries the hydrated flag alongside the user.
// GET /api/auth/session
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"hydrated": h.sessions.Hydrated(),
	}
	if user, ok := h.sessions.Current(); ok {
		resp["user"] = user
	} else {
		resp["user"] = nil
	}
	writeJSON(w, http.StatusOK, resp)
}
