// Package server assembles the HTTP + WebSocket API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tradex-app/tradex/internal/server/handler"
	"github.com/tradex-app/tradex/internal/server/middleware"
	"github.com/tradex-app/tradex/internal/server/ws"
)

// Config holds the HTTP server configuration.
type Config struct {
	Port        int
	CORSOrigins []string
	APIKey      string // if empty, authentication is disabled
}

// Handlers aggregates all HTTP handlers that the server registers.
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Markets    *handler.MarketHandler
	Bookmarks  *handler.BookmarkHandler
	Languages  *handler.LanguageHandler
	Onboarding *handler.OnboardingHandler
}

// Server is the headless API server for the TradeX app.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a Server with all routes registered and the middleware chain
// (auth, logging, CORS) applied.
func New(cfg Config, handlers Handlers, wsHub *ws.Hub, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	// Health check (no auth decisions depend on it).
	mux.HandleFunc("GET /api/health", handlers.Health.HealthCheck)

	// Auth / session.
	mux.HandleFunc("POST /api/auth/otp", handlers.Auth.SendOTP)
	mux.HandleFunc("POST /api/auth/otp/verify", handlers.Auth.VerifyOTP)
	mux.HandleFunc("POST /api/auth/logout", handlers.Auth.Logout)
	mux.HandleFunc("GET /api/auth/session", handlers.Auth.GetSession)

	// Markets.
	mux.HandleFunc("GET /api/markets", handlers.Markets.ListMarkets)
	mux.HandleFunc("GET /api/markets/{id}", handlers.Markets.GetMarket)

	// Watchlist.
	mux.HandleFunc("GET /api/bookmarks", handlers.Bookmarks.ListBookmarks)
	mux.HandleFunc("POST /api/bookmarks/{id}/toggle", handlers.Bookmarks.ToggleBookmark)

	// Localization.
	mux.HandleFunc("GET /api/languages", handlers.Languages.ListLanguages)
	mux.HandleFunc("GET /api/translations", handlers.Languages.GetTranslations)
	mux.HandleFunc("PUT /api/language", handlers.Languages.ChangeLanguage)

	// Onboarding.
	mux.HandleFunc("GET /api/onboarding", handlers.Onboarding.GetOnboarding)
	mux.HandleFunc("POST /api/onboarding/complete", handlers.Onboarding.CompleteOnboarding)

	// WebSocket store-event stream.
	if wsHub != nil {
		mux.HandleFunc("GET /ws", wsHub.HandleWS)
	}

	var h http.Handler = mux
	h = middleware.Auth(cfg.APIKey)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.CORS(cfg.CORSOrigins)(h)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{httpServer: srv, logger: logger}
}

// Start begins listening for HTTP requests. It blocks until the server
// encounters an error or is shut down.
func (s *Server) Start() error {
	s.logger.Info("server: starting", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: listen: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server: shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
