// Package app provides the top-level application lifecycle for the TradeX
// service. It wires together all dependencies (persistence, state stores,
// gateways, the event hub, and the HTTP server), hydrates the stores, and
// blocks until the context is cancelled.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tradex-app/tradex/internal/config"
	"github.com/tradex-app/tradex/internal/server"
	"github.com/tradex-app/tradex/internal/server/handler"
)

// App is the root application object. It owns the configuration, logger, and
// a list of cleanup functions that are called in reverse order on shutdown.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	closers []func()
}

// New creates a new App from the given configuration and logger.
func New(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "app")),
	}
}

// Run is the main entry point. It wires all dependencies, hydrates the state
// stores from persistence, starts the API server and event hub, and blocks
// until the context is cancelled. On return it runs all registered cleanup
// functions via Close.
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "starting application",
		slog.String("storage_backend", a.cfg.Storage.Backend),
		slog.String("log_level", a.cfg.LogLevel),
	)

	deps, cleanup, err := Wire(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("app: wire dependencies: %w", err)
	}
	a.closers = append(a.closers, cleanup)

	// Hydrate state stores before serving traffic. Each store falls back
	// to its zero state on missing or corrupt data.
	deps.Sessions.Hydrate(ctx)
	deps.Onboarding.Hydrate(ctx)
	deps.Languages.Init(ctx)
	deps.Bookmarks.Hydrate(ctx)

	srv := server.New(server.Config{
		Port:        a.cfg.Server.Port,
		CORSOrigins: a.cfg.Server.CORSOrigins,
		APIKey:      a.cfg.Server.APIKey,
	}, server.Handlers{
		Health:     handler.NewHealthHandler(),
		Auth:       handler.NewAuthHandler(deps.Sessions, a.logger),
		Markets:    handler.NewMarketHandler(deps.Catalog, a.logger),
		Bookmarks:  handler.NewBookmarkHandler(deps.Bookmarks, deps.Catalog, a.logger),
		Languages:  handler.NewLanguageHandler(deps.Languages, a.logger),
		Onboarding: handler.NewOnboardingHandler(deps.Onboarding, a.logger),
	}, deps.Hub, a.logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Start()
	})

	g.Go(func() error {
		deps.Hub.Run(gctx)
		return nil
	})

	if deps.Archiver != nil {
		g.Go(func() error {
			if err := deps.Archiver.Run(gctx); err != nil && err != context.Canceled {
				return fmt.Errorf("app: archiver: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return ctx.Err()
}

// Close tears down all resources in reverse registration order. It is safe to
// call multiple times; subsequent calls are no-ops.
func (a *App) Close() {
	a.logger.Info("shutting down application")
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
