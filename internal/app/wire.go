package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	s3blob "github.com/tradex-app/tradex/internal/blob/s3"
	"github.com/tradex-app/tradex/internal/bus"
	"github.com/tradex-app/tradex/internal/catalog"
	"github.com/tradex-app/tradex/internal/config"
	"github.com/tradex-app/tradex/internal/domain"
	"github.com/tradex-app/tradex/internal/gateway/mock"
	kvfile "github.com/tradex-app/tradex/internal/kv/file"
	kvmemory "github.com/tradex-app/tradex/internal/kv/memory"
	kvpostgres "github.com/tradex-app/tradex/internal/kv/postgres"
	kvredis "github.com/tradex-app/tradex/internal/kv/redis"
	"github.com/tradex-app/tradex/internal/server/ws"
	"github.com/tradex-app/tradex/internal/store/bookmark"
	"github.com/tradex-app/tradex/internal/store/language"
	"github.com/tradex-app/tradex/internal/store/onboarding"
	"github.com/tradex-app/tradex/internal/store/session"
)

// Dependencies bundles every service object the application needs to run. It
// is constructed by Wire and torn down by the returned cleanup function.
type Dependencies struct {
	// Persistence
	KV domain.KVStore

	// Client state stores
	Sessions   *session.Store
	Onboarding *onboarding.Store
	Languages  *language.Store
	Bookmarks  *bookmark.Store

	// Static market data
	Catalog *catalog.Catalog

	// Event plumbing
	Bus *bus.Bus
	Hub *ws.Hub

	// Optional watchlist snapshot export
	Archiver *s3blob.Archiver
}

// Wire constructs all concrete dependency implementations from the given
// configuration and returns them together with a cleanup function that should
// be called on shutdown to release resources.
func Wire(ctx context.Context, cfg *config.Config) (*Dependencies, func(), error) {
	logger := slog.Default()

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := &Dependencies{}

	// --- Key-value persistence backend ---
	kvStore, err := wireKV(ctx, cfg, &closers)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	deps.KV = kvStore

	// --- Event bus ---
	deps.Bus = bus.New(logger)
	closers = append(closers, deps.Bus.Close)

	// --- Upstream gateways (stubbed) ---
	var authGW domain.AuthGateway
	var langGW domain.LanguageGateway
	if cfg.Mock.ZeroDelay {
		authGW = mock.NewAuthGatewayWithDelay(0)
		langGW = mock.NewLanguageGatewayWithDelay(0)
	} else {
		authGW = mock.NewAuthGateway()
		langGW = mock.NewLanguageGateway()
	}

	// --- Client state stores ---
	deps.Sessions = session.New(kvStore, authGW, logger)
	closers = append(closers, deps.Sessions.Close)

	deps.Onboarding = onboarding.New(kvStore, logger)
	closers = append(closers, deps.Onboarding.Close)

	deps.Languages = language.New(kvStore, langGW, logger)
	closers = append(closers, deps.Languages.Close)

	deps.Bookmarks = bookmark.New(kvStore, deps.Bus, logger)
	closers = append(closers, deps.Bookmarks.Close)

	// --- Market catalog ---
	deps.Catalog = catalog.New()

	// --- WebSocket hub ---
	deps.Hub = ws.NewHub(deps.Bus, logger)

	// --- Watchlist archiver (optional) ---
	if cfg.Archive.Enabled {
		blobClient, err := s3blob.New(ctx, s3blob.ClientConfig{
			Endpoint:       cfg.Archive.Endpoint,
			Region:         cfg.Archive.Region,
			Bucket:         cfg.Archive.Bucket,
			AccessKey:      cfg.Archive.AccessKey,
			SecretKey:      cfg.Archive.SecretKey,
			UseSSL:         cfg.Archive.UseSSL,
			ForcePathStyle: cfg.Archive.ForcePathStyle,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: s3: %w", err)
		}
		deps.Archiver = s3blob.NewArchiver(blobClient, deps.Bookmarks, cfg.Archive.Interval.Duration, logger)
	}

	return deps, cleanup, nil
}

// wireKV selects and constructs the key-value backend named by the config.
func wireKV(ctx context.Context, cfg *config.Config, closers *[]func()) (domain.KVStore, error) {
	switch strings.ToLower(cfg.Storage.Backend) {
	case "memory":
		return kvmemory.New(), nil

	case "file":
		store, err := kvfile.Open(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("wire: file store: %w", err)
		}
		return store, nil

	case "redis":
		store, err := kvredis.New(ctx, kvredis.Config{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			PoolSize:   cfg.Redis.PoolSize,
			MaxRetries: cfg.Redis.MaxRetries,
			TLSEnabled: cfg.Redis.TLSEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("wire: redis: %w", err)
		}
		*closers = append(*closers, func() { _ = store.Close() })
		return store, nil

	case "postgres":
		store, err := kvpostgres.New(ctx, kvpostgres.Config{
			DSN:      cfg.Postgres.DSN,
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			Database: cfg.Postgres.Database,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			SSLMode:  cfg.Postgres.SSLMode,
			MaxConns: cfg.Postgres.PoolMaxConns,
			MinConns: cfg.Postgres.PoolMinConns,
		})
		if err != nil {
			return nil, fmt.Errorf("wire: postgres: %w", err)
		}
		*closers = append(*closers, store.Close)
		return store, nil

	default:
		return nil, fmt.Errorf("wire: unknown storage backend %q", cfg.Storage.Backend)
	}
}
