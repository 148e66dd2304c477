package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies TRADEX_* environment variable overrides, and
// returns the final Config. A missing file is not an error; the defaults plus
// environment overrides are used. The returned Config has NOT been validated;
// the caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known TRADEX_* environment variables and
// overwrites the corresponding Config fields when a variable is set (i.e. not
// empty). This lets operators inject secrets at deploy time without touching
// the TOML file.
func applyEnvOverrides(cfg *Config) {
	// ── Server ──
	setInt(&cfg.Server.Port, "TRADEX_SERVER_PORT")
	setStringSlice(&cfg.Server.CORSOrigins, "TRADEX_SERVER_CORS_ORIGINS")
	setStr(&cfg.Server.APIKey, "TRADEX_SERVER_API_KEY")

	// ── Storage ──
	setStr(&cfg.Storage.Backend, "TRADEX_STORAGE_BACKEND")
	setStr(&cfg.Storage.Path, "TRADEX_STORAGE_PATH")

	// ── Redis ──
	setStr(&cfg.Redis.Addr, "TRADEX_REDIS_ADDR")
	setStr(&cfg.Redis.Password, "TRADEX_REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "TRADEX_REDIS_DB")
	setInt(&cfg.Redis.PoolSize, "TRADEX_REDIS_POOL_SIZE")
	setInt(&cfg.Redis.MaxRetries, "TRADEX_REDIS_MAX_RETRIES")
	setBool(&cfg.Redis.TLSEnabled, "TRADEX_REDIS_TLS_ENABLED")

	// ── Postgres ──
	setStr(&cfg.Postgres.DSN, "TRADEX_POSTGRES_DSN")
	setStr(&cfg.Postgres.Host, "TRADEX_POSTGRES_HOST")
	setInt(&cfg.Postgres.Port, "TRADEX_POSTGRES_PORT")
	setStr(&cfg.Postgres.Database, "TRADEX_POSTGRES_DATABASE")
	setStr(&cfg.Postgres.User, "TRADEX_POSTGRES_USER")
	setStr(&cfg.Postgres.Password, "TRADEX_POSTGRES_PASSWORD")
	setStr(&cfg.Postgres.SSLMode, "TRADEX_POSTGRES_SSL_MODE")
	setInt(&cfg.Postgres.PoolMaxConns, "TRADEX_POSTGRES_POOL_MAX_CONNS")
	setInt(&cfg.Postgres.PoolMinConns, "TRADEX_POSTGRES_POOL_MIN_CONNS")

	// ── Archive ──
	setBool(&cfg.Archive.Enabled, "TRADEX_ARCHIVE_ENABLED")
	setStr(&cfg.Archive.Endpoint, "TRADEX_ARCHIVE_ENDPOINT")
	setStr(&cfg.Archive.Region, "TRADEX_ARCHIVE_REGION")
	setStr(&cfg.Archive.Bucket, "TRADEX_ARCHIVE_BUCKET")
	setStr(&cfg.Archive.AccessKey, "TRADEX_ARCHIVE_ACCESS_KEY")
	setStr(&cfg.Archive.SecretKey, "TRADEX_ARCHIVE_SECRET_KEY")
	setBool(&cfg.Archive.UseSSL, "TRADEX_ARCHIVE_USE_SSL")
	setBool(&cfg.Archive.ForcePathStyle, "TRADEX_ARCHIVE_FORCE_PATH_STYLE")
	setDuration(&cfg.Archive.Interval, "TRADEX_ARCHIVE_INTERVAL")

	// ── Mock ──
	setBool(&cfg.Mock.ZeroDelay, "TRADEX_MOCK_ZERO_DELAY")

	// ── Top-level ──
	setStr(&cfg.LogLevel, "TRADEX_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
		}
	}
}
