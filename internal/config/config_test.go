package config

import (
	"strings"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			"unknown backend",
			func(c *Config) { c.Storage.Backend = "sqlite" },
			"storage: unknown backend",
		},
		{
			"file backend without path",
			func(c *Config) { c.Storage.Path = " " },
			"storage: path must not be empty",
		},
		{
			"bad port",
			func(c *Config) { c.Server.Port = 0 },
			"server: port",
		},
		{
			"bad log level",
			func(c *Config) { c.LogLevel = "verbose" },
			"unknown log_level",
		},
		{
			"redis backend without addr",
			func(c *Config) { c.Storage.Backend = "redis"; c.Redis.Addr = "" },
			"redis: addr",
		},
		{
			"archive enabled without bucket",
			func(c *Config) { c.Archive.Enabled = true; c.Archive.Bucket = "" },
			"archive: bucket",
		},
	}

	for _, c := range cases {
		cfg := Defaults()
		c.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: Validate passed, want error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: err = %v, want mention of %q", c.name, err, c.want)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRADEX_STORAGE_BACKEND", "memory")
	t.Setenv("TRADEX_SERVER_PORT", "9090")
	t.Setenv("TRADEX_SERVER_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TRADEX_ARCHIVE_INTERVAL", "30m")
	t.Setenv("TRADEX_MOCK_ZERO_DELAY", "true")

	cfg := Defaults()
	applyEnvOverrides(&cfg)

	if cfg.Storage.Backend != "memory" {
		t.Errorf("backend = %q", cfg.Storage.Backend)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "https://b.example" {
		t.Errorf("cors = %v", cfg.Server.CORSOrigins)
	}
	if cfg.Archive.Interval.Minutes() != 30 {
		t.Errorf("interval = %v", cfg.Archive.Interval.Duration)
	}
	if !cfg.Mock.ZeroDelay {
		t.Error("zero delay override ignored")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != "file" || cfg.Server.Port != 8080 {
		t.Errorf("cfg = %+v", cfg)
	}
}
