package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.MongoDatabase != "scorebase" {
		t.Fatalf("unexpected MongoDatabase: %q", cfg.MongoDatabase)
	}
	if cfg.PriorityCacheTTL != 5*time.Minute {
		t.Fatalf("unexpected PriorityCacheTTL: %s", cfg.PriorityCacheTTL)
	}
	if cfg.ProviderRatePerSecond != 10 {
		t.Fatalf("unexpected ProviderRatePerSecond: %v", cfg.ProviderRatePerSecond)
	}
	if cfg.SyncWorkers != 4 {
		t.Fatalf("unexpected SyncWorkers: %d", cfg.SyncWorkers)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_ProviderRequiresTokenWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SPORTSDATA_ENABLED", "true")
	t.Setenv("SPORTSDATA_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SPORTSDATA_ENABLED=true without SPORTSDATA_TOKEN")
	}
}

func TestLoad_ProviderConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SPORTSDATA_ENABLED", "true")
	t.Setenv("SPORTSDATA_TOKEN", "token-123")
	t.Setenv("SPORTSDATA_TIMEOUT", "30s")
	t.Setenv("SPORTSDATA_MAX_RETRIES", "3")
	t.Setenv("SPORTSDATA_RATE_PER_SECOND", "2.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ProviderToken != "token-123" {
		t.Fatalf("unexpected ProviderToken")
	}
	if cfg.ProviderTimeout != 30*time.Second {
		t.Fatalf("unexpected ProviderTimeout: %s", cfg.ProviderTimeout)
	}
	if cfg.ProviderMaxRetries != 3 {
		t.Fatalf("unexpected ProviderMaxRetries: %d", cfg.ProviderMaxRetries)
	}
	if cfg.ProviderRatePerSecond != 2.5 {
		t.Fatalf("unexpected ProviderRatePerSecond: %v", cfg.ProviderRatePerSecond)
	}
}

func TestLoad_InvalidDurationRejected(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PRIORITY_CACHE_TTL", "five minutes")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid PRIORITY_CACHE_TTL")
	}
}

func TestParseLogLevel(t *testing.T) {
	if parseLogLevel("debug").String() != "debug" {
		t.Fatalf("expected debug level")
	}
	if parseLogLevel("unknown").String() != "info" {
		t.Fatalf("expected fallback to info level")
	}
}
