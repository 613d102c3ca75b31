package config_test

import (
	"testing"
	"time"

	"github.com/martin00001313/TransactionProcessing/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.FreezeOnLock {
		t.Fatal("freeze-on-lock must default to off")
	}
	if cfg.StrictDisputes {
		t.Fatal("strict disputes must default to off")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.IdempotencyTTL != 24*time.Hour {
		t.Fatalf("expected default idempotency TTL 24h, got %v", cfg.IdempotencyTTL)
	}
	if cfg.DatabaseURL != "" {
		t.Fatal("snapshot store must be disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FREEZE_ON_LOCK", "true")
	t.Setenv("STRICT_DISPUTES", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_READ_TIMEOUT", "5s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if !cfg.FreezeOnLock || !cfg.StrictDisputes {
		t.Fatal("policy flags must be read from the environment")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.HTTPReadTimeout != 5*time.Second {
		t.Fatalf("expected read timeout 5s, got %v", cfg.HTTPReadTimeout)
	}
}
