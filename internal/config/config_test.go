package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected default addr %q", cfg.HTTPAddr)
	}
	if cfg.StoreBackend != "file" {
		t.Fatalf("unexpected default backend %q", cfg.StoreBackend)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected default shutdown timeout %v", cfg.ShutdownTimeout)
	}
	if len(cfg.ExpenseCategories) == 0 {
		t.Fatalf("expected default expense categories")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("REDIS_DB", "4")
	t.Setenv("EXPENSE_CATEGORIES", "Rent, Fuel ,")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("expected override addr, got %q", cfg.HTTPAddr)
	}
	if cfg.StoreBackend != "redis" {
		t.Fatalf("expected redis backend, got %q", cfg.StoreBackend)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.RedisDB != 4 {
		t.Fatalf("expected redis db 4, got %d", cfg.RedisDB)
	}
	if len(cfg.ExpenseCategories) != 2 || cfg.ExpenseCategories[1] != "Fuel" {
		t.Fatalf("expected trimmed category list, got %v", cfg.ExpenseCategories)
	}
}
