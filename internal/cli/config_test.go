package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("default backend = %q, want file", cfg.Store.Backend)
	}
	if cfg.Scripture.Translation != "web" {
		t.Errorf("default translation = %q, want web", cfg.Scripture.Translation)
	}
	if cfg.Layout.ProminenceLine != 16 {
		t.Errorf("default prominence line = %v, want 16", cfg.Layout.ProminenceLine)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[layout]
prominence_line = 24.0
card_height = 200.0

[store]
backend = "redis"
redis_addr = "localhost:6379"

[scripture]
translation = "kjv"
cache_ttl_days = 30
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Layout.ProminenceLine != 24 {
		t.Errorf("prominence line = %v, want 24", cfg.Layout.ProminenceLine)
	}
	if cfg.Layout.CardHeight != 200 {
		t.Errorf("card height = %v, want 200", cfg.Layout.CardHeight)
	}
	// Unset layout keys keep their defaults.
	if cfg.Layout.AngledTiltDegrees != 55 {
		t.Errorf("tilt = %v, want default 55", cfg.Layout.AngledTiltDegrees)
	}
	if cfg.Store.Backend != "redis" || cfg.Store.RedisAddr != "localhost:6379" {
		t.Errorf("store config not applied: %+v", cfg.Store)
	}
	if cfg.Scripture.Translation != "kjv" || cfg.Scripture.CacheTTLDays != 30 {
		t.Errorf("scripture config not applied: %+v", cfg.Scripture)
	}
}

func TestLoadConfigRejectsInvalidLayout(t *testing.T) {
	path := writeConfig(t, `
[layout]
card_height = -1.0
`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid layout constants")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[layout]
prominence_lin = 24.0
`)
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Errorf("expected unknown key error, got %v", err)
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Backend = "sqlite"
	if _, err := cfg.OpenStore(t.Context()); err == nil {
		t.Error("expected error for unknown backend")
	}
}
