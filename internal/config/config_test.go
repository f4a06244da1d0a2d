package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Timezone != "UTC" {
		t.Fatalf("timezone = %q, want UTC", cfg.Server.Timezone)
	}
	if cfg.CacheTTL() != time.Minute {
		t.Fatalf("cache ttl = %v, want 1m", cfg.CacheTTL())
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: 9090
  timezone: Europe/London
  cache_ttl_seconds: 30
database:
  path: /tmp/test.db
auth:
  secret_key: filesecret
  cookie_secure: true
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Timezone != "Europe/London" {
		t.Fatalf("timezone = %q", cfg.Server.Timezone)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Fatalf("db path = %q", cfg.Database.Path)
	}
	if cfg.Auth.SecretKey != "filesecret" || !cfg.Auth.CookieSecure {
		t.Fatalf("auth config not applied: %+v", cfg.Auth)
	}
	if cfg.CacheTTL() != 30*time.Second {
		t.Fatalf("cache ttl = %v, want 30s", cfg.CacheTTL())
	}
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("SHIFTCOACH_PORT", "7070")
	t.Setenv("SHIFTCOACH_SECRET_KEY", "envsecret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Fatalf("port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.Auth.SecretKey != "envsecret" {
		t.Fatalf("secret = %q, want env override", cfg.Auth.SecretKey)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("SHIFTCOACH_PORT", "99999")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for out-of-range port")
	}
}
