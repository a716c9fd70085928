package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("addr got=%q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Auth.AccessTokenTTLSeconds != 3600 {
		t.Fatalf("access ttl got=%d, want 3600", cfg.Auth.AccessTokenTTLSeconds)
	}
	if cfg.Upstream.BaseURL != "" {
		t.Fatalf("upstream got=%q, want empty", cfg.Upstream.BaseURL)
	}
}

func TestLoadFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := []byte(`
env: staging
http:
  addr: ":9000"
auth:
  access_token_ttl_seconds: 120
upstream:
  base_url: "https://ideas.example.com"
`)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "7777")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "staging" {
		t.Fatalf("env got=%q, want staging", cfg.Env)
	}
	// Env beats the file.
	if cfg.HTTP.Addr != ":7777" {
		t.Fatalf("addr got=%q, want :7777", cfg.HTTP.Addr)
	}
	if cfg.Auth.AccessTokenTTLSeconds != 120 {
		t.Fatalf("access ttl got=%d, want 120", cfg.Auth.AccessTokenTTLSeconds)
	}
	if cfg.Upstream.BaseURL != "https://ideas.example.com" {
		t.Fatalf("upstream got=%q", cfg.Upstream.BaseURL)
	}
}
