package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version: "2.0"
mode: release
server:
  listen: ":9443"
  allow_origins:
    - "https://dashboard.example.com"
graph:
  base_url: "https://graph.example.com/v1.0"
  timeout_seconds: 10
cache:
  user_cache_size: 64
certificate:
  cert: server.crt
  key: server.key
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != "release" {
		t.Errorf("Mode = %q", cfg.Mode)
	}
	if cfg.Server.Listen != ":9443" {
		t.Errorf("Listen = %q", cfg.Server.Listen)
	}
	if cfg.Graph.BaseURL != "https://graph.example.com/v1.0" {
		t.Errorf("BaseURL = %q", cfg.Graph.BaseURL)
	}
	if cfg.Graph.Timeout() != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.Graph.Timeout())
	}
	if cfg.Cache.UserCacheSize != 64 {
		t.Errorf("UserCacheSize = %d", cfg.Cache.UserCacheSize)
	}
	if cfg.Certificate.Cert != "server.crt" || cfg.Certificate.Key != "server.key" {
		t.Errorf("Certificate = %+v", cfg.Certificate)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "mode: dev\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Graph.BaseURL != defaultGraphBaseURL {
		t.Errorf("BaseURL default = %q", cfg.Graph.BaseURL)
	}
	if cfg.Graph.TimeoutSeconds != defaultGraphTimeout {
		t.Errorf("TimeoutSeconds default = %d", cfg.Graph.TimeoutSeconds)
	}
	if cfg.Cache.UserCacheSize != defaultUserCacheSize {
		t.Errorf("UserCacheSize default = %d", cfg.Cache.UserCacheSize)
	}
	if cfg.Server.Listen != defaultListenAddr {
		t.Errorf("Listen default = %q", cfg.Server.Listen)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "mode: [broken\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
