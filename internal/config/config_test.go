package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"iljeong/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file errored: %s", err)
	}
	if cfg.Store != config.StoreFile {
		t.Errorf("default store should be file, got '%s'", cfg.Store)
	}
	if cfg.PollSeconds != 1 {
		t.Errorf("default poll interval should be 1s, got %d", cfg.PollSeconds)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "store: api\napi_url: http://example.test:3000\npoll_seconds: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load errored: %s", err)
	}
	if cfg.Store != config.StoreAPI || cfg.APIURL != "http://example.test:3000" || cfg.PollSeconds != 5 {
		t.Fatalf("Load returned %+v", cfg)
	}
	// unset fields get defaults
	if cfg.EventsPath == "" {
		t.Error("events path not defaulted")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store: file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ILJEONG_STORE", "api")
	t.Setenv("ILJEONG_API_URL", "http://override.test")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load errored: %s", err)
	}
	if cfg.Store != config.StoreAPI || cfg.APIURL != "http://override.test" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestNormalize(t *testing.T) {
	cfg := config.Config{Store: "weird", PollSeconds: -3}
	cfg.Normalize()
	if cfg.Store != config.StoreFile {
		t.Errorf("unknown store should fall back to file, got '%s'", cfg.Store)
	}
	if cfg.PollSeconds != 1 {
		t.Errorf("non-positive poll interval should default, got %d", cfg.PollSeconds)
	}
}
