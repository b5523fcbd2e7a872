package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Ratio != 1 || cfg.Defaults.Direction != "vertical" {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	if cfg.Colors.Colored != "#4a7ba6" {
		t.Errorf("colors = %+v", cfg.Colors)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("store backend = %q", cfg.Store.Backend)
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	content := `
[defaults]
min = 15.0
max = 50.0
ratio = 2.0

[colors]
colored = "#112233"

[server]
listen = ":9000"

[store]
backend = "redis"

[store.redis]
addr = "redis:6379"
db = 2
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.MinCm != 15 || cfg.Defaults.MaxCm != 50 || cfg.Defaults.Ratio != 2 {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	// Unset values keep their defaults.
	if cfg.Defaults.Direction != "vertical" {
		t.Errorf("direction = %q, want vertical", cfg.Defaults.Direction)
	}
	if cfg.Colors.Colored != "#112233" || cfg.Colors.White != "#f5f0e8" {
		t.Errorf("colors = %+v", cfg.Colors)
	}
	if cfg.Server.Listen != ":9000" {
		t.Errorf("listen = %q", cfg.Server.Listen)
	}
	if cfg.Store.Backend != "redis" || cfg.Store.Redis.Addr != "redis:6379" || cfg.Store.Redis.DB != 2 {
		t.Errorf("store = %+v", cfg.Store)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("defaults = {"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed config should fail")
	}
}
