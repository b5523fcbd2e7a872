// Package config loads the optional application config file.
//
// Stripeplan reads ~/.config/stripeplan/config.toml when present. Values
// there replace the built-in defaults; explicit CLI flags always win over
// both. A missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-level defaults for the CLI and server.
type Config struct {
	Defaults Defaults `toml:"defaults"`
	Colors   Colors   `toml:"colors"`
	Server   Server   `toml:"server"`
	Cache    Cache    `toml:"cache"`
	Store    Store    `toml:"store"`
}

// Defaults are the planning inputs used when flags are omitted.
type Defaults struct {
	MinCm     float64 `toml:"min"`
	MaxCm     float64 `toml:"max"`
	Ratio     float64 `toml:"ratio"`
	Direction string  `toml:"direction"`
}

// Colors are the default stripe fill colors.
type Colors struct {
	Colored string `toml:"colored"`
	White   string `toml:"white"`
}

// Server configures the preview server.
type Server struct {
	Listen string `toml:"listen"`
}

// Cache configures the artifact cache backend.
type Cache struct {
	// Dir overrides the cache directory (default: XDG cache dir).
	Dir string `toml:"dir"`

	// Disabled turns caching off entirely.
	Disabled bool `toml:"disabled"`
}

// Store configures the room store backend.
type Store struct {
	// Backend is one of "file", "memory", "redis", "mongo".
	Backend string `toml:"backend"`

	// Dir is the room directory for the file backend.
	Dir string `toml:"dir"`

	Redis RedisStore `toml:"redis"`
	Mongo MongoStore `toml:"mongo"`
}

// RedisStore holds redis backend settings.
type RedisStore struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoStore holds mongo backend settings.
type MongoStore struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Defaults: Defaults{
			Ratio:     1,
			Direction: "vertical",
		},
		Colors: Colors{
			Colored: "#4a7ba6",
			White:   "#f5f0e8",
		},
		Server: Server{
			Listen: "localhost:8412",
		},
		Store: Store{
			Backend: "file",
		},
	}
}

// Path returns the config file location (~/.config/stripeplan/config.toml).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "stripeplan", "config.toml"), nil
}

// Load reads the config file at path, layered over the defaults. An empty
// path means the standard location. A missing file returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
