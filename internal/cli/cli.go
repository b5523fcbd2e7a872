// Package cli implements the stripeplan command-line interface.
//
// This package provides commands for enumerating stripe configurations,
// computing and rendering wall plans, managing saved rooms, and running
// the local preview server. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - configs: List stripe configurations that fit a wall
//   - plan: Validate a configuration and print the final layout
//   - render: Generate SVG, PDF, PNG, or JSON wall previews
//   - rooms: Manage saved rooms (list, show, save, delete, import)
//   - tui: Interactive configuration picker with live wall preview
//   - serve: Run the local HTTP preview server
//   - cache: Manage the plan and artifact cache
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jmendler/stripeplan/internal/server"
	"github.com/jmendler/stripeplan/pkg/buildinfo"
	"github.com/jmendler/stripeplan/pkg/cache"
	"github.com/jmendler/stripeplan/pkg/config"
	"github.com/jmendler/stripeplan/pkg/plan"
	"github.com/jmendler/stripeplan/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "stripeplan"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stripeplan calculates wall stripe patterns",
		Long:         `Stripeplan is a CLI tool for planning painted stripe patterns on walls: it enumerates the stripe configurations that fit a wall within a thickness constraint, validates the chosen one, and renders a wall preview with optional furniture overlays.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/stripeplan/config.toml)")

	// Register all subcommands
	root.AddCommand(c.configsCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.roomsCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// Config loads the TOML config file on first use. Flag values are applied
// on top by the individual commands, so explicit flags always win.
func (c *CLI) Config() config.Config {
	if c.cfg == nil {
		path := c.configPath
		if path == "" {
			path, _ = config.Path()
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.Logger.Warn("ignoring unreadable config file", "path", path, "err", err)
			cfg = config.Default()
		}
		c.cfg = &cfg
	}
	return *c.cfg
}

// =============================================================================
// Runner and Store Factories
// =============================================================================

// newRunner creates a planning runner for CLI use.
func (c *CLI) newRunner(noCache bool) *plan.Runner {
	return plan.NewRunner(c.newCache(noCache), nil, c.Logger)
}

func (c *CLI) newCache(noCache bool) cache.Cache {
	cfg := c.Config()
	if noCache || cfg.Cache.Disabled {
		return cache.NewNullCache()
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// newStore creates the room store selected by the config file, wrapped
// with operation instrumentation.
func (c *CLI) newStore(cmd *cobra.Command) (store.Store, error) {
	cfg := c.Config()

	var (
		st      store.Store
		backend string
		err     error
	)
	switch cfg.Store.Backend {
	case "", "file":
		backend = "file"
		st, err = store.NewFileStore(cfg.Store.Dir)
	case "memory":
		backend = "memory"
		st = store.NewMemoryStore()
	case "redis":
		backend = "redis"
		st, err = store.NewRedisStore(cmd.Context(), store.RedisConfig{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
	case "mongo":
		backend = "mongo"
		st, err = store.NewMongoStore(cmd.Context(), store.MongoConfig{
			URI:        cfg.Store.Mongo.URI,
			Database:   cfg.Store.Mongo.Database,
			Collection: cfg.Store.Mongo.Collection,
		})
	default:
		return nil, fmt.Errorf("unknown store backend: %q (must be file, memory, redis, or mongo)", cfg.Store.Backend)
	}
	if err != nil {
		return nil, err
	}
	return store.Instrument(st, backend), nil
}

func (c *CLI) newServer(cmd *cobra.Command, noCache bool) (*server.Server, error) {
	st, err := c.newStore(cmd)
	if err != nil {
		return nil, err
	}
	return server.New(c.newRunner(noCache), st, c.Logger), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/stripeplan/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Flag Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{plan.FormatSVG}
	}
	return strings.Split(s, ",")
}
