package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jmendler/stripeplan/pkg/cache"
	"github.com/jmendler/stripeplan/pkg/observability"
	"github.com/jmendler/stripeplan/pkg/stripe"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete enumerate → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Enumerate
	enumStart := time.Now()
	observability.Plan().OnEnumerateStart(ctx)
	result.Configs = r.Enumerate(opts)
	result.Stats.EnumerateTime = time.Since(enumStart)
	result.Stats.ConfigCount = len(result.Configs)
	observability.Plan().OnEnumerateComplete(ctx, len(result.Configs), result.Stats.EnumerateTime)

	r.Logger.Info("enumerated configurations",
		"count", len(result.Configs),
		"duration", result.Stats.EnumerateTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Plan().OnLayoutStart(ctx, opts.Selection.Value())
	layout, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, opts)
	observability.Plan().OnLayoutComplete(ctx, opts.Selection.Value(), time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	// Compute plan hash for cache keys and API responses
	if layoutData, err := json.Marshal(layout); err == nil {
		result.PlanHash = cache.Hash(layoutData)
	}

	r.Logger.Info("computed layout",
		"colored", layout.Colored,
		"white", layout.White,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Plan().OnRenderStart(ctx, opts.Formats)
	scene, artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	observability.Plan().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Scene = scene
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Enumerate lists the feasible stripe configurations for the current
// inputs. The computation is pure and cheap, so it is never cached.
func (r *Runner) Enumerate(opts Options) []stripe.Config {
	opts.SetPlanDefaults()
	return stripe.Enumerate(opts.Wall, stripe.Constraint{MinCm: opts.MinCm, MaxCm: opts.MaxCm}, opts.Ratio)
}

// ComputeLayoutWithCacheInfo validates the chosen configuration with
// caching and returns cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, opts Options) (stripe.Layout, bool, error) {
	opts.SetPlanDefaults()

	cacheKey := r.Keyer.PlanKey(opts.PlanKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached stripe.Layout
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "plan")
				return cached, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "plan")
	}

	// Compute
	layout, err := stripe.ComputeLayout(opts.Wall, opts.Selection, opts.Ratio,
		stripe.Constraint{MinCm: opts.MinCm, MaxCm: opts.MaxCm})
	if err != nil {
		return stripe.Layout{}, false, err
	}

	// Cache the result
	if data, err := json.Marshal(layout); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPlan)
		observability.Cache().OnCacheSet(ctx, "plan", len(data))
	}

	return layout, false, nil // Cache miss
}

// ComputeLayout is a convenience wrapper that calls
// ComputeLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, opts Options) (stripe.Layout, error) {
	layout, _, err := r.ComputeLayoutWithCacheInfo(ctx, opts)
	return layout, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
