package plan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmendler/stripeplan/pkg/cache"
	"github.com/jmendler/stripeplan/pkg/observability"
	"github.com/jmendler/stripeplan/pkg/render/wall"
	"github.com/jmendler/stripeplan/pkg/render/wall/sink"
	"github.com/jmendler/stripeplan/pkg/render/wall/styles"
	"github.com/jmendler/stripeplan/pkg/stripe"
)

// Render generates output artifacts in the requested formats.
func Render(l stripe.Layout, opts Options) (wall.Scene, map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return wall.Scene{}, nil, err
	}

	scene, err := wall.Build(opts.Wall, l, wall.Options{
		FrameWidth:   opts.FrameWidth,
		FrameHeight:  opts.FrameHeight,
		ColoredColor: opts.ColoredColor,
		WhiteColor:   opts.WhiteColor,
		Obstacles:    opts.Obstacles(),
	})
	if err != nil {
		return wall.Scene{}, nil, fmt.Errorf("build scene: %w", err)
	}

	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(scene, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(scene, sink.WithPNGSVGOptions(svgOpts...))
		case FormatPDF:
			data, err = sink.RenderPDF(scene, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(scene, sink.WithJSONStyle(opts.Style))
		default:
			return wall.Scene{}, nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return wall.Scene{}, nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return scene, artifacts, nil
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithStyle(styles.Flat{})}
	if opts.Caption {
		svgOpts = append(svgOpts, sink.WithCaption())
	}
	return svgOpts
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info. The scene is rebuilt even on a full cache hit; it is cheap and
// callers use it for warnings and for the TUI preview.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l stripe.Layout, opts Options) (wall.Scene, map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return wall.Scene{}, nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := json.Marshal(l)
	if err != nil {
		return wall.Scene{}, nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	planHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		} else {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		scene, err := wall.Build(opts.Wall, l, wall.Options{
			FrameWidth:   opts.FrameWidth,
			FrameHeight:  opts.FrameHeight,
			ColoredColor: opts.ColoredColor,
			WhiteColor:   opts.WhiteColor,
			Obstacles:    opts.Obstacles(),
		})
		if err != nil {
			return wall.Scene{}, nil, false, err
		}
		return scene, artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	scene, rendered, err := Render(l, opts)
	if err != nil {
		return wall.Scene{}, nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return scene, rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the scene and cache hit info.
func (r *Runner) Render(ctx context.Context, l stripe.Layout, opts Options) (map[string][]byte, error) {
	_, artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}
