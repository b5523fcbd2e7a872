// Package plan provides the core planning pipeline for Stripeplan.
//
// This package implements the complete enumerate → layout → render pipeline
// that can be used by CLI, API, and TUI components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Enumerate: List every stripe configuration that fits the wall
//  2. Layout: Validate the chosen configuration and compute final geometry
//  3. Render: Generate the wall preview in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := plan.NewRunner(cache, nil, logger)
//	opts := plan.Options{
//	    Wall:      stripe.Wall{LengthCm: 480, HeightCm: 260},
//	    MinCm:     20,
//	    MaxCm:     45,
//	    Selection: stripe.Selection{Colored: 9, White: 8},
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Enumerate only
//	configs := runner.Enumerate(opts)
//
//	// Layout with a chosen configuration
//	layout, err := runner.ComputeLayout(ctx, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, layout, opts)
package plan

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jmendler/stripeplan/pkg/cache"
	"github.com/jmendler/stripeplan/pkg/errors"
	"github.com/jmendler/stripeplan/pkg/render/wall"
	"github.com/jmendler/stripeplan/pkg/stripe"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and TUI
// =============================================================================

const (
	// DefaultRatio is the colored:white width ratio when none is supplied.
	DefaultRatio = 1.0

	// DefaultFrameWidth is the default frame width in pixels.
	DefaultFrameWidth = wall.DefaultFrameWidth

	// DefaultFrameHeight is the default frame height in pixels.
	DefaultFrameHeight = wall.DefaultFrameHeight

	// DefaultStyle is the default visual style.
	DefaultStyle = "flat"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	DefaultStyle: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the planning pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Wall and stripe inputs
	Wall      stripe.Wall       `json:"wall"`
	MinCm     float64           `json:"min_cm,omitempty"`
	MaxCm     float64           `json:"max_cm,omitempty"`
	Ratio     float64           `json:"ratio,omitempty"`
	Selection stripe.Selection  `json:"selection,omitempty"`

	// Colors and obstacle overlays
	ColoredColor string          `json:"colored_color,omitempty"`
	WhiteColor   string          `json:"white_color,omitempty"`
	Wardrobe     stripe.Obstacle `json:"wardrobe,omitempty"`
	Window       stripe.Obstacle `json:"window,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	FrameWidth  float64  `json:"frame_width,omitempty"`
	FrameHeight float64  `json:"frame_height,omitempty"`
	Caption     bool     `json:"caption,omitempty"`
	Refresh     bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Configs is the list of feasible stripe configurations for the wall.
	Configs []stripe.Config

	// Layout is the validated final geometry.
	Layout stripe.Layout

	// PlanHash is the content hash of the layout.
	PlanHash string

	// Scene is the positioned wall preview the artifacts were drawn from.
	Scene wall.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ConfigCount   int
	EnumerateTime time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid style: %q (must be: flat)", style)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetPlanDefaults()
	o.SetRenderDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetPlanDefaults sets default values for enumeration and layout.
// Wall and constraint fields are deliberately left alone: missing or
// unparseable inputs flow through as-is and surface as the graceful
// empty-enumeration or validation-failure states downstream.
func (o *Options) SetPlanDefaults() {
	if o.Ratio == 0 {
		o.Ratio = DefaultRatio
	}
	if o.Wall.Direction == "" {
		o.Wall.Direction = stripe.DirectionVertical
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.FrameWidth == 0 {
		o.FrameWidth = DefaultFrameWidth
	}
	if o.FrameHeight == 0 {
		o.FrameHeight = DefaultFrameHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	for _, c := range []string{o.ColoredColor, o.WhiteColor} {
		if c == "" {
			continue
		}
		if err := errors.ValidateHexColor(c); err != nil {
			return err
		}
	}
	return nil
}

// Obstacles returns the overlays in render order (wardrobe first).
func (o *Options) Obstacles() []stripe.Obstacle {
	return []stripe.Obstacle{o.Wardrobe, o.Window}
}

// PlanKeyOpts returns cache key options for layout computation.
func (o *Options) PlanKeyOpts() cache.PlanKeyOpts {
	return cache.PlanKeyOpts{
		LengthCm:  o.Wall.LengthCm,
		HeightCm:  o.Wall.HeightCm,
		Direction: string(o.Wall.Direction),
		MinCm:     o.MinCm,
		MaxCm:     o.MaxCm,
		Ratio:     o.Ratio,
		Selection: o.Selection.Value(),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	obstacles, _ := json.Marshal(o.Obstacles())
	return cache.ArtifactKeyOpts{
		Format:       format,
		Width:        int(o.FrameWidth),
		Height:       int(o.FrameHeight),
		Style:        o.Style,
		ColoredColor: o.ColoredColor,
		WhiteColor:   o.WhiteColor,
		Obstacles:    string(obstacles),
	}
}
