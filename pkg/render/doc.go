// Package render provides visualization rendering for wall plans.
//
// # Overview
//
// This package contains the rendering pipeline that transforms computed
// stripe layouts into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Wall preview rendering (in [wall] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(scene, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Wall Preview
//
// The [wall] subpackage maps a stripe layout onto a fixed frame: the wall
// rectangle, the alternating stripes, and any obstacle overlays (wardrobe,
// window) become positioned blocks a sink can draw.
//
// Key wall subpackages:
//   - [wall]: Scene computation (blocks from a layout)
//   - [wall/sink]: Output formats (SVG, JSON, PNG, PDF)
//   - [wall/styles]: Visual styles (flat)
//
// [wall]: github.com/jmendler/stripeplan/pkg/render/wall
// [wall/sink]: github.com/jmendler/stripeplan/pkg/render/wall/sink
// [wall/styles]: github.com/jmendler/stripeplan/pkg/render/wall/styles
package render
