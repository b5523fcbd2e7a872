// Package sink renders computed wall scenes into output formats.
//
// SVG is assembled directly; PNG and PDF are produced by converting the
// SVG with rsvg-convert; JSON exports the scene data itself for external
// tools and cache round-trips.
package sink
