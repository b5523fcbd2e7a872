// Package wall computes drawable scenes from stripe layouts.
//
// A Scene is a set of positioned rectangles in a fixed frame: the wall
// outline, the alternating stripe bands, and any obstacle overlays. Sinks
// (see the sink subpackage) turn a Scene into SVG, JSON, PNG, or PDF
// without re-deriving any geometry.
package wall
