// Package stripe computes repeating wall stripe patterns.
//
// A pattern alternates colored and white bands along one wall dimension (the
// active dimension, selected by direction) so that the bands exactly fill
// the wall. Generated configurations always use n+1 colored and n white
// stripes, so the pattern starts and ends with a colored band.
//
// The package has three entry points:
//
//   - [Enumerate] lists every stripe configuration whose band widths fall
//     inside a thickness constraint window.
//   - [ComputeLayout] validates a chosen configuration against the current
//     inputs and produces final band widths and a display summary.
//   - [PlaceObstacle] converts a wardrobe or window rectangle from physical
//     centimeters into percentage-based placement on the wall.
//
// All functions are pure: they take value structs, return value structs or
// structured errors, never log, and hold no state. They are safe to call
// concurrently and safe to call with partially edited input; invalid input
// degrades to an empty result or a structured validation error, never a
// panic or a NaN in the output.
package stripe
