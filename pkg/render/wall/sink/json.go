package sink

import (
	"encoding/json"

	"github.com/jmendler/stripeplan/pkg/render/wall"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name (e.g., "flat") in the JSON output
// for documentation or round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Width    float64      `json:"width"`
	Height   float64      `json:"height"`
	Style    string       `json:"style,omitempty"`
	Summary  string       `json:"summary,omitempty"`
	Wall     jsonRect     `json:"wall"`
	Blocks   []jsonBlock  `json:"blocks"`
	Warnings []string     `json:"warnings,omitempty"`
}

type jsonRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type jsonBlock struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   string  `json:"fill"`
	Border string  `json:"border,omitempty"`
}

// RenderJSON exports the scene as a pretty-printed JSON document. This is
// the data interchange format for external tools and enables re-rendering
// a scene without recomputing geometry.
func RenderJSON(s wall.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:    s.FrameWidth,
		Height:   s.FrameHeight,
		Style:    r.style,
		Summary:  s.Summary,
		Wall:     jsonRect{X: s.WallX, Y: s.WallY, W: s.WallW, H: s.WallH},
		Blocks:   make([]jsonBlock, 0, len(s.Blocks)),
		Warnings: s.Warnings,
	}
	for _, b := range s.Blocks {
		out.Blocks = append(out.Blocks, jsonBlock{
			ID:     b.ID,
			Kind:   string(b.Kind),
			X:      b.X,
			Y:      b.Y,
			Width:  b.W,
			Height: b.H,
			Fill:   b.Fill,
			Border: b.Border,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
