package styles

import (
	"bytes"
	"fmt"

	"github.com/jmendler/stripeplan/pkg/render/wall"
)

// Flat draws plain rectangles with hairline strokes. It is the default
// style and keeps the SVG small enough to inline in API responses.
type Flat struct{}

const (
	flatOutline     = "#2d2a26"
	flatCaptionFill = "#55504a"
)

// RenderDefs writes nothing; the flat style needs no defs.
func (Flat) RenderDefs(buf *bytes.Buffer) {}

// RenderWall draws the wall outline behind the stripe bands.
func (Flat) RenderWall(buf *bytes.Buffer, s wall.Scene) {
	fmt.Fprintf(buf,
		`  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="2"/>`+"\n",
		s.WallX, s.WallY, s.WallW, s.WallH, flatOutline)
}

// RenderBlock draws a single stripe or obstacle rectangle.
func (Flat) RenderBlock(buf *bytes.Buffer, b wall.Block) {
	stroke := b.Border
	width := 2.0
	if stroke == "" {
		stroke = "none"
		width = 0
	}
	fmt.Fprintf(buf,
		`  <rect id="%s" class="block %s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="%.0f"/>`+"\n",
		EscapeXML(b.ID), EscapeXML(string(b.Kind)), b.X, b.Y, b.W, b.H, EscapeXML(b.Fill), EscapeXML(stroke), width)
}

// RenderCaption draws the summary line centered under the wall.
func (Flat) RenderCaption(buf *bytes.Buffer, s wall.Scene) {
	if s.Summary == "" {
		return
	}
	size := CaptionSize(s)
	y := s.WallY + s.WallH + size + 8
	fmt.Fprintf(buf,
		`  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
		s.FrameWidth/2, y, size, flatCaptionFill, EscapeXML(s.Summary))
}

// Ensure Flat implements Style.
var _ Style = Flat{}
