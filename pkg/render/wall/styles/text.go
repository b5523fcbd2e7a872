package styles

import (
	"bytes"
	"encoding/xml"

	"github.com/jmendler/stripeplan/pkg/render/wall"
)

const (
	captionCharWidth = 0.55
	captionSizeMin   = 10.0
	captionSizeMax   = 16.0
	captionPadRatio  = 0.9
)

// CaptionSize picks a font size so the summary fits inside the frame width.
func CaptionSize(s wall.Scene) float64 {
	n := max(1, len(s.Summary))
	bySpace := (s.FrameWidth * captionPadRatio) / (float64(n) * captionCharWidth)
	return max(captionSizeMin, min(captionSizeMax, bySpace))
}

// EscapeXML escapes a string for safe embedding in SVG attributes and text.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
