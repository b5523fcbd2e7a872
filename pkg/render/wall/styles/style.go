package styles

import (
	"bytes"

	"github.com/jmendler/stripeplan/pkg/render/wall"
)

// Style defines the visual appearance for wall rendering.
// Implementations control how the wall, stripe bands, obstacle overlays,
// and the summary caption are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderWall writes the wall background and outline.
	RenderWall(buf *bytes.Buffer, s wall.Scene)
	// RenderBlock writes the SVG for a single stripe or obstacle block.
	RenderBlock(buf *bytes.Buffer, b wall.Block)
	// RenderCaption writes the summary line under the wall.
	RenderCaption(buf *bytes.Buffer, s wall.Scene)
}
