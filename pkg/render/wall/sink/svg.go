package sink

import (
	"bytes"
	"fmt"

	"github.com/jmendler/stripeplan/pkg/render/wall"
	"github.com/jmendler/stripeplan/pkg/render/wall/styles"
)

const blockInteractionCSS = `
    .block { transition: opacity 0.2s ease; }
    .block.highlight { opacity: 0.85; }`

const blockInteractionJS = `
    document.querySelectorAll('.block').forEach(el => {
      el.addEventListener('mouseenter', () => el.classList.add('highlight'));
      el.addEventListener('mouseleave', () => el.classList.remove('highlight'));
    });`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	caption     bool
	interactive bool
}

// WithStyle selects the visual style (default flat).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithCaption draws the layout summary under the wall.
func WithCaption() SVGOption { return func(r *svgRenderer) { r.caption = true } }

// WithInteraction embeds hover highlighting for browser viewing.
func WithInteraction() SVGOption { return func(r *svgRenderer) { r.interactive = true } }

// RenderSVG assembles the scene into a standalone SVG document.
func RenderSVG(s wall.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.FrameWidth, s.FrameHeight, s.FrameWidth, s.FrameHeight)

	r.style.RenderDefs(&buf)
	for _, b := range s.Blocks {
		r.style.RenderBlock(&buf, b)
	}
	r.style.RenderWall(&buf, s)
	if r.caption {
		r.style.RenderCaption(&buf, s)
	}
	if r.interactive {
		renderBlockInteraction(&buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Flat{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderBlockInteraction(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", blockInteractionCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", blockInteractionJS)
}
