package sink

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmendler/stripeplan/pkg/render/wall"
	"github.com/jmendler/stripeplan/pkg/stripe"
)

func testScene(t *testing.T) wall.Scene {
	t.Helper()
	w := stripe.Wall{LengthCm: 480, HeightCm: 260}
	l, err := stripe.ComputeLayout(w, stripe.Selection{Colored: 9, White: 8}, 1, stripe.Constraint{MinCm: 20, MaxCm: 45})
	if err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}
	s, err := wall.Build(w, l, wall.Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestRenderSVG(t *testing.T) {
	s := testScene(t)
	svg := string(RenderSVG(s))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("missing svg root element")
	}
	if !strings.Contains(svg, `viewBox="0 0 800.0 520.0"`) {
		t.Errorf("unexpected viewBox: %s", svg[:120])
	}
	if got := strings.Count(svg, "<rect"); got != 18 {
		// 17 stripes plus the wall outline.
		t.Errorf("rect count = %d, want 18", got)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("unterminated svg document")
	}

	// No caption or scripts unless requested.
	if strings.Contains(svg, "<text") || strings.Contains(svg, "<script") {
		t.Error("plain render should not include caption or scripts")
	}
}

func TestRenderSVGWithCaption(t *testing.T) {
	s := testScene(t)
	svg := string(RenderSVG(s, WithCaption()))

	if !strings.Contains(svg, "28.2 cm each") {
		t.Error("caption should embed the layout summary")
	}
}

func TestRenderSVGWithInteraction(t *testing.T) {
	s := testScene(t)
	svg := string(RenderSVG(s, WithInteraction()))

	if !strings.Contains(svg, "<script") || !strings.Contains(svg, "mouseenter") {
		t.Error("interactive render should embed the hover script")
	}
}

func TestRenderSVGEscapesSummary(t *testing.T) {
	s := testScene(t)
	s.Summary = `<script>alert("x")</script>`
	svg := RenderSVG(s, WithCaption())

	if bytes.Contains(svg, []byte(`<script>alert`)) {
		t.Error("summary must be XML-escaped")
	}
}

func TestRenderJSON(t *testing.T) {
	s := testScene(t)
	data, err := RenderJSON(s, WithJSONStyle("flat"))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		Width  float64 `json:"width"`
		Style  string  `json:"style"`
		Wall   struct{ W float64 }
		Blocks []struct {
			Kind string `json:"kind"`
			Fill string `json:"fill"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Width != 800 || out.Style != "flat" {
		t.Errorf("width/style = %v/%q", out.Width, out.Style)
	}
	if len(out.Blocks) != 17 {
		t.Errorf("blocks = %d, want 17", len(out.Blocks))
	}
	if out.Blocks[0].Kind != "colored" {
		t.Errorf("first block kind = %q", out.Blocks[0].Kind)
	}
}
