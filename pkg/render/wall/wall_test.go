package wall

import (
	"math"
	"strings"
	"testing"

	"github.com/jmendler/stripeplan/pkg/stripe"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 0.01 }

func testLayout(t *testing.T) (stripe.Wall, stripe.Layout) {
	t.Helper()
	w := stripe.Wall{LengthCm: 480, HeightCm: 260, Direction: stripe.DirectionVertical}
	l, err := stripe.ComputeLayout(w, stripe.Selection{Colored: 9, White: 8}, 1, stripe.Constraint{MinCm: 20, MaxCm: 45})
	if err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}
	return w, l
}

func TestBuildScalesWallIntoFrame(t *testing.T) {
	w, l := testLayout(t)

	s, err := Build(w, l, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// 480x260 in an 800x520 frame with 40px margins scales by 1.5.
	if !approx(s.WallW, 720) || !approx(s.WallH, 390) {
		t.Errorf("wall = %.1fx%.1f, want 720x390", s.WallW, s.WallH)
	}
	if !approx(s.WallX, 40) || !approx(s.WallY, 65) {
		t.Errorf("wall origin = (%.1f, %.1f), want (40, 65)", s.WallX, s.WallY)
	}
	if s.Summary == "" {
		t.Error("scene should carry the layout summary")
	}
}

func TestBuildStripeBands(t *testing.T) {
	w, l := testLayout(t)

	s, err := Build(w, l, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(s.Blocks) != 17 {
		t.Fatalf("blocks = %d, want 17", len(s.Blocks))
	}

	// Alternation starts and ends with a colored stripe.
	if s.Blocks[0].Kind != BlockColored || s.Blocks[16].Kind != BlockColored {
		t.Errorf("first/last kinds = %s/%s, want colored/colored", s.Blocks[0].Kind, s.Blocks[16].Kind)
	}
	if s.Blocks[1].Kind != BlockWhite {
		t.Errorf("second kind = %s, want white", s.Blocks[1].Kind)
	}

	// Vertical stripes span the full wall height and tile the width.
	var width float64
	for _, b := range s.Blocks {
		if !approx(b.H, s.WallH) {
			t.Errorf("stripe %s height = %.1f, want %.1f", b.ID, b.H, s.WallH)
		}
		width += b.W
	}
	if !approx(width, s.WallW) {
		t.Errorf("stripes tile %.1f, want %.1f", width, s.WallW)
	}
	if !approx(s.Blocks[16].Right(), s.WallX+s.WallW) {
		t.Errorf("last stripe ends at %.1f, want %.1f", s.Blocks[16].Right(), s.WallX+s.WallW)
	}
}

func TestBuildHorizontalStripes(t *testing.T) {
	w := stripe.Wall{LengthCm: 480, HeightCm: 260, Direction: stripe.DirectionHorizontal}
	l, err := stripe.ComputeLayout(w, stripe.Selection{Colored: 5, White: 4}, 1, stripe.Constraint{MinCm: 20, MaxCm: 45})
	if err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}

	s, err := Build(w, l, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var height float64
	for _, b := range s.Blocks {
		if !approx(b.W, s.WallW) {
			t.Errorf("stripe %s width = %.1f, want %.1f", b.ID, b.W, s.WallW)
		}
		height += b.H
	}
	if !approx(height, s.WallH) {
		t.Errorf("stripes tile %.1f, want %.1f", height, s.WallH)
	}
}

func TestBuildObstacleOverlay(t *testing.T) {
	w, l := testLayout(t)

	wardrobe := stripe.Obstacle{
		Kind: stripe.ObstacleWardrobe, Shown: true,
		WidthCm: 120, HeightCm: 200, RightCm: 48, Color: "#b08968",
	}
	s, err := Build(w, l, Options{Obstacles: []stripe.Obstacle{wardrobe}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(s.Blocks) != 18 {
		t.Fatalf("blocks = %d, want 18", len(s.Blocks))
	}
	b := s.Blocks[17]
	if b.Kind != BlockWardrobe {
		t.Fatalf("overlay kind = %s, want wardrobe", b.Kind)
	}
	// 25% width, 10% right offset, resting on the floor.
	if !approx(b.W, 180) || !approx(b.X, 508) {
		t.Errorf("overlay x/w = %.1f/%.1f, want 508/180", b.X, b.W)
	}
	if !approx(b.Bottom(), s.WallY+s.WallH) {
		t.Errorf("wardrobe should rest on the floor: bottom %.1f, want %.1f", b.Bottom(), s.WallY+s.WallH)
	}
	if b.Border != "#926b4a" {
		t.Errorf("border = %s, want #926b4a", b.Border)
	}
}

func TestBuildHiddenObstacleSkipped(t *testing.T) {
	w, l := testLayout(t)

	s, err := Build(w, l, Options{Obstacles: []stripe.Obstacle{
		{Kind: stripe.ObstacleWindow, Shown: false, WidthCm: 100, HeightCm: 100},
	}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(s.Blocks) != 17 {
		t.Errorf("hidden obstacle should not produce a block: %d blocks", len(s.Blocks))
	}
}

func TestBuildOverflowWarning(t *testing.T) {
	w, l := testLayout(t)

	s, err := Build(w, l, Options{Obstacles: []stripe.Obstacle{
		{Kind: stripe.ObstacleWardrobe, Shown: true, WidthCm: 600, HeightCm: 200, Color: "#b08968"},
	}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(s.Warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(s.Warnings))
	}
	if !strings.Contains(s.Warnings[0], "exceeds") {
		t.Errorf("warning = %q", s.Warnings[0])
	}
	// Overflowing width is clamped to the full wall.
	if !approx(s.Blocks[17].W, s.WallW) {
		t.Errorf("clamped width = %.1f, want %.1f", s.Blocks[17].W, s.WallW)
	}
}

func TestBuildRejectsBadInputs(t *testing.T) {
	_, l := testLayout(t)

	if _, err := Build(stripe.Wall{LengthCm: 0, HeightCm: 260}, l, Options{}); err == nil {
		t.Error("zero-length wall should fail")
	}
	if _, err := Build(stripe.Wall{LengthCm: 480, HeightCm: 260}, stripe.Layout{}, Options{}); err == nil {
		t.Error("empty layout should fail")
	}
}

func TestSceneRoundTrip(t *testing.T) {
	w, l := testLayout(t)
	s, err := Build(w, l, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	data, err := MarshalScene(s)
	if err != nil {
		t.Fatalf("MarshalScene: %v", err)
	}
	got, err := UnmarshalScene(data)
	if err != nil {
		t.Fatalf("UnmarshalScene: %v", err)
	}
	if len(got.Blocks) != len(s.Blocks) || got.Summary != s.Summary {
		t.Errorf("round trip lost data: %d blocks, summary %q", len(got.Blocks), got.Summary)
	}
}
