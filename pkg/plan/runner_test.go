package plan

import (
	"context"
	"strings"
	"testing"

	"github.com/jmendler/stripeplan/pkg/cache"
	"github.com/jmendler/stripeplan/pkg/errors"
	"github.com/jmendler/stripeplan/pkg/stripe"
)

func testOptions() Options {
	return Options{
		Wall:      stripe.Wall{LengthCm: 480, HeightCm: 260},
		MinCm:     20,
		MaxCm:     45,
		Selection: stripe.Selection{Colored: 9, White: 8},
		Formats:   []string{FormatSVG, FormatJSON},
	}
}

func TestRunnerExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), testOptions())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.ConfigCount != 7 {
		t.Errorf("ConfigCount = %d, want 7", result.Stats.ConfigCount)
	}
	if result.Layout.Colored != 9 || result.Layout.White != 8 {
		t.Errorf("layout counts = %d/%d", result.Layout.Colored, result.Layout.White)
	}
	if !strings.Contains(result.Layout.Summary, "28.2 cm each") {
		t.Errorf("summary = %q", result.Layout.Summary)
	}
	if result.PlanHash == "" {
		t.Error("expected a plan hash")
	}
	if len(result.Scene.Blocks) != 17 {
		t.Errorf("scene blocks = %d, want 17", len(result.Scene.Blocks))
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !strings.HasPrefix(string(svg), "<svg") {
		t.Error("missing or malformed svg artifact")
	}
	if _, ok := result.Artifacts[FormatJSON]; !ok {
		t.Error("missing json artifact")
	}

	// Nothing was cached (NullCache), so no stage reports a hit.
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Errorf("unexpected cache hits: %+v", result.CacheInfo)
	}
}

func TestRunnerExecuteCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	ctx := context.Background()
	first, err := r.Execute(ctx, testOptions())
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss: %+v", first.CacheInfo)
	}

	second, err := r.Execute(ctx, testOptions())
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit: %+v", second.CacheInfo)
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// Refresh bypasses the layout cache.
	opts := testOptions()
	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.LayoutHit {
		t.Error("refresh run should not report a layout hit")
	}
}

func TestRunnerExecuteFailures(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(o *Options)
		wantCode errors.Code
	}{
		{"NoSelection", func(o *Options) { o.Selection = stripe.Selection{} }, errors.ErrCodeNoConfigSelected},
		{"ZeroLength", func(o *Options) { o.Wall.LengthCm = 0 }, errors.ErrCodeInvalidWallLength},
		{"ZeroHeight", func(o *Options) { o.Wall.HeightCm = 0 }, errors.ErrCodeInvalidWallHeight},
		{"TightConstraint", func(o *Options) { o.MinCm = 30; o.MaxCm = 31 }, errors.ErrCodeThicknessRange},
		{"BadFormat", func(o *Options) { o.Formats = []string{"gif"} }, errors.ErrCodeInvalidFormat},
		{"BadColor", func(o *Options) { o.ColoredColor = "blue" }, errors.ErrCodeInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			tt.mutate(&opts)
			_, err := r.Execute(ctx, opts)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestRunnerEnumerate(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	configs := r.Enumerate(testOptions())
	if len(configs) != 7 {
		t.Fatalf("configs = %d, want 7", len(configs))
	}

	// Unusable wall degrades to an empty list, never an error.
	opts := testOptions()
	opts.Wall.LengthCm = 0
	if got := r.Enumerate(opts); len(got) != 0 {
		t.Errorf("zero-length wall should enumerate nothing, got %d", len(got))
	}
}

func TestRunnerComputeLayoutRecomputes(t *testing.T) {
	// A selection cached under one constraint must not leak into a changed
	// constraint: the key covers every planning input.
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()
	ctx := context.Background()

	opts := testOptions()
	if _, err := r.ComputeLayout(ctx, opts); err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}

	opts.MaxCm = 25
	_, err = r.ComputeLayout(ctx, opts)
	if !errors.Is(err, errors.ErrCodeThicknessRange) {
		t.Errorf("tightened constraint should fail, got %v", err)
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"svg", "png", "pdf", "json"} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", f, err)
		}
	}
	if err := ValidateFormat("gif"); err == nil {
		t.Error("gif should be rejected")
	}
}
