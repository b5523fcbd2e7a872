package plan

import (
	"math"
	"strconv"
	"strings"

	"github.com/jmendler/stripeplan/pkg/stripe"
)

// Form carries the raw string fields exactly as a UI form or flag set
// delivers them. Numeric fields are parsed as floating point with
// parseFloat semantics: empty or unparseable input becomes NaN and flows
// through to the graceful empty-enumeration and validation-failure states
// instead of failing at the boundary.
type Form struct {
	Length string `json:"length"`
	Height string `json:"height"`
	Min    string `json:"min"`
	Max    string `json:"max"`
	Ratio  string `json:"ratio"`

	Direction string `json:"direction,omitempty"`

	// Selection is the "<colored>,<white>" value of the chosen option.
	// Empty means nothing selected yet.
	Selection string `json:"selection,omitempty"`

	ColoredColor string `json:"colored_color,omitempty"`
	WhiteColor   string `json:"white_color,omitempty"`

	Wardrobe ObstacleForm `json:"wardrobe,omitempty"`
	Window   ObstacleForm `json:"window,omitempty"`
}

// ObstacleForm is the raw obstacle sub-form.
type ObstacleForm struct {
	Shown  bool   `json:"shown,omitempty"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
	Right  string `json:"right,omitempty"`
	Floor  string `json:"floor,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Options converts the raw form into typed pipeline options. The ratio
// field alone treats empty input as the default of 1; every other field
// keeps its NaN so downstream validation reports the right failure.
func (f Form) Options() Options {
	// An unrecognized direction degrades the same way an empty one does:
	// ParseDirection yields the zero value, which defaults to vertical.
	direction, _ := stripe.ParseDirection(f.Direction)
	opts := Options{
		Wall: stripe.Wall{
			LengthCm:  parseField(f.Length),
			HeightCm:  parseField(f.Height),
			Direction: direction,
		},
		MinCm:        parseField(f.Min),
		MaxCm:        parseField(f.Max),
		Ratio:        DefaultRatio,
		ColoredColor: f.ColoredColor,
		WhiteColor:   f.WhiteColor,
		Wardrobe:     f.Wardrobe.obstacle(stripe.ObstacleWardrobe),
		Window:       f.Window.obstacle(stripe.ObstacleWindow),
	}
	if strings.TrimSpace(f.Ratio) != "" {
		opts.Ratio = parseField(f.Ratio)
	}
	if sel, err := stripe.ParseSelection(f.Selection); err == nil {
		opts.Selection = sel
	}
	return opts
}

func (of ObstacleForm) obstacle(kind stripe.ObstacleKind) stripe.Obstacle {
	return stripe.Obstacle{
		Kind:     kind,
		Shown:    of.Shown,
		WidthCm:  parseField(of.Width),
		HeightCm: parseField(of.Height),
		RightCm:  parseOffset(of.Right),
		FloorCm:  parseOffset(of.Floor),
		Color:    of.Color,
	}
}

// parseField parses a numeric form field. Empty and malformed values both
// become NaN, matching what a browser's parseFloat hands the caller.
func parseField(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parseOffset parses an offset field. Unlike sizes, a missing offset means
// zero: the obstacle sits flush against the reference edge.
func parseOffset(s string) float64 {
	if strings.TrimSpace(s) == "" {
		return 0
	}
	return parseField(s)
}
