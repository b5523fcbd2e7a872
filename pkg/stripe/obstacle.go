package stripe

import (
	"fmt"
	"strconv"
)

// ObstacleKind distinguishes the two obstacle overlays. A wardrobe (or
// door) is always floor-anchored; a window additionally carries a floor
// offset.
type ObstacleKind string

const (
	ObstacleWardrobe ObstacleKind = "wardrobe"
	ObstacleWindow   ObstacleKind = "window"
)

// Obstacle is a rectangle overlaid on the wall visualization, anchored by
// offsets from the right edge and (for windows) the floor. Measurements are
// centimeters; Color is the fill as "#rrggbb".
type Obstacle struct {
	Kind     ObstacleKind `json:"kind" bson:"kind"`
	Shown    bool         `json:"shown" bson:"shown"`
	WidthCm  float64      `json:"width_cm" bson:"width_cm"`
	HeightCm float64      `json:"height_cm" bson:"height_cm"`
	RightCm  float64      `json:"right_cm" bson:"right_cm"`
	FloorCm  float64      `json:"floor_cm" bson:"floor_cm"`
	Color    string       `json:"color" bson:"color"`
}

// Placement is the proportional position of an obstacle on the wall, as
// percentages of the wall dimensions. Hidden placements carry no geometry
// and instruct the renderer to clear the overlay.
type Placement struct {
	Hidden bool `json:"hidden" bson:"hidden"`

	WidthPct  float64 `json:"width_pct" bson:"width_pct"`
	HeightPct float64 `json:"height_pct" bson:"height_pct"`
	RightPct  float64 `json:"right_pct" bson:"right_pct"`
	FloorPct  float64 `json:"floor_pct" bson:"floor_pct"`

	// Overflow marks a raw width or height larger than the wall's
	// corresponding dimension. It is advisory: rendering proceeds with
	// the size clamped to 100%.
	Overflow bool   `json:"overflow,omitempty" bson:"overflow,omitempty"`
	Warning  string `json:"warning,omitempty" bson:"warning,omitempty"`
}

// PlaceObstacle computes the proportional placement of an obstacle on the
// wall. Width and height are clamped to 100% so the rectangle never exceeds
// the wall's visual bounds, but offsets are deliberately not clamped: an
// offset that pushes the obstacle off the wall silently produces a
// partially or fully off-wall placement.
//
// The placement is Hidden when the obstacle is toggled off, when its size
// is not positive, or when the wall dimensions themselves are unusable.
func PlaceObstacle(o Obstacle, wall Wall) Placement {
	if !o.Shown || !positiveFinite(o.WidthCm) || !positiveFinite(o.HeightCm) {
		return Placement{Hidden: true}
	}
	if !positiveFinite(wall.LengthCm) || !positiveFinite(wall.HeightCm) {
		return Placement{Hidden: true}
	}

	p := Placement{
		WidthPct:  min(o.WidthCm/wall.LengthCm*100, 100),
		HeightPct: min(o.HeightCm/wall.HeightCm*100, 100),
		RightPct:  o.RightCm / wall.LengthCm * 100,
	}
	if o.Kind == ObstacleWindow {
		p.FloorPct = o.FloorCm / wall.HeightCm * 100
	}

	switch {
	case o.WidthCm > wall.LengthCm:
		p.Overflow = true
		p.Warning = fmt.Sprintf("%s width %.1f cm exceeds wall length %.1f cm", o.Kind, o.WidthCm, wall.LengthCm)
	case o.HeightCm > wall.HeightCm:
		p.Overflow = true
		p.Warning = fmt.Sprintf("%s height %.1f cm exceeds wall height %.1f cm", o.Kind, o.HeightCm, wall.HeightCm)
	}
	return p
}

// borderDarken is the per-channel delta between an obstacle's fill color
// and its border color.
const borderDarken = 30

// BorderColor derives the obstacle border color from its fill color by
// darkening each RGB channel by a fixed delta. Both obstacle kinds use the
// same derivation. Invalid colors are returned unchanged.
func BorderColor(fill string) string {
	return DarkenHex(fill, borderDarken)
}

// DarkenHex reduces each RGB channel of a "#rrggbb" color by delta,
// clamping each channel to [0, 255]. Colors that do not parse are returned
// unchanged so a bad input degrades to a same-colored border instead of an
// error path in the renderer.
func DarkenHex(color string, delta int) string {
	if len(color) != 7 || color[0] != '#' {
		return color
	}
	var channels [3]int
	for i := range channels {
		v, err := strconv.ParseUint(color[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return color
		}
		c := int(v) - delta
		if c < 0 {
			c = 0
		} else if c > 255 {
			c = 255
		}
		channels[i] = c
	}
	return fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2])
}
