package stripe

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jmendler/stripeplan/pkg/errors"
)

// Direction selects the wall dimension along which stripes repeat.
type Direction string

const (
	// DirectionVertical lays stripes along the wall length.
	DirectionVertical Direction = "vertical"
	// DirectionHorizontal lays stripes along the wall height.
	DirectionHorizontal Direction = "horizontal"
)

// ParseDirection converts a string into a Direction.
// An empty string defaults to vertical.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", string(DirectionVertical):
		return DirectionVertical, nil
	case string(DirectionHorizontal):
		return DirectionHorizontal, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid direction: %q (must be vertical or horizontal)", s)
	}
}

// Wall describes the wall being painted. All measurements are centimeters.
type Wall struct {
	LengthCm  float64   `json:"length_cm" bson:"length_cm"`
	HeightCm  float64   `json:"height_cm" bson:"height_cm"`
	Direction Direction `json:"direction" bson:"direction"`
}

// ActiveDim returns the dimension along which stripes repeat: the length
// for vertical stripes, the height for horizontal ones.
func (w Wall) ActiveDim() float64 {
	if w.Direction == DirectionHorizontal {
		return w.HeightCm
	}
	return w.LengthCm
}

// Constraint is the acceptable stripe thickness window, inclusive on both
// ends.
type Constraint struct {
	MinCm float64 `json:"min_cm" bson:"min_cm"`
	MaxCm float64 `json:"max_cm" bson:"max_cm"`
}

// Contains reports whether a width lies inside the window.
// NaN and infinite widths are never contained.
func (c Constraint) Contains(widthCm float64) bool {
	if math.IsNaN(widthCm) || math.IsInf(widthCm, 0) {
		return false
	}
	return widthCm >= c.MinCm && widthCm <= c.MaxCm
}

// Config is a stripe configuration: the number of colored and white bands
// plus the band widths computed for a specific wall, constraint, and ratio.
type Config struct {
	Colored   int     `json:"colored" bson:"colored"`
	White     int     `json:"white" bson:"white"`
	ColoredCm float64 `json:"colored_cm" bson:"colored_cm"`
	WhiteCm   float64 `json:"white_cm" bson:"white_cm"`
}

// Total returns the total number of stripes.
func (c Config) Total() int { return c.Colored + c.White }

// Value returns the selection string "<colored>,<white>" used by choice
// widgets and by [ParseSelection].
func (c Config) Value() string {
	return fmt.Sprintf("%d,%d", c.Colored, c.White)
}

// Label returns the display label for a choice widget, embedding the
// computed thickness(es) to one decimal place. Equal widths collapse to a
// single value.
func (c Config) Label() string {
	if sameWidth(c.ColoredCm, c.WhiteCm) {
		return fmt.Sprintf("%d stripes · %.1f cm", c.Total(), c.ColoredCm)
	}
	return fmt.Sprintf("%d stripes · colored %.1f cm / white %.1f cm", c.Total(), c.ColoredCm, c.WhiteCm)
}

// Selection identifies a chosen configuration without derived widths.
// The zero value means "nothing selected".
type Selection struct {
	Colored int `json:"colored" bson:"colored"`
	White   int `json:"white" bson:"white"`
}

// IsZero reports whether no configuration has been selected.
func (s Selection) IsZero() bool { return s.Colored == 0 && s.White == 0 }

// Value returns the "<colored>,<white>" form, or "" when nothing is
// selected. It is the inverse of [ParseSelection].
func (s Selection) Value() string {
	if s.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d,%d", s.Colored, s.White)
}

// ParseSelection parses a selection string of the form "<colored>,<white>".
// An empty string returns a NO_CONFIGURATION_SELECTED error: the caller is
// expected to surface it as the normal "pick a configuration" state.
func ParseSelection(s string) (Selection, error) {
	if err := errors.ValidateSelection(s); err != nil {
		return Selection{}, err
	}
	parts := strings.SplitN(s, ",", 2)
	colored, err := strconv.Atoi(parts[0])
	if err != nil {
		return Selection{}, errors.Wrap(errors.ErrCodeInvalidSelection, err, "invalid colored count in %q", s)
	}
	white, err := strconv.Atoi(parts[1])
	if err != nil {
		return Selection{}, errors.Wrap(errors.ErrCodeInvalidSelection, err, "invalid white count in %q", s)
	}
	return Selection{Colored: colored, White: white}, nil
}

// positiveFinite reports whether v is usable as a divisor: finite and > 0.
func positiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// sameWidth compares two widths at display precision. Labels print widths
// to one decimal place, so the 0.05 cm epsilon merges exactly the pairs
// that would otherwise repeat the same printed number twice. A ratio of 1
// always lands here; ratios near 1 do too once the difference rounds away.
func sameWidth(a, b float64) bool {
	return math.Abs(a-b) < 0.05
}
