package stripe

import (
	"fmt"

	"github.com/jmendler/stripeplan/pkg/errors"
)

// Layout is the validated result of committing a stripe configuration to a
// wall. Widths are recomputed from the inputs supplied at commit time; the
// enumeration cache is never trusted, because the constraint or ratio may
// have changed since the configuration list was produced.
type Layout struct {
	Colored int `json:"colored" bson:"colored"`
	White   int `json:"white" bson:"white"`

	ColoredCm float64 `json:"colored_cm" bson:"colored_cm"`
	WhiteCm   float64 `json:"white_cm" bson:"white_cm"`

	// Band widths as percentages of the active dimension, for
	// proportional on-screen rendering.
	ColoredPct float64 `json:"colored_pct" bson:"colored_pct"`
	WhitePct   float64 `json:"white_pct" bson:"white_pct"`

	ActiveDimCm float64   `json:"active_dim_cm" bson:"active_dim_cm"`
	Direction   Direction `json:"direction" bson:"direction"`

	// Summary is the human-readable status line. Callers display it
	// verbatim, so its format (one decimal place, merged width when the
	// bands are equal) is part of the contract.
	Summary string `json:"summary" bson:"summary"`
}

// ComputeLayout validates the chosen configuration against the currently
// supplied wall, ratio, and constraint, and computes the final geometry.
//
// Validation is fail-fast, first failure wins:
//  1. wall length not positive finite → INVALID_WALL_LENGTH
//  2. wall height not positive finite → INVALID_WALL_HEIGHT
//  3. empty selection → NO_CONFIGURATION_SELECTED
//  4. recomputed widths outside the constraint → THICKNESS_OUT_OF_RANGE,
//     carrying both widths (see [errors.ThicknessError])
//
// All failures are recoverable input errors; the caller re-invokes with
// corrected inputs after the next user edit.
func ComputeLayout(wall Wall, sel Selection, ratio float64, constraint Constraint) (Layout, error) {
	if !positiveFinite(wall.LengthCm) {
		return Layout{}, errors.New(errors.ErrCodeInvalidWallLength, "wall length must be a positive number")
	}
	if !positiveFinite(wall.HeightCm) {
		return Layout{}, errors.New(errors.ErrCodeInvalidWallHeight, "wall height must be a positive number")
	}
	if sel.IsZero() {
		return Layout{}, errors.New(errors.ErrCodeNoConfigSelected, "no stripe configuration selected")
	}
	if !positiveFinite(ratio) {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "ratio must be a positive number")
	}

	activeDim := wall.ActiveDim()
	whiteCm, coloredCm := widths(activeDim, ratio, sel.Colored, sel.White)

	if !constraint.Contains(whiteCm) || !constraint.Contains(coloredCm) {
		te := &errors.ThicknessError{
			WhiteCm:   whiteCm,
			ColoredCm: coloredCm,
			MinCm:     constraint.MinCm,
			MaxCm:     constraint.MaxCm,
		}
		return Layout{}, errors.Wrap(errors.ErrCodeThicknessRange, te,
			"configuration %d,%d does not fit the thickness constraint", sel.Colored, sel.White)
	}

	l := Layout{
		Colored:     sel.Colored,
		White:       sel.White,
		ColoredCm:   coloredCm,
		WhiteCm:     whiteCm,
		ColoredPct:  coloredCm / activeDim * 100,
		WhitePct:    whiteCm / activeDim * 100,
		ActiveDimCm: activeDim,
		Direction:   wall.Direction,
	}
	if l.Direction == "" {
		l.Direction = DirectionVertical
	}
	l.Summary = summarize(wall, l)
	return l, nil
}

// summarize builds the status line. Equal band widths are merged into a
// single value; otherwise both are reported, colored first.
func summarize(wall Wall, l Layout) string {
	head := fmt.Sprintf("%.1f × %.1f cm wall · %d colored + %d white stripes (%s)",
		wall.LengthCm, wall.HeightCm, l.Colored, l.White, l.Direction)
	if sameWidth(l.ColoredCm, l.WhiteCm) {
		return fmt.Sprintf("%s · %.1f cm each", head, l.ColoredCm)
	}
	return fmt.Sprintf("%s · colored %.1f cm · white %.1f cm", head, l.ColoredCm, l.WhiteCm)
}
