package stripe

import (
	"cmp"
	"slices"
)

// maxPatternIndex caps enumeration at 15 white stripes (16 colored).
// The cap is a fixed policy choice covering the practical range of wall
// patterns, not derived from wall size; it bounds both enumeration cost and
// the length of the resulting choice list.
const maxPatternIndex = 15

// widths solves the fill relation for a (colored, white) count pair:
//
//	activeDim = colored·ratio·whiteWidth + white·whiteWidth
//
// so whiteWidth = activeDim / (colored·ratio + white) and
// coloredWidth = ratio·whiteWidth.
func widths(activeDim, ratio float64, colored, white int) (whiteCm, coloredCm float64) {
	denom := float64(colored)*ratio + float64(white)
	whiteCm = activeDim / denom
	coloredCm = ratio * whiteCm
	return whiteCm, coloredCm
}

// Enumerate returns every stripe configuration whose band widths fall inside
// the constraint window, ordered ascending by total stripe count with ties
// broken by colored count. Simplest patterns surface first.
//
// A non-positive or non-finite active dimension or ratio yields an empty
// slice: that is the normal "not enough information yet" state while the
// user is still editing, not an error.
//
// Enumerate is deterministic: identical inputs always produce an identical,
// identically ordered result.
func Enumerate(wall Wall, constraint Constraint, ratio float64) []Config {
	activeDim := wall.ActiveDim()
	if !positiveFinite(activeDim) || !positiveFinite(ratio) {
		return nil
	}

	var configs []Config
	for n := 1; n <= maxPatternIndex; n++ {
		colored, white := n+1, n
		whiteCm, coloredCm := widths(activeDim, ratio, colored, white)
		if !constraint.Contains(whiteCm) || !constraint.Contains(coloredCm) {
			continue
		}
		configs = append(configs, Config{
			Colored:   colored,
			White:     white,
			ColoredCm: coloredCm,
			WhiteCm:   whiteCm,
		})
	}

	slices.SortStableFunc(configs, func(a, b Config) int {
		if c := cmp.Compare(a.Total(), b.Total()); c != 0 {
			return c
		}
		return cmp.Compare(a.Colored, b.Colored)
	})
	return configs
}
