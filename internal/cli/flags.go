package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmendler/stripeplan/pkg/plan"
)

// wallFlags holds the raw wall and stripe flags shared by the planning
// commands. Values stay strings so flag input goes through the same
// boundary parsing as a UI form: empty or malformed numbers degrade to
// validation failures instead of cobra parse errors.
type wallFlags struct {
	length    string
	height    string
	min       string
	max       string
	ratio     string
	direction string
	selection string

	coloredColor string
	whiteColor   string
	wardrobe     string
	window       string
}

// register binds the wall flags to cmd. Render-only flags (colors,
// obstacles) are bound when withRender is true.
func (f *wallFlags) register(cmd *cobra.Command, withRender bool) {
	cmd.Flags().StringVarP(&f.length, "length", "l", "", "wall length in cm")
	cmd.Flags().StringVarP(&f.height, "height", "H", "", "wall height in cm")
	cmd.Flags().StringVar(&f.min, "min", "", "minimum stripe thickness in cm")
	cmd.Flags().StringVar(&f.max, "max", "", "maximum stripe thickness in cm")
	cmd.Flags().StringVarP(&f.ratio, "ratio", "r", "", "colored:white width ratio (default 1)")
	cmd.Flags().StringVarP(&f.direction, "direction", "d", "", "stripe direction: vertical (default), horizontal")

	if withRender {
		cmd.Flags().StringVar(&f.coloredColor, "colored-color", "", "colored stripe fill as #rrggbb")
		cmd.Flags().StringVar(&f.whiteColor, "white-color", "", "white stripe fill as #rrggbb")
		cmd.Flags().StringVar(&f.wardrobe, "wardrobe", "", "wardrobe overlay as WIDTHxHEIGHT[+RIGHT] in cm")
		cmd.Flags().StringVar(&f.window, "window", "", "window overlay as WIDTHxHEIGHT[+RIGHT[+FLOOR]] in cm")
	}
}

// registerSelection binds the --select flag for commands that commit a
// configuration.
func (f *wallFlags) registerSelection(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.selection, "select", "s", "", `chosen configuration as "<colored>,<white>"`)
}

// form converts the flags into the raw planning form. Config file
// defaults fill any constraint or color the flags left empty.
func (f *wallFlags) form(c *CLI) (plan.Form, error) {
	cfg := c.Config()

	form := plan.Form{
		Length:       f.length,
		Height:       f.height,
		Min:          f.min,
		Max:          f.max,
		Ratio:        f.ratio,
		Direction:    f.direction,
		Selection:    f.selection,
		ColoredColor: f.coloredColor,
		WhiteColor:   f.whiteColor,
	}
	if form.Min == "" && cfg.Defaults.MinCm > 0 {
		form.Min = fmt.Sprintf("%g", cfg.Defaults.MinCm)
	}
	if form.Max == "" && cfg.Defaults.MaxCm > 0 {
		form.Max = fmt.Sprintf("%g", cfg.Defaults.MaxCm)
	}
	if form.Ratio == "" && cfg.Defaults.Ratio > 0 {
		form.Ratio = fmt.Sprintf("%g", cfg.Defaults.Ratio)
	}
	if form.Direction == "" {
		form.Direction = cfg.Defaults.Direction
	}
	if form.ColoredColor == "" {
		form.ColoredColor = cfg.Colors.Colored
	}
	if form.WhiteColor == "" {
		form.WhiteColor = cfg.Colors.White
	}

	var err error
	if form.Wardrobe, err = parseObstacleFlag(f.wardrobe); err != nil {
		return form, fmt.Errorf("invalid --wardrobe: %w", err)
	}
	if form.Window, err = parseObstacleFlag(f.window); err != nil {
		return form, fmt.Errorf("invalid --window: %w", err)
	}
	return form, nil
}

// parseObstacleFlag parses the compact obstacle syntax
// WIDTHxHEIGHT[+RIGHT[+FLOOR]], all centimeters. An empty string means
// no overlay.
func parseObstacleFlag(s string) (plan.ObstacleForm, error) {
	if s == "" {
		return plan.ObstacleForm{}, nil
	}

	parts := strings.Split(s, "+")
	size := strings.SplitN(parts[0], "x", 2)
	if len(size) != 2 || size[0] == "" || size[1] == "" {
		return plan.ObstacleForm{}, fmt.Errorf("%q: expected WIDTHxHEIGHT[+RIGHT[+FLOOR]]", s)
	}
	if len(parts) > 3 {
		return plan.ObstacleForm{}, fmt.Errorf("%q: too many offsets", s)
	}

	of := plan.ObstacleForm{
		Shown:  true,
		Width:  size[0],
		Height: size[1],
	}
	if len(parts) > 1 {
		of.Right = parts[1]
	}
	if len(parts) > 2 {
		of.Floor = parts[2]
	}
	return of, nil
}
