package room

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jmendler/stripeplan/pkg/errors"
	"github.com/jmendler/stripeplan/pkg/stripe"
)

// tomlRoom is the hand-written room file format. It is deliberately flatter
// than the JSON document: measurements sit in small sections and the
// selection is the same "<colored>,<white>" string the choice widget uses.
//
//	name = "living room"
//
//	[wall]
//	length = 480.0
//	height = 260.0
//	direction = "vertical"
//
//	[stripes]
//	min = 20.0
//	max = 45.0
//	ratio = 1.0
//	selection = "9,8"
//	colored = "#4a7ba6"
//	white = "#f5f0e8"
//
//	[wardrobe]
//	width = 120.0
//	height = 200.0
//	right = 48.0
//	color = "#b08968"
//
//	[window]
//	width = 96.0
//	height = 130.0
//	right = 120.0
//	floor = 91.0
//	color = "#9db4c0"
type tomlRoom struct {
	Name string `toml:"name"`
	Wall struct {
		Length    float64 `toml:"length"`
		Height    float64 `toml:"height"`
		Direction string  `toml:"direction"`
	} `toml:"wall"`
	Stripes struct {
		Min       float64 `toml:"min"`
		Max       float64 `toml:"max"`
		Ratio     float64 `toml:"ratio"`
		Selection string  `toml:"selection"`
		Colored   string  `toml:"colored"`
		White     string  `toml:"white"`
	} `toml:"stripes"`
	Wardrobe *tomlObstacle `toml:"wardrobe"`
	Window   *tomlObstacle `toml:"window"`
}

type tomlObstacle struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Right  float64 `toml:"right"`
	Floor  float64 `toml:"floor"`
	Color  string  `toml:"color"`
}

// ImportTOML reads a hand-written room file. Obstacle sections are optional;
// a present section marks the obstacle as shown.
func ImportTOML(path string) (*Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read room file %s", path)
	}
	return parseTOML(data, path)
}

func parseTOML(data []byte, path string) (*Room, error) {
	var tr tomlRoom
	if err := toml.Unmarshal(data, &tr); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse room file %s", path)
	}

	name := tr.Name
	if name == "" {
		name = strings.TrimSuffix(strings.TrimSuffix(path, ".toml"), ".room")
	}

	direction, err := stripe.ParseDirection(tr.Wall.Direction)
	if err != nil {
		return nil, err
	}

	r := New(name)
	r.Wall = stripe.Wall{LengthCm: tr.Wall.Length, HeightCm: tr.Wall.Height, Direction: direction}
	r.Constraint = stripe.Constraint{MinCm: tr.Stripes.Min, MaxCm: tr.Stripes.Max}
	if tr.Stripes.Ratio != 0 {
		r.Ratio = tr.Stripes.Ratio
	}
	if tr.Stripes.Colored != "" {
		r.Colors.Colored = tr.Stripes.Colored
	}
	if tr.Stripes.White != "" {
		r.Colors.White = tr.Stripes.White
	}
	if tr.Stripes.Selection != "" {
		sel, err := stripe.ParseSelection(tr.Stripes.Selection)
		if err != nil {
			return nil, err
		}
		r.Selection = sel
	}

	r.Wardrobe = importObstacle(tr.Wardrobe, stripe.ObstacleWardrobe)
	r.Window = importObstacle(tr.Window, stripe.ObstacleWindow)

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func importObstacle(to *tomlObstacle, kind stripe.ObstacleKind) stripe.Obstacle {
	if to == nil {
		return stripe.Obstacle{Kind: kind}
	}
	o := stripe.Obstacle{
		Kind:     kind,
		Shown:    true,
		WidthCm:  to.Width,
		HeightCm: to.Height,
		RightCm:  to.Right,
		Color:    to.Color,
	}
	if kind == stripe.ObstacleWindow {
		o.FloorCm = to.Floor
	}
	return o
}
