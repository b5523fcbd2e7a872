package wall

import (
	"encoding/json"
	"fmt"

	"github.com/jmendler/stripeplan/pkg/errors"
	"github.com/jmendler/stripeplan/pkg/stripe"
)

// Default frame geometry in SVG user units.
const (
	DefaultFrameWidth  = 800.0
	DefaultFrameHeight = 520.0
	DefaultMargin      = 40.0
)

// BlockKind identifies what a scene block represents.
type BlockKind string

const (
	BlockColored  BlockKind = "colored"
	BlockWhite    BlockKind = "white"
	BlockWardrobe BlockKind = "wardrobe"
	BlockWindow   BlockKind = "window"
)

// Block is a single positioned rectangle. Coordinates are in SVG user
// units with the origin at the top-left of the frame.
type Block struct {
	ID     string    `json:"id"`
	Kind   BlockKind `json:"kind"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	W      float64   `json:"w"`
	H      float64   `json:"h"`
	Fill   string    `json:"fill"`
	Border string    `json:"border,omitempty"`
}

// Right returns the right edge of the block.
func (b Block) Right() float64 { return b.X + b.W }

// Bottom returns the bottom edge of the block.
func (b Block) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center point of the block.
func (b Block) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center point of the block.
func (b Block) CenterY() float64 { return b.Y + b.H/2 }

// Scene is a fully positioned wall preview. It contains everything a sink
// needs to draw the image; no geometry is derived after this point.
type Scene struct {
	FrameWidth  float64 `json:"frame_width"`
	FrameHeight float64 `json:"frame_height"`

	// Wall rectangle within the frame.
	WallX float64 `json:"wall_x"`
	WallY float64 `json:"wall_y"`
	WallW float64 `json:"wall_w"`
	WallH float64 `json:"wall_h"`

	// Blocks in paint order: stripes first, then obstacle overlays.
	Blocks []Block `json:"blocks"`

	Summary string `json:"summary,omitempty"`

	// Warnings carries advisory messages (obstacle overflow). They never
	// prevent rendering.
	Warnings []string `json:"warnings,omitempty"`
}

// Options configures scene construction.
type Options struct {
	FrameWidth  float64
	FrameHeight float64

	ColoredColor string
	WhiteColor   string

	// Obstacles to overlay. Hidden or unusable obstacles are skipped.
	Obstacles []stripe.Obstacle
}

// setDefaults fills zero-valued options.
func (o *Options) setDefaults() {
	if o.FrameWidth <= 0 {
		o.FrameWidth = DefaultFrameWidth
	}
	if o.FrameHeight <= 0 {
		o.FrameHeight = DefaultFrameHeight
	}
	if o.ColoredColor == "" {
		o.ColoredColor = "#4a7ba6"
	}
	if o.WhiteColor == "" {
		o.WhiteColor = "#f5f0e8"
	}
}

// Build maps a committed layout onto the frame. The wall is scaled to fit
// inside the frame margins with its aspect ratio preserved, stripes are laid
// out along the active dimension, and each visible obstacle becomes an
// overlay block positioned by its percentage placement.
func Build(w stripe.Wall, l stripe.Layout, opts Options) (Scene, error) {
	opts.setDefaults()

	if w.LengthCm <= 0 || w.HeightCm <= 0 {
		return Scene{}, errors.New(errors.ErrCodeInvalidInput, "wall dimensions must be positive to build a scene")
	}
	if l.Colored <= 0 || l.White <= 0 {
		return Scene{}, errors.New(errors.ErrCodeInvalidInput, "layout has no stripes")
	}

	availW := opts.FrameWidth - 2*DefaultMargin
	availH := opts.FrameHeight - 2*DefaultMargin
	scale := availW / w.LengthCm
	if s := availH / w.HeightCm; s < scale {
		scale = s
	}

	s := Scene{
		FrameWidth:  opts.FrameWidth,
		FrameHeight: opts.FrameHeight,
		WallW:       w.LengthCm * scale,
		WallH:       w.HeightCm * scale,
		Summary:     l.Summary,
	}
	s.WallX = (opts.FrameWidth - s.WallW) / 2
	s.WallY = (opts.FrameHeight - s.WallH) / 2

	s.Blocks = append(s.Blocks, stripeBlocks(&s, l, scale, opts)...)

	for _, o := range opts.Obstacles {
		p := stripe.PlaceObstacle(o, w)
		if p.Hidden {
			continue
		}
		s.Blocks = append(s.Blocks, obstacleBlock(&s, o, p))
		if p.Overflow {
			s.Warnings = append(s.Warnings, p.Warning)
		}
	}

	return s, nil
}

// stripeBlocks lays alternating bands along the active dimension, starting
// and ending with a colored stripe.
func stripeBlocks(s *Scene, l stripe.Layout, scale float64, opts Options) []Block {
	coloredPx := l.ColoredCm * scale
	whitePx := l.WhiteCm * scale

	total := l.Colored + l.White
	blocks := make([]Block, 0, total)

	pos := 0.0
	for i := 0; i < total; i++ {
		colored := i%2 == 0
		size := whitePx
		fill := opts.WhiteColor
		kind := BlockWhite
		if colored {
			size = coloredPx
			fill = opts.ColoredColor
			kind = BlockColored
		}

		b := Block{
			ID:   fmt.Sprintf("stripe-%d", i),
			Kind: kind,
			Fill: fill,
		}
		if l.Direction == stripe.DirectionHorizontal {
			b.X, b.W = s.WallX, s.WallW
			b.Y, b.H = s.WallY+pos, size
		} else {
			b.X, b.W = s.WallX+pos, size
			b.Y, b.H = s.WallY, s.WallH
		}
		blocks = append(blocks, b)
		pos += size
	}
	return blocks
}

// obstacleBlock converts a percentage placement into frame coordinates.
// Offsets are measured from the right edge and the floor, so overflowing
// offsets can position a block outside the wall rectangle; that is drawn
// as-is and reported through Scene.Warnings.
func obstacleBlock(s *Scene, o stripe.Obstacle, p stripe.Placement) Block {
	w := p.WidthPct / 100 * s.WallW
	h := p.HeightPct / 100 * s.WallH
	right := p.RightPct / 100 * s.WallW
	floor := p.FloorPct / 100 * s.WallH

	return Block{
		ID:     string(o.Kind),
		Kind:   BlockKind(o.Kind),
		X:      s.WallX + s.WallW - right - w,
		Y:      s.WallY + s.WallH - floor - h,
		W:      w,
		H:      h,
		Fill:   o.Color,
		Border: stripe.BorderColor(o.Color),
	}
}

// MarshalScene serializes a Scene to JSON bytes for caching.
func MarshalScene(s Scene) ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalScene deserializes a Scene from JSON bytes.
func UnmarshalScene(data []byte) (Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("unmarshal scene: %w", err)
	}
	return s, nil
}
