// Package room defines the serialized room document.
//
// A Room bundles everything needed to recompute and render one wall: the
// wall dimensions, the thickness constraint, the stripe ratio and colors,
// the selected configuration, and the two optional obstacle overlays. Rooms
// round-trip through JSON files, the HTTP API, and the Redis and Mongo
// stores (hence the bson tags).
package room

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jmendler/stripeplan/pkg/errors"
	"github.com/jmendler/stripeplan/pkg/stripe"
)

// Colors holds the two stripe fill colors. "White" is the second color
// role, not necessarily the hex color white.
type Colors struct {
	Colored string `json:"colored" bson:"colored"`
	White   string `json:"white" bson:"white"`
}

// DefaultColors is used when a room does not specify its own.
var DefaultColors = Colors{Colored: "#4a7ba6", White: "#f5f0e8"}

// Room is the persisted planning document for one wall.
type Room struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`

	Wall       stripe.Wall       `json:"wall" bson:"wall"`
	Constraint stripe.Constraint `json:"constraint" bson:"constraint"`
	Ratio      float64           `json:"ratio" bson:"ratio"`
	Selection  stripe.Selection  `json:"selection,omitempty" bson:"selection,omitempty"`
	Colors     Colors            `json:"colors" bson:"colors"`

	Wardrobe stripe.Obstacle `json:"wardrobe,omitempty" bson:"wardrobe,omitempty"`
	Window   stripe.Obstacle `json:"window,omitempty" bson:"window,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// New creates a room with a fresh ID, default colors, and timestamps.
func New(name string) *Room {
	now := time.Now().UTC()
	return &Room{
		ID:        uuid.NewString(),
		Name:      name,
		Ratio:     1,
		Colors:    DefaultColors,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks the fields a room must carry before it can be planned or
// stored. The wall itself may still be incomplete (the planner tolerates
// that); only structurally bad values are rejected here.
func (r *Room) Validate() error {
	if err := errors.ValidateRoomName(r.Name); err != nil {
		return err
	}
	if r.Ratio != 0 {
		if err := errors.ValidatePositive("ratio", r.Ratio); err != nil {
			return err
		}
	}
	for _, c := range []string{r.Colors.Colored, r.Colors.White} {
		if c == "" {
			continue
		}
		if err := errors.ValidateHexColor(c); err != nil {
			return err
		}
	}
	return nil
}

// Normalize fills defaults for fields the user left empty.
func (r *Room) Normalize() {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Ratio == 0 {
		r.Ratio = 1
	}
	if r.Colors.Colored == "" {
		r.Colors.Colored = DefaultColors.Colored
	}
	if r.Colors.White == "" {
		r.Colors.White = DefaultColors.White
	}
	if r.Wardrobe.Kind == "" {
		r.Wardrobe.Kind = stripe.ObstacleWardrobe
	}
	if r.Window.Kind == "" {
		r.Window.Kind = stripe.ObstacleWindow
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.UpdatedAt = time.Now().UTC()
}

// Obstacles returns both overlays in render order (wardrobe first).
func (r *Room) Obstacles() []stripe.Obstacle {
	return []stripe.Obstacle{r.Wardrobe, r.Window}
}

// MarshalRoom serializes a Room to pretty-printed JSON bytes.
func MarshalRoom(r *Room) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalRoom deserializes JSON bytes into a Room and validates it.
func UnmarshalRoom(data []byte) (*Room, error) {
	var r Room
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal room: %w", err)
	}
	if r.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidRoom, "room must have a name")
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// WriteRoomFile writes a Room to a JSON file.
func WriteRoomFile(r *Room, path string) error {
	data, err := MarshalRoom(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadRoomFile reads a Room from a JSON file.
func ReadRoomFile(path string) (*Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalRoom(data)
}
