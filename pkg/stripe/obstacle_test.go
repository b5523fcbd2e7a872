package stripe

import (
	"math"
	"testing"
)

func TestPlaceObstacle(t *testing.T) {
	wall := Wall{LengthCm: 480, HeightCm: 260, Direction: DirectionVertical}

	tests := []struct {
		name     string
		obstacle Obstacle
		wall     Wall
		want     Placement
	}{
		{
			name:     "Wardrobe",
			obstacle: Obstacle{Kind: ObstacleWardrobe, Shown: true, WidthCm: 120, HeightCm: 200, RightCm: 48},
			wall:     wall,
			want: Placement{
				WidthPct:  25,
				HeightPct: 200.0 / 260.0 * 100,
				RightPct:  10,
				FloorPct:  0, // wardrobes are floor-anchored
			},
		},
		{
			name:     "WindowWithFloorOffset",
			obstacle: Obstacle{Kind: ObstacleWindow, Shown: true, WidthCm: 96, HeightCm: 130, RightCm: 120, FloorCm: 91},
			wall:     wall,
			want: Placement{
				WidthPct:  20,
				HeightPct: 50,
				RightPct:  25,
				FloorPct:  35,
			},
		},
		{
			name:     "Hidden",
			obstacle: Obstacle{Kind: ObstacleWardrobe, Shown: false, WidthCm: 120, HeightCm: 200},
			wall:     wall,
			want:     Placement{Hidden: true},
		},
		{
			name:     "ZeroWidthHidden",
			obstacle: Obstacle{Kind: ObstacleWindow, Shown: true, WidthCm: 0, HeightCm: 130},
			wall:     wall,
			want:     Placement{Hidden: true},
		},
		{
			name:     "NegativeHeightHidden",
			obstacle: Obstacle{Kind: ObstacleWindow, Shown: true, WidthCm: 96, HeightCm: -1},
			wall:     wall,
			want:     Placement{Hidden: true},
		},
		{
			name:     "UnusableWallHidden",
			obstacle: Obstacle{Kind: ObstacleWardrobe, Shown: true, WidthCm: 120, HeightCm: 200},
			wall:     Wall{LengthCm: 0, HeightCm: 260},
			want:     Placement{Hidden: true},
		},
		{
			name:     "OversizedWidthClampedWithWarning",
			obstacle: Obstacle{Kind: ObstacleWardrobe, Shown: true, WidthCm: 600, HeightCm: 200},
			wall:     wall,
			want: Placement{
				WidthPct:  100,
				HeightPct: 200.0 / 260.0 * 100,
				Overflow:  true,
			},
		},
		{
			name:     "OffsetNotClamped",
			obstacle: Obstacle{Kind: ObstacleWardrobe, Shown: true, WidthCm: 120, HeightCm: 200, RightCm: 960},
			wall:     wall,
			want: Placement{
				WidthPct:  25,
				HeightPct: 200.0 / 260.0 * 100,
				RightPct:  200, // pushed fully off the wall, deliberately allowed
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceObstacle(tt.obstacle, tt.wall)

			if got.Hidden != tt.want.Hidden {
				t.Fatalf("Hidden = %v, want %v", got.Hidden, tt.want.Hidden)
			}
			if got.Hidden {
				return
			}

			approx := func(name string, got, want float64) {
				if math.Abs(got-want) > 1e-9 {
					t.Errorf("%s = %v, want %v", name, got, want)
				}
			}
			approx("WidthPct", got.WidthPct, tt.want.WidthPct)
			approx("HeightPct", got.HeightPct, tt.want.HeightPct)
			approx("RightPct", got.RightPct, tt.want.RightPct)
			approx("FloorPct", got.FloorPct, tt.want.FloorPct)

			if got.Overflow != tt.want.Overflow {
				t.Errorf("Overflow = %v, want %v", got.Overflow, tt.want.Overflow)
			}
			if tt.want.Overflow && got.Warning == "" {
				t.Error("expected advisory warning text")
			}
		})
	}
}

func TestDarkenHex(t *testing.T) {
	tests := []struct {
		name  string
		color string
		delta int
		want  string
	}{
		{"Basic", "#808080", 30, "#626262"},
		{"ClampsToZero", "#100510", 30, "#000000"},
		{"White", "#ffffff", 30, "#e1e1e1"},
		{"Black", "#000000", 30, "#000000"},
		{"InvalidPassthrough", "red", 30, "red"},
		{"ShorthandPassthrough", "#fff", 30, "#fff"},
		{"BadHexPassthrough", "#zzzzzz", 30, "#zzzzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DarkenHex(tt.color, tt.delta); got != tt.want {
				t.Errorf("DarkenHex(%q, %d) = %q, want %q", tt.color, tt.delta, got, tt.want)
			}
		})
	}
}

func TestBorderColor(t *testing.T) {
	// Both obstacle kinds share the same fixed darkening delta.
	if got := BorderColor("#b08968"); got != "#926b4a" {
		t.Errorf("BorderColor = %q, want %q", got, "#926b4a")
	}
}
