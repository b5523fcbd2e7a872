package stripe

import (
	"math"
	"testing"
)

func TestEnumerate(t *testing.T) {
	tests := []struct {
		name       string
		wall       Wall
		constraint Constraint
		ratio      float64
		wantCount  int
		check      func(t *testing.T, configs []Config)
	}{
		{
			name:       "StandardWallEqualRatio",
			wall:       Wall{LengthCm: 480, HeightCm: 260, Direction: DirectionVertical},
			constraint: Constraint{MinCm: 20, MaxCm: 45},
			ratio:      1,
			wantCount:  7,
			check: func(t *testing.T, configs []Config) {
				found := false
				for _, c := range configs {
					if c.Colored == 9 && c.White == 8 {
						found = true
						want := 480.0 / 17.0
						if math.Abs(c.WhiteCm-want) > 1e-9 {
							t.Errorf("WhiteCm = %v, want %v", c.WhiteCm, want)
						}
						if c.ColoredCm != c.WhiteCm {
							t.Errorf("ColoredCm = %v, want %v (ratio 1)", c.ColoredCm, c.WhiteCm)
						}
					}
				}
				if !found {
					t.Error("configuration (9,8) missing from output")
				}
			},
		},
		{
			name:       "RatioTwoExcludesOversizedConfig",
			wall:       Wall{LengthCm: 480, HeightCm: 260, Direction: DirectionVertical},
			constraint: Constraint{MinCm: 20, MaxCm: 45},
			ratio:      2,
			check: func(t *testing.T, configs []Config) {
				// (3,2) at ratio 2 gives white 60, colored 120 - both
				// above max 45, so it must not appear.
				for _, c := range configs {
					if c.Colored == 3 && c.White == 2 {
						t.Errorf("configuration (3,2) should be excluded, got widths colored %v white %v", c.ColoredCm, c.WhiteCm)
					}
				}
			},
		},
		{
			name:       "HorizontalUsesHeight",
			wall:       Wall{LengthCm: 1000, HeightCm: 260, Direction: DirectionHorizontal},
			constraint: Constraint{MinCm: 20, MaxCm: 45},
			ratio:      1,
			check: func(t *testing.T, configs []Config) {
				for _, c := range configs {
					// 260 / (2n+1) must match, not 1000-based widths.
					want := 260.0 / float64(c.Total())
					if math.Abs(c.WhiteCm-want) > 1e-9 {
						t.Errorf("WhiteCm = %v, want %v (height-based)", c.WhiteCm, want)
					}
				}
			},
		},
		{
			name:       "ZeroLength",
			wall:       Wall{LengthCm: 0, HeightCm: 260, Direction: DirectionVertical},
			constraint: Constraint{MinCm: 20, MaxCm: 45},
			ratio:      1,
			wantCount:  0,
		},
		{
			name:       "NegativeLength",
			wall:       Wall{LengthCm: -480, HeightCm: 260, Direction: DirectionVertical},
			constraint: Constraint{MinCm: 20, MaxCm: 45},
			ratio:      1,
			wantCount:  0,
		},
		{
			name:       "NaNLength",
			wall:       Wall{LengthCm: math.NaN(), HeightCm: 260, Direction: DirectionVertical},
			constraint: Constraint{MinCm: 20, MaxCm: 45},
			ratio:      1,
			wantCount:  0,
		},
		{
			name:       "ZeroRatio",
			wall:       Wall{LengthCm: 480, HeightCm: 260, Direction: DirectionVertical},
			constraint: Constraint{MinCm: 20, MaxCm: 45},
			ratio:      0,
			wantCount:  0,
		},
		{
			name:       "ImpossibleConstraint",
			wall:       Wall{LengthCm: 480, HeightCm: 260, Direction: DirectionVertical},
			constraint: Constraint{MinCm: 200, MaxCm: 300},
			ratio:      1,
			wantCount:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configs := Enumerate(tt.wall, tt.constraint, tt.ratio)

			if tt.check == nil || tt.wantCount > 0 {
				if got := len(configs); got != tt.wantCount {
					t.Errorf("len(configs) = %d, want %d", got, tt.wantCount)
				}
			}
			if tt.check != nil {
				tt.check(t, configs)
			}
		})
	}
}

func TestEnumerateValidity(t *testing.T) {
	wall := Wall{LengthCm: 480, HeightCm: 260, Direction: DirectionVertical}
	constraint := Constraint{MinCm: 20, MaxCm: 45}

	for _, ratio := range []float64{0.5, 1, 1.5, 2} {
		for _, c := range Enumerate(wall, constraint, ratio) {
			if !constraint.Contains(c.WhiteCm) {
				t.Errorf("ratio %v: white width %v outside [%v,%v]", ratio, c.WhiteCm, constraint.MinCm, constraint.MaxCm)
			}
			if !constraint.Contains(c.ColoredCm) {
				t.Errorf("ratio %v: colored width %v outside [%v,%v]", ratio, c.ColoredCm, constraint.MinCm, constraint.MaxCm)
			}
			if c.Colored != c.White+1 {
				t.Errorf("ratio %v: colored = %d, want white+1 = %d", ratio, c.Colored, c.White+1)
			}
		}
	}
}

func TestEnumerateOrdering(t *testing.T) {
	wall := Wall{LengthCm: 480, HeightCm: 260, Direction: DirectionVertical}
	configs := Enumerate(wall, Constraint{MinCm: 10, MaxCm: 60}, 1)

	if len(configs) < 2 {
		t.Fatalf("expected multiple configs, got %d", len(configs))
	}
	for i := 1; i < len(configs); i++ {
		prev, curr := configs[i-1], configs[i]
		if curr.Total() < prev.Total() {
			t.Errorf("ordering violated at %d: total %d after %d", i, curr.Total(), prev.Total())
		}
		if curr.Total() == prev.Total() && curr.Colored < prev.Colored {
			t.Errorf("tie-break violated at %d: colored %d after %d", i, curr.Colored, prev.Colored)
		}
	}
}

func TestEnumerateDeterminism(t *testing.T) {
	wall := Wall{LengthCm: 480, HeightCm: 260, Direction: DirectionVertical}
	constraint := Constraint{MinCm: 20, MaxCm: 45}

	first := Enumerate(wall, constraint, 1.5)
	second := Enumerate(wall, constraint, 1.5)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("config %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestEnumerateRatioIdentity(t *testing.T) {
	wall := Wall{LengthCm: 480, HeightCm: 260, Direction: DirectionVertical}
	for _, c := range Enumerate(wall, Constraint{MinCm: 20, MaxCm: 45}, 1) {
		if c.ColoredCm != c.WhiteCm {
			t.Errorf("(%d,%d): colored %v != white %v at ratio 1", c.Colored, c.White, c.ColoredCm, c.WhiteCm)
		}
	}
}
