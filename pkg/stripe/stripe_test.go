package stripe

import (
	"testing"

	"github.com/jmendler/stripeplan/pkg/errors"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Selection
		wantCode errors.Code
	}{
		{"Valid", "9,8", Selection{Colored: 9, White: 8}, ""},
		{"SingleStripePair", "2,1", Selection{Colored: 2, White: 1}, ""},
		{"Empty", "", Selection{}, errors.ErrCodeNoConfigSelected},
		{"MissingComma", "98", Selection{}, errors.ErrCodeInvalidSelection},
		{"TrailingGarbage", "9,8,7", Selection{}, errors.ErrCodeInvalidSelection},
		{"NonNumeric", "a,b", Selection{}, errors.ErrCodeInvalidSelection},
		{"Negative", "-9,8", Selection{}, errors.ErrCodeInvalidSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelection(tt.input)

			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("expected error %s, got nil", tt.wantCode)
				}
				if code := errors.GetCode(err); code != tt.wantCode {
					t.Errorf("code = %s, want %s", code, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseSelection(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSelection(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"vertical", DirectionVertical, false},
		{"horizontal", DirectionHorizontal, false},
		{"", DirectionVertical, false},
		{"diagonal", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDirection(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDirection(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestConfigValueLabel(t *testing.T) {
	equal := Config{Colored: 9, White: 8, ColoredCm: 480.0 / 17.0, WhiteCm: 480.0 / 17.0}
	if got := equal.Value(); got != "9,8" {
		t.Errorf("Value = %q, want %q", got, "9,8")
	}
	if got := equal.Label(); got != "17 stripes · 28.2 cm" {
		t.Errorf("Label = %q, want %q", got, "17 stripes · 28.2 cm")
	}

	uneven := Config{Colored: 3, White: 2, ColoredCm: 120, WhiteCm: 60}
	if got := uneven.Label(); got != "5 stripes · colored 120.0 cm / white 60.0 cm" {
		t.Errorf("Label = %q, want %q", got, uneven.Label())
	}

	// Widths that print identically to one decimal merge rather than
	// repeating the same number for both colors.
	near := Config{Colored: 9, White: 8, ColoredCm: 28.24, WhiteCm: 28.21}
	if got := near.Label(); got != "17 stripes · 28.2 cm" {
		t.Errorf("Label = %q, want %q", got, "17 stripes · 28.2 cm")
	}
	apart := Config{Colored: 9, White: 8, ColoredCm: 28.3, WhiteCm: 28.2}
	if got := apart.Label(); got != "17 stripes · colored 28.3 cm / white 28.2 cm" {
		t.Errorf("Label = %q, want %q", got, apart.Label())
	}
}

func TestWallActiveDim(t *testing.T) {
	w := Wall{LengthCm: 480, HeightCm: 260}

	w.Direction = DirectionVertical
	if got := w.ActiveDim(); got != 480 {
		t.Errorf("vertical ActiveDim = %v, want 480", got)
	}

	w.Direction = DirectionHorizontal
	if got := w.ActiveDim(); got != 260 {
		t.Errorf("horizontal ActiveDim = %v, want 260", got)
	}
}
