package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseObstacleFlag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [4]string // width, height, right, floor
		shown   bool
		wantErr bool
	}{
		{name: "Empty", input: "", shown: false},
		{name: "SizeOnly", input: "120x200", want: [4]string{"120", "200", "", ""}, shown: true},
		{name: "WithRight", input: "120x200+48", want: [4]string{"120", "200", "48", ""}, shown: true},
		{name: "WithRightAndFloor", input: "120x100+48+90", want: [4]string{"120", "100", "48", "90"}, shown: true},
		{name: "MissingHeight", input: "120x", wantErr: true},
		{name: "NoSeparator", input: "120", wantErr: true},
		{name: "TooManyOffsets", input: "120x100+1+2+3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			of, err := parseObstacleFlag(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseObstacleFlag(%q): %v", tt.input, err)
			}
			if of.Shown != tt.shown {
				t.Errorf("shown = %v, want %v", of.Shown, tt.shown)
			}
			got := [4]string{of.Width, of.Height, of.Right, of.Floor}
			if got != tt.want {
				t.Errorf("fields = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWallFlagsFormAppliesConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[defaults]
min = 18
max = 40
ratio = 1.5

[colors]
colored = "#aa3333"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newTestCLI(t)
	c.configPath = path

	flags := wallFlags{length: "480", height: "260", max: "45"}
	form, err := flags.form(c)
	if err != nil {
		t.Fatalf("form: %v", err)
	}

	if form.Min != "18" {
		t.Errorf("min = %q, want config default 18", form.Min)
	}
	if form.Max != "45" {
		t.Errorf("max = %q, want explicit flag 45 to win", form.Max)
	}
	if form.Ratio != "1.5" {
		t.Errorf("ratio = %q, want config default 1.5", form.Ratio)
	}
	if form.ColoredColor != "#aa3333" {
		t.Errorf("colored color = %q, want config value", form.ColoredColor)
	}
	if form.WhiteColor != "#f5f0e8" {
		t.Errorf("white color = %q, want built-in default", form.WhiteColor)
	}
}

func TestWallFlagsFormObstacles(t *testing.T) {
	c := newTestCLI(t)
	flags := wallFlags{
		length: "480", height: "260",
		wardrobe: "120x200+48",
		window:   "120x100+48+90",
	}
	form, err := flags.form(c)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	opts := form.Options()

	if !opts.Wardrobe.Shown || opts.Wardrobe.WidthCm != 120 || opts.Wardrobe.RightCm != 48 {
		t.Errorf("wardrobe = %+v, want shown 120 wide 48 from right", opts.Wardrobe)
	}
	if !opts.Window.Shown || opts.Window.FloorCm != 90 {
		t.Errorf("window = %+v, want shown with floor offset 90", opts.Window)
	}
}

func TestWallFlagsFormRejectsBadObstacle(t *testing.T) {
	c := newTestCLI(t)
	flags := wallFlags{length: "480", height: "260", wardrobe: "wide"}
	if _, err := flags.form(c); err == nil {
		t.Fatal("expected error for malformed obstacle flag")
	}
}
