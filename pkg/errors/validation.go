package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidatePositive checks that a centimeter value is a positive, finite
// number. This is the guard applied to every dimension before it is used in
// a division, so zero, negative, NaN, and infinite values are all rejected.
func ValidatePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", field)
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %.1f", field, v)
	}
	return nil
}

// ValidateRoomName validates a room name for safety and correctness.
// Room names become file names in the file store, so the rules are
// intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateRoomName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRoom, "room name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidRoom, "room name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidRoom, "room name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidRoom, "room name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// hexColorRegex matches 6-digit hex colors with a leading #.
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateHexColor validates a fill color of the form "#rrggbb".
// Shorthand 3-digit colors are not accepted; the render layer derives
// border colors channel-by-channel and needs the full form.
func ValidateHexColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q (expected #rrggbb)", color)
	}
	return nil
}

// ValidateSelection validates a configuration selection string of the form
// "<colored>,<white>". It only checks shape; the layout calculator decides
// whether the counts themselves are acceptable.
var selectionRegex = regexp.MustCompile(`^[0-9]+,[0-9]+$`)

func ValidateSelection(sel string) error {
	if sel == "" {
		return New(ErrCodeNoConfigSelected, "no stripe configuration selected")
	}
	if !selectionRegex.MatchString(sel) {
		return New(ErrCodeInvalidSelection, "invalid selection: %q (expected \"<colored>,<white>\")", sel)
	}
	return nil
}
