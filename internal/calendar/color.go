package calendar

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple that keeps the hex string it was parsed from.
// Two colors are considered the same legend entry when their Hex matches.
type Color struct {
	R, G, B uint8
	Hex     string
}

// IsHexColor reports whether s is '#' followed by exactly six hex digits
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ParseColor converts a "#rrggbb" string into a Color
func ParseColor(hex string) (Color, error) {
	if !IsHexColor(hex) {
		return Color{}, fmt.Errorf("color %q is not a valid hex color code", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, Hex: hex}, nil
}

// MustParseColor is ParseColor for constants; it panics on invalid input
func MustParseColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) String() string {
	return c.Hex
}
