package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents an sRGB color. The R, G, B uint8 fields are the source
// of truth; all other representations are derived from them.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a hex color string like "eb6f92" or "#EB6F92" into a
// Color. Exactly six hex digits are required after the optional leading #;
// anything else, including trailing junk, is an error.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexUpper returns the canonical bare uppercase form, e.g. "EB6F92".
func (c Color) HexUpper() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
