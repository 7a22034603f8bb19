package recolor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a color string is not a 6 digit RGB hex value.
var ErrInvalidColor = errors.New("invalid color")

// Color is an RGB color with 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// ParseHex parses "#rrggbb" or "rrggbb" (any case) into a Color.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w %q: must be 6 hex digits", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: not hexadecimal", ErrInvalidColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseHex is ParseHex for package-level constants. It panics on bad input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#rrggbb" in lowercase.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Darken scales every channel by (1 - factor) and rounds to the nearest
// integer. The factor is clamped to [0, 1].
func Darken(c Color, factor float64) Color {
	if math.IsNaN(factor) || factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	scale := 1 - factor
	ch := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) * scale))
	}
	return Color{R: ch(c.R), G: ch(c.G), B: ch(c.B)}
}

// DarkenHex is Darken over hex strings.
func DarkenHex(hex string, factor float64) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return Darken(c, factor).Hex(), nil
}
