package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned for strings that are not a 24-bit hex color.
var ErrInvalidColor = errors.New("invalid hex color")

// Color is a 24-bit RGB value, 0xRRGGBB.
type Color uint32

// ParseColor accepts "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if h == "" || len(h) > 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color(v), nil
}

// Darken scales each channel by factor, clamped to [0, 255].
func (c Color) Darken(factor float64) Color {
	scale := func(ch uint32) uint32 {
		v := float64(ch) * factor
		switch {
		case v < 0:
			return 0
		case v > 255:
			return 255
		}
		return uint32(v)
	}
	r := scale(uint32(c>>16) & 0xff)
	g := scale(uint32(c>>8) & 0xff)
	b := scale(uint32(c) & 0xff)
	return Color(r<<16 | g<<8 | b)
}

// Hex renders c as "#rrggbb".
func (c Color) Hex() string { return fmt.Sprintf("#%06x", uint32(c)&0xffffff) }

func (c Color) String() string { return c.Hex() }

// MarshalText encodes the color in hex form so scene nodes serialize cleanly.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText accepts the forms ParseColor does.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
