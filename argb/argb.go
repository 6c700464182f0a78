// Package argb implements the packed 32-bit color representation used across mcuc,
// together with hex conversion and the WCAG 2.x luminance and contrast metrics.
package argb

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ARGB is a packed alpha, red, green, blue color. User-facing colors are always fully opaque.
type ARGB uint32

// opaque is the alpha mask forced onto every parsed or constructed color.
const opaque ARGB = 0xff000000

// Common reference colors.
const (
	Black ARGB = 0xff000000
	White ARGB = 0xffffffff
)

// ParseError reports a malformed hex color.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid hex color %q: %s", e.Input, e.Reason)
}

// Parse converts a "#rrggbb" or "rrggbb" string into an opaque ARGB value.
// Parsing is case-insensitive; any input that is not exactly six hex digits
// after the optional '#' is rejected with a *ParseError.
func Parse(hex string) (ARGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return 0, &ParseError{Input: hex, Reason: fmt.Sprintf("expected 6 hex digits, got %d", len(digits))}
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, &ParseError{Input: hex, Reason: "not a hexadecimal value"}
	}

	return ARGB(value) | opaque, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(hex string) ARGB {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGB packs the given channels into an opaque color.
func FromRGB(r, g, b uint8) ARGB {
	return opaque | ARGB(r)<<16 | ARGB(g)<<8 | ARGB(b)
}

// FromColor converts any color.Color, discarding transparency.
func FromColor(c color.Color) ARGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(n.R, n.G, n.B)
}

// Channels returns the red, green and blue components.
func (c ARGB) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA returns the color as an opaque color.RGBA.
func (c ARGB) RGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex returns the lowercase "#rrggbb" form. The alpha channel is not displayed.
func (c ARGB) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

func (c ARGB) String() string {
	return c.Hex()
}
