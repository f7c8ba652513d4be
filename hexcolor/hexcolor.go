// Package hexcolor provides a packed ARGB color value with hex-string
// parsing and formatting, plus interop with lipgloss and go-colorful.
package hexcolor

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 0xAARRGGBB value.
type Color uint32

// FormatError reports a hex string that could not be parsed.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("hexcolor: invalid hex color %q", e.Input)
}

// Parse converts a hex color string into a Color. A leading '#' is
// allowed and case is ignored. Six-digit input is treated as fully
// opaque; eight-digit input carries its own alpha in the leading byte.
func Parse(s string) (Color, error) {
	clean := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(clean) == 6 {
		clean = "FF" + clean
	}
	if len(clean) != 8 {
		return 0, &FormatError{Input: s}
	}
	v, err := strconv.ParseUint(clean, 16, 32)
	if err != nil {
		return 0, &FormatError{Input: s}
	}
	return Color(v), nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// package-level palette literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as "#AARRGGBB". Parse(c.Hex()) == c for every
// value; the alpha byte is always present even when the color was
// parsed from six digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Alpha returns the opacity byte.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red byte.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green byte.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue byte.
func (c Color) Blue() uint8 { return uint8(c) }

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

// Lipgloss returns the color in the form lipgloss styles accept.
// The alpha byte is dropped; terminals have no alpha channel.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.Red(), c.Green(), c.Blue()))
}

// Colorful returns the RGB portion as a go-colorful color for color
// math. Alpha is dropped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
	}
}

// Lightness returns the HSL lightness in [0, 1], useful for picking
// readable foregrounds.
func (c Color) Lightness() float64 {
	_, _, l := c.Colorful().Hsl()
	return l
}

// Lighten returns a copy moved toward white by the given percentage
// of lightness, keeping the alpha byte.
func (c Color) Lighten(percent float64) Color {
	h, s, l := c.Colorful().Hsl()
	l += percent / 100
	if l > 1 {
		l = 1
	}
	return fromColorful(colorful.Hsl(h, s, l), c.Alpha())
}

// Darken returns a copy moved toward black by the given percentage of
// lightness, keeping the alpha byte.
func (c Color) Darken(percent float64) Color {
	h, s, l := c.Colorful().Hsl()
	l -= percent / 100
	if l < 0 {
		l = 0
	}
	return fromColorful(colorful.Hsl(h, s, l), c.Alpha())
}

func fromColorful(cc colorful.Color, alpha uint8) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color(uint32(alpha)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}
