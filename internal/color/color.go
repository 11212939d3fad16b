// Package color implements the colour value used throughout huepick: an
// sRGB triple of 8-bit channels plus the conversions derived from it (hex,
// HSV, shades, inversion, luminance and contrast).
//
// The R, G and B fields are the only source of truth. Every other
// representation is computed on demand, so two colours are equal exactly
// when their channels are equal and == can be used directly.
package color

import "fmt"

// Color is an immutable 8-bit sRGB colour.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// New returns the colour with the given channels.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the canonical upper-case "#RRGGBB" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBString returns the channels as "(r,g,b)".
func (c Color) RGBString() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// String implements fmt.Stringer using the hex form.
func (c Color) String() string {
	return c.Hex()
}

// Flip returns the inverted colour (255 minus each channel).
func (c Color) Flip() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}
