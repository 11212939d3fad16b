package color

import colorful "github.com/lucasb-eyer/go-colorful"

// Random returns a random bright colour, suitable as a harmony seed.
func Random() Color {
	r, g, b := colorful.HappyColor().RGB255()
	return Color{R: r, G: g, B: b}
}
