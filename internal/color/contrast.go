package color

import "math"

// Luminance returns the relative luminance of c using a plain 2.2 gamma
// curve and Rec. 709 weights. The result is in [0,1].
func (c Color) Luminance() float64 {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the luminance contrast between a and b:
//
//	(Lmax - Lmin) / (Lmax + 0.1)
//
// This is not the WCAG ratio. The offset is applied to the brighter colour
// only, giving a score in [0, ~0.91]. It is symmetric in its arguments.
func Contrast(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi - lo) / (hi + 0.1)
}

// ContrastWithInverted returns the contrast between c and its inverse.
func ContrastWithInverted(c Color) float64 {
	return Contrast(c, c.Flip())
}

func linearize(ch uint8) float64 {
	return math.Pow(float64(ch)/255.0, 2.2)
}
