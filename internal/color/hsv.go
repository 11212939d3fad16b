package color

import "math"

// HSV is a hue/saturation/value triple. H is in degrees [0,360), S and V
// are in [0,1].
type HSV struct {
	H float64
	S float64
	V float64
}

// Round rounds hue to the nearest whole degree and saturation and value to
// three decimal places. Hue ties round up (x.5 goes to x+1 for positive
// and negative values alike); saturation and value use math.Round.
func (hsv HSV) Round() HSV {
	h := math.Floor(hsv.H)
	if hsv.H-h >= 0.5 {
		h = math.Ceil(hsv.H)
	}
	return HSV{
		H: h,
		S: math.Round(hsv.S*1000) / 1000,
		V: math.Round(hsv.V*1000) / 1000,
	}
}

// HSV converts c to rounded HSV.
func (c Color) HSV() HSV {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	cMax := math.Max(r, math.Max(g, b))
	cMin := math.Min(r, math.Min(g, b))
	delta := cMax - cMin

	var s float64
	if math.Abs(cMax) >= epsilon {
		s = delta / cMax
	}

	var h float64
	if math.Abs(delta) >= epsilon {
		// Exact comparisons pick the sector; on ties red wins over green.
		switch cMax {
		case r:
			h = 60 * floorMod((g-b)/delta, 6)
		case g:
			h = 60 * ((b-r)/delta + 2)
		default:
			h = 60 * ((r-g)/delta + 4)
		}
	}

	out := HSV{H: h, S: s, V: cMax}.Round()
	if out.H >= 360 {
		out.H -= 360
	}
	return out
}

// FromHSV converts hsv to RGB. The input is rounded first, and each channel
// is truncated (not rounded) to a byte after saturating to [0,255], so the
// conversion is lossy.
func FromHSV(hsv HSV) Color {
	hsv = hsv.Round()
	h, s, v := hsv.H, hsv.S, hsv.V

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{R: toByte(r + m), G: toByte(g + m), B: toByte(b + m)}
}

// WithHue returns c with its hue replaced.
func (c Color) WithHue(h float64) Color {
	hsv := c.HSV()
	hsv.H = h
	return FromHSV(hsv)
}

// WithSaturation returns c with its saturation replaced.
func (c Color) WithSaturation(s float64) Color {
	hsv := c.HSV()
	hsv.S = s
	return FromHSV(hsv)
}

// WithValue returns c with its value replaced.
func (c Color) WithValue(v float64) Color {
	hsv := c.HSV()
	hsv.V = v
	return FromHSV(hsv)
}

// ShiftHue rotates the hue by delta degrees, wrapping into [0,360).
// Negative deltas rotate backwards.
func (c Color) ShiftHue(delta float64) Color {
	hsv := c.HSV()
	hsv.H = WrapHue(hsv.H + delta)
	return FromHSV(hsv)
}

// ShiftSaturation adds delta to the saturation, clamped to [0,1].
func (c Color) ShiftSaturation(delta float64) Color {
	hsv := c.HSV()
	hsv.S = clamp01(hsv.S + delta)
	return FromHSV(hsv)
}

// ShiftValue adds delta to the value, clamped to [0,1].
func (c Color) ShiftValue(delta float64) Color {
	hsv := c.HSV()
	hsv.V = clamp01(hsv.V + delta)
	return FromHSV(hsv)
}

// WrapHue maps any angle into [0,360).
func WrapHue(h float64) float64 {
	return floorMod(h, 360)
}

const epsilon = 2.220446049250313e-16 // float64 machine epsilon

func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		return 0
	}
	return r
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// toByte scales a [0,1] component to a byte, saturating out-of-range input.
func toByte(v float64) uint8 {
	v *= 255
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
