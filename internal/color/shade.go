package color

import "math"

// ShadeFractions are the steps of the shade ramp, darkest first. They are
// listed literally rather than accumulated so every step is the nearest
// float64 to its decimal value.
var ShadeFractions = []float64{
	-0.9, -0.8, -0.7, -0.6, -0.5, -0.4, -0.3, -0.2, -0.1,
	0.0,
	0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9,
}

// Shade darkens (fraction < 0) or brightens (fraction >= 0) every channel
// independently. Darkening removes |fraction| of the channel, brightening
// adds |fraction| of the headroom to 255; both truncate the delta, which is
// computed in float32 so steps like 0.7 land on whole numbers. A magnitude
// of 1 or more snaps straight to 0 or 255.
func (c Color) Shade(fraction float64) Color {
	adjust := brightenChannel
	if fraction < 0 {
		adjust = darkenChannel
	}
	amount := math.Abs(fraction)
	return Color{R: adjust(c.R, amount), G: adjust(c.G, amount), B: adjust(c.B, amount)}
}

// ShadeRamp returns c shaded at each of ShadeFractions.
func (c Color) ShadeRamp() []Color {
	ramp := make([]Color, len(ShadeFractions))
	for i, f := range ShadeFractions {
		ramp[i] = c.Shade(f)
	}
	return ramp
}

func brightenChannel(x uint8, amount float64) uint8 {
	if amount >= 1 {
		return 255
	}
	inc := int(float32(float32(255-x) * float32(amount)))
	return uint8(min(int(x)+inc, 255))
}

func darkenChannel(x uint8, amount float64) uint8 {
	if amount >= 1 {
		return 0
	}
	dec := int(float32(float32(x) * float32(amount)))
	return uint8(max(int(x)-dec, 0))
}
