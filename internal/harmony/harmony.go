package harmony

import (
	"fmt"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/palette"
)

// RoleCount is the number of colours a generator produces.
const RoleCount = len(palette.Roles)

const (
	darker  = 0.8
	lighter = 1.2
)

// Generate runs the generator selected by kind. An unrecognised kind
// panics; callers obtain kinds from ParseKind or the Kind constants.
func Generate(kind Kind, seed color.Color) palette.Palette {
	switch kind {
	case Monochromatic:
		return MonochromaticPalette(seed)
	case Complementary:
		return ComplementaryPalette(seed, RoleCount)
	case SplitComplementary:
		return SplitComplementaryPalette(seed)
	case Triadic:
		return TriadicPalette(seed)
	case Tetradic:
		return TetradicPalette(seed)
	case Analogous:
		return AnalogousPalette(seed)
	}
	panic(fmt.Sprintf("harmony: unhandled kind %q", string(kind)))
}

// MonochromaticPalette spreads five value levels of the seed's hue and
// saturation, darkest as background and brightest as highlight. The range
// runs from the seed value (or 0.1) up to the seed value (or 0.9),
// whichever side of 0.5 the seed falls on.
func MonochromaticPalette(seed color.Color) palette.Palette {
	hsv := seed.HSV()

	low := 0.1
	if hsv.V < 0.5 {
		low = hsv.V
	}
	high := 0.9
	if hsv.V > 0.5 {
		high = hsv.V
	}

	var out [RoleCount]color.Color
	for i := range out {
		v := low + (float64(i)/4)*(high-low)
		out[i] = color.FromHSV(color.HSV{H: hsv.H, S: hsv.S, V: v})
	}
	return palette.FromColors(out)
}

// ComplementaryPalette keeps the seed as background and fills the
// remaining roles with hue rotations of 180*k degrees, which alternate
// between the complement and the seed hue. count is the number of roles to
// fill and is clamped to [1, RoleCount]; unfilled roles keep the seed.
func ComplementaryPalette(seed color.Color, count int) palette.Palette {
	count = max(1, min(count, RoleCount))
	hsv := seed.HSV()

	var out [RoleCount]color.Color
	for i := range out {
		out[i] = seed
	}
	for k := 1; k < count; k++ {
		h := color.WrapHue(hsv.H + 180*float64(k))
		out[k] = color.FromHSV(color.HSV{H: h, S: hsv.S, V: hsv.V})
	}
	return palette.FromColors(out)
}

// SplitComplementaryPalette pairs the seed with hues at +150 and +300
// degrees, framed by a lighter background and darker highlight of the
// seed hue.
func SplitComplementaryPalette(seed color.Color) palette.Palette {
	return framed(seed, 150, 300)
}

// TriadicPalette pairs the seed with hues at +120 and +240 degrees, framed
// like SplitComplementaryPalette.
func TriadicPalette(seed color.Color) palette.Palette {
	return framed(seed, 120, 240)
}

// TetradicPalette rotates the seed by +90, +180 and +270 degrees into the
// accents and highlight. The background is a shade of the seed hue: darker
// for bright seeds (value above 0.5), lighter otherwise.
func TetradicPalette(seed color.Color) palette.Palette {
	hsv := seed.HSV()

	factor := lighter
	if hsv.V > 0.5 {
		factor = darker
	}

	return palette.Palette{
		Background: color.FromHSV(color.HSV{H: hsv.H, S: hsv.S, V: hsv.V * factor}),
		AccentA:    seed,
		AccentB:    rotate(hsv, 90),
		AccentC:    rotate(hsv, 180),
		Highlight:  rotate(hsv, 270),
	}
}

// AnalogousPalette walks five hues 30 degrees apart starting at the seed
// hue, at the seed's saturation and value.
func AnalogousPalette(seed color.Color) palette.Palette {
	hsv := seed.HSV()

	var out [RoleCount]color.Color
	for i := range out {
		out[i] = rotate(hsv, 30*float64(i))
	}
	return palette.FromColors(out)
}

// framed places the seed and two rotations between a lighter background
// and a darker highlight of the seed hue.
func framed(seed color.Color, first, second float64) palette.Palette {
	hsv := seed.HSV()
	return palette.Palette{
		Background: color.FromHSV(color.HSV{H: hsv.H, S: hsv.S, V: hsv.V * lighter}),
		AccentA:    seed,
		AccentB:    rotate(hsv, first),
		AccentC:    rotate(hsv, second),
		Highlight:  color.FromHSV(color.HSV{H: hsv.H, S: hsv.S, V: hsv.V * darker}),
	}
}

func rotate(hsv color.HSV, degrees float64) color.Color {
	return color.FromHSV(color.HSV{H: color.WrapHue(hsv.H + degrees), S: hsv.S, V: hsv.V})
}
