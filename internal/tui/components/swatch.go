package components

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// labelWidth pads role labels so the columns of RoleLine line up.
const labelWidth = 10

// Swatch renders width cells filled with c.
func Swatch(c color.Color, width int) string {
	if width <= 0 {
		return ""
	}
	return styles.Fill(c).Render(strings.Repeat(" ", width))
}

// ShadeStrip renders the shade ramp of c, one cell per step.
func ShadeStrip(c color.Color) string {
	var b strings.Builder
	for _, s := range c.ShadeRamp() {
		b.WriteString(Swatch(s, 1))
	}
	return b.String()
}

// Luminances returns the luminance of each step of c's shade ramp.
func Luminances(c color.Color) []float64 {
	ramp := c.ShadeRamp()
	out := make([]float64, len(ramp))
	for i, s := range ramp {
		out[i] = s.Luminance()
	}
	return out
}

// RoleLine renders one palette role on the palette background: the label
// in the role colour and on a swatch, hex, rgb, contrast against the
// background, HSV, the shade strip, then the same for the inverse. The
// line is cut to width.
func RoleLine(label string, c, bg color.Color, width int) string {
	text := styles.Ink(bg.Flip())
	inv := c.Flip()

	var b strings.Builder
	b.WriteString(colorCells(label, c, bg, text))
	b.WriteString(text.Render("  Inv: "))
	b.WriteString(colorCells(label, inv, bg, text))

	line := ansi.Truncate(b.String(), max(width, 1), "…")
	return lipgloss.NewStyle().Background(styles.Of(bg)).Width(width).Render(line)
}

func colorCells(label string, c, bg color.Color, text lipgloss.Style) string {
	padded := fmt.Sprintf(" %-*s ", labelWidth, label)
	hsv := c.HSV()

	parts := []string{
		styles.Ink(c).Render(padded),
		styles.On(c.Flip(), c).Render(padded),
		text.Render(fmt.Sprintf(" %s  %-13s", c.Hex(), c.RGBString())),
		text.Render(fmt.Sprintf(" Ctr: %.2f ", color.Contrast(c, bg))),
		text.Render(fmt.Sprintf(" HSV: %4.0f %.2f %.2f ", hsv.H, hsv.S, hsv.V)),
		text.Render(" Shd: "),
		ShadeStrip(c),
	}
	return strings.Join(parts, "")
}

// ShadeRow renders one row of the shades list: hex, a swatch, rgb, sample
// text in the shade and its contrast to the background.
func ShadeRow(c, bg color.Color) string {
	text := styles.Ink(bg.Flip())
	return strings.Join([]string{
		text.Render(fmt.Sprintf("  %s  ", c.Hex())),
		Swatch(c, 10),
		text.Render(fmt.Sprintf("  %-13s", c.RGBString())),
		styles.Ink(c).Render(" Lorem ipsum "),
		text.Render(fmt.Sprintf(" %.2f ", color.Contrast(c, bg))),
	}, "")
}

// PaletteStrip renders each colour as a labelled swatch block side by side.
func PaletteStrip(colors []color.Color, labels []string, cell int) string {
	cols := make([]string, len(colors))
	for i, c := range colors {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		name := ansi.Truncate(label, cell, "")
		cols[i] = lipgloss.JoinVertical(lipgloss.Left,
			Swatch(c, cell),
			Swatch(c, cell),
			styles.MutedText.Width(cell).Render(name),
			styles.Value.Width(cell).Render(c.Hex()),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
