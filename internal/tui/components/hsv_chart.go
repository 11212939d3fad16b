package components

import (
	"fmt"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/tui/styles"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// Channel labels in slider order.
var hsvLabels = [3]string{"H", "S", "V"}

// HSVBars renders hue, saturation and value as three bars on a 0..100
// scale. The selected channel is drawn in the accent colour.
func HSVBars(hsv color.HSV, selected int, width, height int) string {
	values := [3]float64{hsv.H / 360 * 100, hsv.S * 100, hsv.V * 100}

	data := make([]barchart.BarData, len(values))
	for i, v := range values {
		style := lipgloss.NewStyle().Foreground(styles.Gray)
		if i == selected {
			style = lipgloss.NewStyle().Foreground(styles.Blue)
		}
		data[i] = barchart.BarData{
			Label: hsvLabels[i],
			Values: []barchart.BarValue{
				{Name: hsvLabels[i], Value: v, Style: style},
			},
		}
	}

	bc := barchart.New(width, height, barchart.WithMaxValue(100))
	bc.PushAll(data)
	bc.Draw()

	caption := styles.MutedText.Render(fmt.Sprintf("H %3.0f°  S %.2f  V %.2f", hsv.H, hsv.S, hsv.V))
	return lipgloss.JoinVertical(lipgloss.Left, bc.View(), caption)
}

// Column steps, top to bottom.
var (
	hueSteps   = []float64{359, 330, 300, 270, 240, 210, 180, 150, 120, 90, 60, 30, 0}
	levelSteps = []float64{1, 0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1, 0}
)

// HSVColumns renders the colour swept along each channel with the other
// two held fixed: hue, saturation and value side by side. The header of
// the selected channel is marked.
func HSVColumns(c color.Color, selected int) string {
	cols := make([]string, 3)
	for ch := range cols {
		var cells []string
		switch ch {
		case 0:
			for _, h := range hueSteps {
				cells = append(cells, Swatch(c.WithHue(h), 4))
			}
		case 1:
			for _, s := range levelSteps {
				cells = append(cells, Swatch(c.WithSaturation(s), 4))
			}
		default:
			for _, v := range levelSteps {
				cells = append(cells, Swatch(c.WithValue(v), 4))
			}
		}

		head := styles.MutedText.Render("  " + hsvLabels[ch] + " ")
		if ch == selected {
			head = styles.Cursor.Render("> " + hsvLabels[ch] + " ")
		}
		cols[ch] = lipgloss.JoinVertical(lipgloss.Left, append([]string{head}, cells...)...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols[0], "  ", cols[1], "  ", cols[2])
}
