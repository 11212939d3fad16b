package components

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/huepick/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// chartHeight is the fixed height for luminance curves.
const chartHeight = 5

// LuminanceChart renders a single luminance curve (values in [0,1]) with a
// label header and a min/max summary. Returns a muted placeholder if data is
// empty.
func LuminanceChart(label string, data []float64, width int) string {
	if len(data) == 0 {
		return styles.MutedText.Render(label + ": no data")
	}

	chart := asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(plotWidth(width)),
		asciigraph.Precision(2),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.SeriesColors(asciigraph.DodgerBlue),
		asciigraph.LabelColor(asciigraph.Default),
	)

	lo, hi := minMax(data)
	summary := styles.MutedText.Render(fmt.Sprintf("  min: %.2f  max: %.2f", lo, hi))

	header := styles.Label.Render(label)
	return lipgloss.JoinVertical(lipgloss.Left, header, chart, summary)
}

// LuminanceDualChart overlays two luminance curves, e.g. a colour's shade
// ramp and its inverse's, with per-series legends.
func LuminanceDualChart(label string, series1, series2 []float64, legend1, legend2 string, width int) string {
	if len(series1) == 0 && len(series2) == 0 {
		return styles.MutedText.Render(label + ": no data")
	}

	// PlotMany needs both series; pad a missing one with zeros.
	if len(series1) == 0 {
		series1 = make([]float64, len(series2))
	}
	if len(series2) == 0 {
		series2 = make([]float64, len(series1))
	}

	chart := asciigraph.PlotMany(
		[][]float64{series1, series2},
		asciigraph.Height(chartHeight),
		asciigraph.Width(plotWidth(width)),
		asciigraph.Precision(2),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.SeriesColors(asciigraph.DodgerBlue, asciigraph.LightCoral),
		asciigraph.SeriesLegends(legend1, legend2),
		asciigraph.LabelColor(asciigraph.Default),
	)

	lines := make([]string, 0, 2)
	for _, s := range []struct {
		legend string
		data   []float64
	}{{legend1, series1}, {legend2, series2}} {
		lo, hi := minMax(s.data)
		lines = append(lines, fmt.Sprintf("  %s  min: %.2f  max: %.2f", s.legend, lo, hi))
	}
	summary := styles.MutedText.Render(strings.Join(lines, "\n"))

	header := styles.Label.Render(label)
	return lipgloss.JoinVertical(lipgloss.Left, header, chart, summary)
}

// plotWidth reserves room for the Y-axis labels ("0.00 ┤" is 7 cells).
func plotWidth(width int) int {
	return max(width-7, 10)
}

// minMax returns the minimum and maximum values from a slice.
func minMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
