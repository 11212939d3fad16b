package color

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/huepick/internal/color"

	"github.com/spf13/cobra"
)

type hsvReport struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

type colorReport struct {
	Hex              string    `json:"hex"`
	RGB              [3]uint8  `json:"rgb"`
	HSV              hsvReport `json:"hsv"`
	Luminance        float64   `json:"luminance"`
	Inverted         string    `json:"inverted"`
	ContrastInverted float64   `json:"contrast_inverted"`
}

func newColorReport(c color.Color) colorReport {
	hsv := c.HSV()
	return colorReport{
		Hex:              c.Hex(),
		RGB:              [3]uint8{c.R, c.G, c.B},
		HSV:              hsvReport{H: hsv.H, S: hsv.S, V: hsv.V},
		Luminance:        c.Luminance(),
		Inverted:         c.Flip().Hex(),
		ContrastInverted: color.ContrastWithInverted(c),
	}
}

type shadeReport struct {
	Fraction  float64  `json:"fraction"`
	Hex       string   `json:"hex"`
	RGB       [3]uint8 `json:"rgb"`
	Luminance float64  `json:"luminance"`
	Contrast  float64  `json:"contrast"`
}

func newShadeReports(c, bg color.Color) []shadeReport {
	ramp := c.ShadeRamp()
	out := make([]shadeReport, len(ramp))
	for i, s := range ramp {
		out[i] = shadeReport{
			Fraction:  color.ShadeFractions[i],
			Hex:       s.Hex(),
			RGB:       [3]uint8{s.R, s.G, s.B},
			Luminance: s.Luminance(),
			Contrast:  color.Contrast(s, bg),
		}
	}
	return out
}

// printJSON encodes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printColorDetail prints a vertical key-value table of a colour.
func printColorDetail(cmd *cobra.Command, c color.Color) {
	r := newColorReport(c)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  Hex:\t%s\n", r.Hex)
	fmt.Fprintf(w, "  RGB:\t%s\n", c.RGBString())
	fmt.Fprintf(w, "  HSV:\t%.0f %.2f %.2f\n", r.HSV.H, r.HSV.S, r.HSV.V)
	fmt.Fprintf(w, "  Luminance:\t%.4f\n", r.Luminance)
	fmt.Fprintf(w, "  Inverted:\t%s\n", r.Inverted)
	fmt.Fprintf(w, "  Contrast:\t%.2f\n", r.ContrastInverted)

	w.Flush()
}

// printShadeTable prints one row per shade.
func printShadeTable(cmd *cobra.Command, shades []shadeReport) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SHADE\tHEX\tRGB\tLUMINANCE\tCONTRAST")
	fmt.Fprintln(w, "-----\t---\t---\t---------\t--------")

	for _, s := range shades {
		fmt.Fprintf(w, "%+.1f\t%s\t(%d,%d,%d)\t%.4f\t%.2f\n",
			s.Fraction, s.Hex, s.RGB[0], s.RGB[1], s.RGB[2], s.Luminance, s.Contrast)
	}

	w.Flush()
}
