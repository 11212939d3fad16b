package palette

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/harmony"
	"nathanbeddoewebdev/huepick/internal/palette"
	"nathanbeddoewebdev/huepick/internal/tui/components"

	"github.com/spf13/cobra"
)

type roleReport struct {
	Role string `json:"role"`
	Hex  string `json:"hex"`
}

type paletteReport struct {
	Harmony string       `json:"harmony"`
	Seed    string       `json:"seed"`
	Colors  []roleReport `json:"colors"`
}

func newPaletteReport(kind harmony.Kind, seed color.Color, p palette.Palette) paletteReport {
	colors := make([]roleReport, len(palette.Roles))
	for i, r := range palette.Roles {
		colors[i] = roleReport{Role: r.String(), Hex: p.Get(r).Hex()}
	}
	return paletteReport{
		Harmony: kind.String(),
		Seed:    seed.Hex(),
		Colors:  colors,
	}
}

// printPaletteJSON encodes a palette report as indented JSON to stdout.
func printPaletteJSON(cmd *cobra.Command, report paletteReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// PrintPalette writes one row per role with its hex, rgb and contrast
// against the background.
func PrintPalette(w io.Writer, p palette.Palette) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ROLE\tHEX\tRGB\tCONTRAST")
	fmt.Fprintln(tw, "----\t---\t---\t--------")

	for _, r := range palette.Roles {
		c := p.Get(r)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\n", r, c.Hex(), c.RGBString(), color.Contrast(c, p.Background))
	}

	tw.Flush()
}

func paletteStrip(p palette.Palette) string {
	colors := p.Colors()
	labels := make([]string, len(palette.Roles))
	for i, r := range palette.Roles {
		labels[i] = r.Label()
	}
	return components.PaletteStrip(colors[:], labels, 12)
}
