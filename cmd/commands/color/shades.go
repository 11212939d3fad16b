package color

import (
	"fmt"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/logging"
	"nathanbeddoewebdev/huepick/internal/palette"
	"nathanbeddoewebdev/huepick/internal/tui/components"

	"github.com/spf13/cobra"
)

// ShadesCommand returns the "color shades" command.
func ShadesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shades <color>",
		Short: "List the shade ramp of a colour",
		Long: `List the 19 shades of a colour from darkest to brightest, with the
contrast of each shade against a background.

Examples:
  huepick color shades "#90485D"
  huepick color shades 144,72,93 --background white --chart`,
		Args:         cobra.ExactArgs(1),
		RunE:         runShades,
		SilenceUsage: true,
	}

	cmd.Flags().String("background", palette.Default().Background.Hex(), "Background the contrast column is measured against")
	cmd.Flags().Bool("chart", false, "Append a luminance curve of the ramp")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runShades(cmd *cobra.Command, args []string) error {
	log := logging.FromContext(cmd.Context())

	c, err := color.Parse(args[0])
	if err != nil {
		return err
	}

	bgFlag, _ := cmd.Flags().GetString("background")
	bg, err := color.Parse(bgFlag)
	if err != nil {
		return fmt.Errorf("invalid --background: %w", err)
	}
	log.Debug("shading colour", "hex", c.Hex(), "background", bg.Hex())

	shades := newShadeReports(c, bg)

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json":
		return printJSON(cmd, shades)
	case "table", "":
		printShadeTable(cmd, shades)
	default:
		return fmt.Errorf("unsupported output format %q (valid: table, json)", output)
	}

	if chart, _ := cmd.Flags().GetBool("chart"); chart {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), components.LuminanceChart("Luminance", components.Luminances(c), 60))
	}
	return nil
}
