package color

import (
	"fmt"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/logging"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "color show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <color>",
		Short: "Show a colour in every notation",
		Long: `Print the hex, RGB and HSV forms of a colour with its luminance, its
inverse and the contrast between the two.

Examples:
  huepick color show "#00EEEC"
  huepick color show 10,20,30 -o json`,
		Args:         cobra.ExactArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	log := logging.FromContext(cmd.Context())

	c, err := color.Parse(args[0])
	if err != nil {
		return err
	}
	log.Debug("parsed colour", "input", args[0], "hex", c.Hex())

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json":
		return printJSON(cmd, newColorReport(c))
	case "table", "":
		printColorDetail(cmd, c)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (valid: table, json)", output)
	}
}
