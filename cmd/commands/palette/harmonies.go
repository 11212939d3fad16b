package palette

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/huepick/internal/harmony"

	"github.com/spf13/cobra"
)

var harmonyDescriptions = map[harmony.Kind]string{
	harmony.Monochromatic:      "Five values of the seed hue, darkest as background",
	harmony.Complementary:      "The seed and the opposite hue, alternating",
	harmony.SplitComplementary: "The seed with hues at +150 and +300 degrees",
	harmony.Triadic:            "The seed with hues at +120 and +240 degrees",
	harmony.Tetradic:           "The seed with hues at +90, +180 and +270 degrees",
	harmony.Analogous:          "Five hues 30 degrees apart, starting at the seed",
}

// HarmoniesCommand returns the "palette harmonies" command.
func HarmoniesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harmonies",
		Short: "List the available harmonies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tLABEL\tDESCRIPTION")
			fmt.Fprintln(w, "----\t-----\t-----------")
			for _, k := range harmony.Kinds() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", k, k.Label(), harmonyDescriptions[k])
			}
			w.Flush()
		},
	}

	return cmd
}

func harmonyList() string {
	return strings.Join(harmony.KindNames(), ", ")
}
