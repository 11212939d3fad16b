package color

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "color" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Inspect a single colour",
		Long: `Inspect a colour without opening the picker.

Colours may be given as "#RRGGBB", "RRGGBB", "r,g,b" or one of the aliases
"white" and "lightblue".`,
	}

	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(ShadesCommand())

	return cmd
}
