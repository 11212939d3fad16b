package palette

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "palette" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate colour palettes",
		Long: `Generate five-colour palettes (background, three accents and a
highlight) from a seed colour using colour harmonies.`,
	}

	cmd.AddCommand(GenerateCommand())
	cmd.AddCommand(HarmoniesCommand())

	return cmd
}
