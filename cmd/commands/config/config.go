package config

import (
	"nathanbeddoewebdev/huepick/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage huepick configuration",
		Long: "View and modify persistent huepick settings.\n\n" +
			"Configuration is stored at ~/.config/huepick/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
