package config

import (
	"dferna40/termfolio/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage termfolio configuration",
		Long: "View and modify persistent termfolio settings.\n\n" +
			"Configuration is stored at ~/.config/termfolio/config.json.\n" +
			"The theme mode is managed with \"termfolio theme\".\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
