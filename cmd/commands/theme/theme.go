package theme

import (
	"dferna40/termfolio/internal/config"
	"dferna40/termfolio/internal/logging"
	"dferna40/termfolio/internal/services/modestore"
	"dferna40/termfolio/internal/theme"

	"github.com/spf13/cobra"
)

// NewCommand returns the "theme" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the light/dark theme",
		Long: "Read or change the persisted theme mode and inspect the resolved theme.\n\n" +
			"The mode is stored in ~/.config/termfolio/termfolio.db and applies to\n" +
			"the next portfolio session. Valid modes: light, dark (default dark).",
	}

	cmd.AddCommand(GetCommand())
	cmd.AddCommand(SetCommand())
	cmd.AddCommand(ToggleCommand())
	cmd.AddCommand(ShowCommand())

	return cmd
}

func openStore() *modestore.Store {
	return modestore.Open(logging.Component("cli"))
}

// configuredVariant returns the variant from the user config, falling back
// to the default when the config cannot be read.
func configuredVariant() theme.Variant {
	cfg, err := config.Load()
	if err != nil {
		log := logging.Component("cli")
		log.Warn().Err(err).Msg("failed to load config, using default variant")
		return theme.DefaultVariant
	}
	return cfg.ThemeVariant()
}
