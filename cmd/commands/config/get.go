package config

import (
	"fmt"
	"os"
	"strings"

	"dferna40/termfolio/internal/config"
	"dferna40/termfolio/internal/logging"
	"dferna40/termfolio/internal/services/modestore"
	"dferna40/termfolio/internal/theme"
	"dferna40/termfolio/internal/tui"
	"dferna40/termfolio/internal/tui/styles"
	"dferna40/termfolio/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetCommand returns the "config get" command.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a configuration value",
		Long: "Get a persistent configuration value.\n\n" +
			"If no key is provided and running in a terminal, opens an interactive\n" +
			"editor where you can browse and change all settings.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  termfolio config get                 # interactive editor\n" +
			"  termfolio config get --key variant   # print a single value",
		Args:         cobra.NoArgs,
		RunE:         runGet,
		SilenceUsage: true,
	}

	cmd.Flags().String("key", "", "Configuration key to fetch (prints a single value)")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	keyFlag, _ := cmd.Flags().GetString("key")
	keyFlag = strings.TrimSpace(keyFlag)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if keyFlag == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if err := tui.RunConfigView(currentStyles(cfg)); err != nil {
				return fmt.Errorf("config view failed: %w", err)
			}
			return nil
		}

		for _, spec := range config.Keys {
			value := spec.Get(cfg)
			if value == "" {
				value = "(not set)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", spec.Name, value)
		}
		return nil
	}

	spec := config.Lookup(util.NormalizeKey(keyFlag))
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", keyFlag, strings.Join(config.KeyNames(), ", "))
	}

	value := spec.Get(cfg)
	if value == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "not set")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

// currentStyles paints the editor in the persisted mode and configured
// variant.
func currentStyles(cfg *config.Config) styles.Styles {
	store := modestore.Open(logging.Component("cli"))
	defer store.Close()
	return styles.New(theme.NewResolver(cfg.ThemeVariant()).Resolve(store.Mode()))
}
