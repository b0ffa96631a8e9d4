package theme

import (
	"encoding/json"
	"fmt"
	"strings"

	"dferna40/termfolio/internal/theme"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "theme show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved theme as JSON",
		Long: "Print the fully resolved theme configuration as JSON.\n\n" +
			"By default the persisted mode and the configured variant are used.\n\n" +
			"Examples:\n" +
			"  termfolio theme show\n" +
			"  termfolio theme show --mode light --variant plain",
		Args:         cobra.NoArgs,
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().String("mode", "", "Mode to resolve (light or dark)")
	cmd.Flags().String("variant", "", "Variant to resolve (plain or glass)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	variantFlag, _ := cmd.Flags().GetString("variant")

	var mode theme.Mode
	if strings.TrimSpace(modeFlag) != "" {
		m, ok := theme.ParseMode(modeFlag)
		if !ok {
			return fmt.Errorf("%w, got %q", theme.ErrInvalidMode, modeFlag)
		}
		mode = m
	} else {
		store := openStore()
		mode = store.Mode()
		store.Close()
	}

	variant := configuredVariant()
	if strings.TrimSpace(variantFlag) != "" {
		v, ok := theme.ParseVariant(variantFlag)
		if !ok {
			return fmt.Errorf("invalid variant %q (valid: plain, glass)", variantFlag)
		}
		variant = v
	}

	data, err := json.MarshalIndent(theme.ResolveVariant(mode, variant), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
