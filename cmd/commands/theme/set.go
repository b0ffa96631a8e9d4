package theme

import (
	"errors"
	"fmt"
	"os"

	"dferna40/termfolio/internal/theme"
	"dferna40/termfolio/internal/tui"
	"dferna40/termfolio/internal/tui/styles"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// SetCommand returns the "theme set" command.
func SetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set [light|dark]",
		Short: "Set the theme mode",
		Long: "Persist the theme mode used by the portfolio.\n\n" +
			"Without an argument in a terminal, an interactive picker is shown.\n\n" +
			"Examples:\n" +
			"  termfolio theme set light\n" +
			"  termfolio theme set           # interactive",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeModes,
		RunE:              runSet,
		SilenceUsage:      true,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	store := openStore()
	defer store.Close()

	var mode theme.Mode
	switch {
	case len(args) == 1:
		m, ok := theme.ParseMode(args[0])
		if !ok {
			return fmt.Errorf("%w, got %q", theme.ErrInvalidMode, args[0])
		}
		mode = m

	case term.IsTerminal(int(os.Stdout.Fd())):
		st := styles.New(theme.NewResolver(configuredVariant()).Resolve(store.Mode()))
		m, err := tui.PickMode(st, store.Mode())
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Theme unchanged.")
				return nil
			}
			return fmt.Errorf("theme picker failed: %w", err)
		}
		mode = m

	default:
		return errors.New("a mode is required when not running in a terminal (light or dark)")
	}

	store.SetMode(mode)
	fmt.Fprintf(cmd.OutOrStdout(), "theme set to %q\n", store.Mode())
	return nil
}

func completeModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := make([]string, len(theme.Modes))
	for i, m := range theme.Modes {
		names[i] = m.String()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
