package theme

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ToggleCommand returns the "theme toggle" command.
func ToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "toggle",
		Short:        "Switch between light and dark",
		Args:         cobra.NoArgs,
		RunE:         runToggle,
		SilenceUsage: true,
	}
}

func runToggle(cmd *cobra.Command, args []string) error {
	store := openStore()
	defer store.Close()

	fmt.Fprintln(cmd.OutOrStdout(), store.Toggle())
	return nil
}
