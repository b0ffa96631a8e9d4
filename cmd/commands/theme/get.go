package theme

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GetCommand returns the "theme get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "get",
		Short:        "Print the persisted theme mode",
		Args:         cobra.NoArgs,
		RunE:         runGet,
		SilenceUsage: true,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	store := openStore()
	defer store.Close()

	fmt.Fprintln(cmd.OutOrStdout(), store.Mode())
	return nil
}
