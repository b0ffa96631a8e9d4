package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	cfgcmd "dferna40/termfolio/cmd/commands/config"
	themecmd "dferna40/termfolio/cmd/commands/theme"
	"dferna40/termfolio/internal/config"
	"dferna40/termfolio/internal/content"
	"dferna40/termfolio/internal/logging"
	"dferna40/termfolio/internal/services/modestore"
	"dferna40/termfolio/internal/theme"
	"dferna40/termfolio/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// staticWidth is the render width used when stdout is not a terminal.
const staticWidth = 100

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "termfolio",
		Short: "David Fernández's portfolio, in your terminal",
		Long: `termfolio renders a personal portfolio in the terminal: an introduction,
selected projects, an about section and contact links, with a light/dark
theme that is remembered between sessions.

Quick start:
  termfolio                        # open the portfolio
  termfolio --section projects     # open at the projects section
  termfolio theme set light        # change the persisted theme
  termfolio config set variant plain`,
		Args:         cobra.NoArgs,
		RunE:         runPortfolio,
		SilenceUsage: true,
	}

	cmd.Flags().String("section", "", "Section to open: "+joinSections())

	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(themecmd.NewCommand())

	return cmd
}

func joinSections() string {
	return strings.Join(content.SectionIDs(), ", ")
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	log := logging.Component("cli")

	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = &config.Config{}
	}

	section := cfg.Section()
	if flag, _ := cmd.Flags().GetString("section"); flag != "" {
		if content.SectionIndex(flag) < 0 {
			return fmt.Errorf("unknown section %q (valid: %s)", flag, joinSections())
		}
		section = flag
	}

	store := modestore.Open(logging.Component("modestore"))
	defer store.Close()

	resolver := theme.NewResolver(cfg.ThemeVariant())
	log.Debug().
		Str("mode", store.Mode().String()).
		Str("variant", resolver.Variant().String()).
		Str("section", section).
		Msg("starting portfolio")

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		out := tui.RenderStatic(resolver.Resolve(store.Mode()), staticWidth, time.Now().Year())
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	return tui.RunPortfolio(store, resolver, tui.Options{StartSection: section})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	closer, err := logging.Setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	var root = rootCmd()
	err = root.Execute()
	closer.Close()
	if err != nil {
		os.Exit(1)
	}
}
