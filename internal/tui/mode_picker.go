package tui

import (
	"errors"
	"os"

	"dferna40/termfolio/internal/theme"
	"dferna40/termfolio/internal/tui/styles"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user cancels an interactive form.
var ErrAborted = errors.New("aborted by user")

// PickMode asks the user to choose a theme mode, preselecting current.
func PickMode(st styles.Styles, current theme.Mode) (theme.Mode, error) {
	selected := current
	field := huh.NewSelect[theme.Mode]().
		Title("Tema").
		Description("El modo se guarda y se usa en la próxima sesión").
		Options(buildModeOptions(current)...).
		Value(&selected)

	accessible := os.Getenv("ACCESSIBLE") != ""
	err := huh.NewForm(huh.NewGroup(field)).
		WithTheme(pickerTheme(st)).
		WithAccessible(accessible).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return current, ErrAborted
		}
		return current, err
	}
	return selected, nil
}

func buildModeOptions(current theme.Mode) []huh.Option[theme.Mode] {
	opts := make([]huh.Option[theme.Mode], 0, len(theme.Modes))
	for _, m := range theme.Modes {
		label := modeName(m) + " (" + m.String() + ")"
		if m == current {
			label += " · actual"
		}
		opts = append(opts, huh.NewOption(label, m).Selected(m == current))
	}
	return opts
}

func modeName(m theme.Mode) string {
	if m == theme.Light {
		return "Claro"
	}
	return "Oscuro"
}

// pickerTheme tints huh's base theme with the active palette.
func pickerTheme(st styles.Styles) *huh.Theme {
	p := st.Config.Palette
	primary := lipgloss.Color(string(p.Primary))
	secondary := lipgloss.Color(string(p.Text.Secondary))

	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(secondary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(primary)
	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	return t
}
