package components

import (
	"strings"

	"dferna40/termfolio/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Footer renders the key binding help bar at the bottom of the screen.
// Disabled bindings are skipped.
func Footer(st styles.Styles, width int, bindings []key.Binding) string {
	if width < 10 || len(bindings) == 0 {
		return ""
	}

	sep := st.KeySepStyle.Render("  ")
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, st.FormatKeyBinding(h.Key, h.Desc))
	}
	if len(parts) == 0 {
		return ""
	}

	content := ansi.Truncate(strings.Join(parts, sep), width-4, "…")

	return st.Frame.
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(st.KeySepStyle.GetForeground()).
		BorderBackground(st.Frame.GetBackground()).
		Render(content)
}
