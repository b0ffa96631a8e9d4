// Package components provides reusable Bubbletea UI building blocks for
// the termfolio TUI. These are render-only helpers (not tea.Model) used by
// the portfolio model to compose views. Every helper takes the active style
// sheet explicitly.
package components

import (
	"strings"

	"dferna40/termfolio/internal/content"
	"dferna40/termfolio/internal/theme"
	"dferna40/termfolio/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Header renders the sticky app bar: owner name, section navigation, the
// GitHub link and the theme toggle. Navigation and the link are dropped on
// narrow terminals.
//
//	┌──────────────────────────────────────────────────────────┐
//	│  David Fernández   Inicio  Proyectos …   [☾ t] oscuro     │
//	└──────────────────────────────────────────────────────────┘
func Header(st styles.Styles, width int, active int) string {
	if width < 10 {
		return ""
	}

	bar := st.OnBar
	left := bar.CardTitle.Render(content.Owner.Name)

	// Navigation collapses on narrow terminals, like the md breakpoint.
	nav := ""
	if width >= 80 {
		items := make([]string, len(content.Sections))
		for i, s := range content.Sections {
			label := s.Label
			if i == active {
				items[i] = st.NavItemActive.Render(label)
			} else {
				items[i] = st.NavItem.Render(label)
			}
		}
		nav = strings.Join(items, bar.Text.Render(" "))
	}

	toggle := ToggleHint(st)
	right := toggle
	if nav != "" {
		github := styles.Hyperlink(content.Owner.GitHub, st.OnBar.Link.Render("GitHub"))
		right = github + bar.Text.Render("  ") + toggle
	}

	innerWidth := width - 4 // account for padding
	leftLen := lipgloss.Width(left)
	navLen := lipgloss.Width(nav)
	rightLen := lipgloss.Width(right)

	if leftLen+navLen+rightLen+2 > innerWidth {
		nav, navLen = "", 0
		right = toggle
		rightLen = lipgloss.Width(right)
	}
	if leftLen+rightLen+1 > innerWidth {
		left = ansi.Truncate(left, max(innerWidth-rightLen-1, 1), "…")
		leftLen = lipgloss.Width(left)
	}

	free := max(innerWidth-leftLen-navLen-rightLen, 0)
	gapL := free / 2
	gapR := free - gapL
	if nav == "" {
		gapL, gapR = free, 0
	}

	spacer := func(n int) string { return bar.Text.Render(strings.Repeat(" ", n)) }
	row := left + spacer(gapL) + nav + spacer(gapR) + right

	return st.AppBar.Width(width).Render(row)
}

// ToggleHint renders the theme toggle button with its tooltip text. The icon
// shows the mode the toggle switches to.
func ToggleHint(st styles.Styles) string {
	icon, tip := "☾", "Activar modo oscuro"
	if st.Config.Mode == theme.Dark {
		icon, tip = "☀", "Activar modo claro"
	}
	return st.OnBar.Accent.Render(icon+" t") + st.OnBar.Text.Render(" ") + st.Tooltip.Render(tip)
}
