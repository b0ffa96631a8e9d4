package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

type keyMap struct {
	Quit        key.Binding
	Toggle      key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Jump        key.Binding
	NextProject key.Binding
	PrevProject key.Binding
	Top         key.Binding
	Bottom      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump"),
		),
		NextProject: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("←/→", "project"),
		),
		PrevProject: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "project"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
	}
}

// footerBindings lists the bindings shown in the help bar.
func (k keyMap) footerBindings() []key.Binding {
	return []key.Binding{
		k.Jump,
		k.NextSection,
		k.NextProject,
		scrollHelp,
		k.Toggle,
		k.Quit,
	}
}

var scrollHelp = key.NewBinding(
	key.WithKeys("j", "k"),
	key.WithHelp("j/k", "scroll"),
)

// portfolioViewportKeyMap returns a viewport KeyMap that avoids conflicts
// with the portfolio's own bindings (h/l move between projects).
func portfolioViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "u"),
			key.WithHelp("ctrl+u", "½ page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "d"),
			key.WithHelp("ctrl+d", "½ page down"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithDisabled(),
		),
		Right: key.NewBinding(
			key.WithDisabled(),
		),
	}
}
