// Package tui implements the interactive termfolio views.
package tui

import (
	"fmt"
	"time"

	"dferna40/termfolio/internal/content"
	"dferna40/termfolio/internal/services/modestore"
	"dferna40/termfolio/internal/theme"
	"dferna40/termfolio/internal/tui/components"
	"dferna40/termfolio/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures a portfolio session.
type Options struct {
	// StartSection is the section id scrolled into view on launch.
	StartSection string

	// Year is printed in the copyright line. Zero means the current year.
	Year int
}

// modeChangedMsg signals that the store's mode changed. The model re-reads
// the store instead of trusting the payload, so coalesced signals are safe.
type modeChangedMsg struct{}

type portfolioModel struct {
	store    *modestore.Store
	resolver *theme.Resolver
	styles   styles.Styles
	keys     keyMap
	modes    <-chan theme.Mode

	viewport viewport.Model
	page     page

	section        int
	pendingSection int // applied on the first layout, -1 when none
	project        int
	year           int

	width  int
	height int

	status        string
	statusIsError bool

	quitting bool
}

// RunPortfolio starts the full-window portfolio TUI. The store must already
// be initialized; theme changes made through it restyle the view.
func RunPortfolio(store *modestore.Store, resolver *theme.Resolver, opts Options) error {
	modes := make(chan theme.Mode, 1)
	cancel := store.Subscribe(func(m theme.Mode) {
		select {
		case modes <- m:
		default:
		}
	})
	defer cancel()

	m := newPortfolioModel(store, resolver, opts, modes)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run portfolio: %w", err)
	}
	return nil
}

func newPortfolioModel(store *modestore.Store, resolver *theme.Resolver, opts Options, modes <-chan theme.Mode) portfolioModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = portfolioViewportKeyMap()
	vp.MouseWheelEnabled = true

	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
	}

	pending := content.SectionIndex(opts.StartSection)
	section := max(pending, 0)

	return portfolioModel{
		store:          store,
		resolver:       resolver,
		styles:         styles.New(resolver.Resolve(store.Mode())),
		keys:           defaultKeyMap(),
		modes:          modes,
		viewport:       vp,
		section:        section,
		pendingSection: pending,
		year:           year,
	}
}

func waitForMode(ch <-chan theme.Mode) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return modeChangedMsg{}
	}
}

func (m portfolioModel) Init() tea.Cmd {
	return waitForMode(m.modes)
}

// --- Update ---

func (m portfolioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.render()
		if m.pendingSection >= 0 {
			m.jumpTo(m.pendingSection)
			m.pendingSection = -1
		}
		return m, nil

	case modeChangedMsg:
		m.applyMode()
		return m, waitForMode(m.modes)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.syncSection()
		return m, cmd
	}

	return m, nil
}

func (m portfolioModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		mode := m.store.Toggle()
		m.applyMode()
		m.status = modeLabel(mode)
		m.statusIsError = false
		return m, nil

	case key.Matches(msg, m.keys.Jump):
		if r := msg.Runes; len(r) == 1 {
			m.jumpTo(int(r[0] - '1'))
		}
		return m, nil

	case key.Matches(msg, m.keys.NextSection):
		m.jumpTo((m.section + 1) % len(content.Sections))
		return m, nil

	case key.Matches(msg, m.keys.PrevSection):
		m.jumpTo((m.section + len(content.Sections) - 1) % len(content.Sections))
		return m, nil

	case key.Matches(msg, m.keys.NextProject):
		m.project = (m.project + 1) % len(content.Projects)
		m.render()
		return m, nil

	case key.Matches(msg, m.keys.PrevProject):
		m.project = (m.project + len(content.Projects) - 1) % len(content.Projects)
		m.render()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.syncSection()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.syncSection()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.syncSection()
	return m, cmd
}

func modeLabel(mode theme.Mode) string {
	if mode == theme.Light {
		return "Modo claro activado"
	}
	return "Modo oscuro activado"
}

// applyMode re-resolves the theme from the store's current mode and
// re-renders with it.
func (m *portfolioModel) applyMode() {
	mode := m.store.Mode()
	if m.styles.Config.Mode == mode {
		return
	}
	m.styles = styles.New(m.resolver.Resolve(mode))
	m.render()
}

// layout sizes the viewport to the space left by the chrome.
func (m *portfolioModel) layout() {
	chrome := lipgloss.Height(components.Header(m.styles, m.width, m.section)) +
		lipgloss.Height(m.footer()) +
		1 // status line
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chrome, 1)
}

// render rebuilds the page body, keeping the scroll position.
func (m *portfolioModel) render() {
	if m.width == 0 {
		return
	}
	offset := m.viewport.YOffset
	m.page = renderPage(m.styles, m.width, m.project, m.year)
	m.viewport.SetContent(m.page.body)
	m.viewport.SetYOffset(offset)
}

// jumpTo scrolls section i to the top of the viewport.
func (m *portfolioModel) jumpTo(i int) {
	if i < 0 || i >= len(content.Sections) {
		return
	}
	m.section = i
	if i < len(m.page.anchors) {
		m.viewport.SetYOffset(m.page.anchors[i])
	}
}

// syncSection highlights the section at the top of the viewport.
func (m *portfolioModel) syncSection() {
	if len(m.page.anchors) == 0 {
		return
	}
	if m.viewport.AtBottom() {
		m.section = len(m.page.anchors) - 1
		return
	}
	offset := m.viewport.YOffset
	for i, a := range m.page.anchors {
		if a <= offset {
			m.section = i
		}
	}
}

// --- View ---

func (m portfolioModel) footer() string {
	return components.Footer(m.styles, m.width, m.keys.footerBindings())
}

func (m portfolioModel) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.styles, m.width, m.section)
	body := m.styles.AppFrame(m.width, m.viewport.Height).Render(m.viewport.View())

	status := components.StatusBar(m.styles, m.width, m.status, m.statusIsError)
	if status == "" {
		status = m.styles.Frame.Width(m.width).Render("")
	}

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, status, m.footer())
	return m.styles.AppFrame(m.width, m.height).Render(view)
}

// RenderStatic renders the header and the whole page once, for output that
// is not a terminal.
func RenderStatic(cfg theme.Config, width int, year int) string {
	st := styles.New(cfg)
	p := renderPage(st, width, -1, year)
	return lipgloss.JoinVertical(lipgloss.Left, components.Header(st, width, 0), p.body)
}
