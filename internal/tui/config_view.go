package tui

import (
	"fmt"
	"strings"

	"dferna40/termfolio/internal/config"
	"dferna40/termfolio/internal/tui/components"
	"dferna40/termfolio/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type configSavedMsg struct {
	key   string
	value string
}

type configSaveErrorMsg struct {
	err error
}

type configKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Save   key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultConfigKeyMap() configKeyMap {
	return configKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "navigate")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/k", "navigate")),
		Edit:   key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("e", "edit")),
		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type configViewModel struct {
	styles styles.Styles
	keys   configKeyMap

	cfg   *config.Config
	specs []config.KeySpec
	save  func(*config.Config) error

	cursor  int
	editing bool
	editor  textinput.Model

	width  int
	height int

	status  string
	isError bool
}

// RunConfigView starts the interactive settings editor, painted with st.
func RunConfigView(st styles.Styles) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	m := newConfigViewModel(st, cfg, (*config.Config).Save)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newConfigViewModel(st styles.Styles, cfg *config.Config, save func(*config.Config) error) configViewModel {
	return configViewModel{
		styles: st,
		keys:   defaultConfigKeyMap(),
		cfg:    cfg,
		specs:  config.Keys,
		save:   save,
	}
}

func (m configViewModel) Init() tea.Cmd {
	return nil
}

func (m configViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)

	case configSavedMsg:
		m.editing = false
		m.status = fmt.Sprintf("%s set to %q", msg.key, msg.value)
		m.isError = false
		return m, nil

	case configSaveErrorMsg:
		m.status = "Error: " + msg.err.Error()
		m.isError = true
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m configViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.specs)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Edit):
		if len(m.specs) == 0 {
			return m, nil
		}
		spec := m.specs[m.cursor]
		ti := textinput.New()
		ti.SetValue(spec.Get(m.cfg))
		ti.Placeholder = "enter value"
		ti.Width = 32
		ti.Cursor.Style = m.styles.OnCard.Accent
		ti.TextStyle = m.styles.OnCard.Text
		ti.PlaceholderStyle = m.styles.OnCard.Subtitle
		ti.CompletionStyle = m.styles.OnCard.Subtitle
		if spec.Values != nil {
			ti.ShowSuggestions = true
			ti.SetSuggestions(spec.Values())
		}
		ti.Focus()
		m.editor = ti
		m.editing = true
		m.status = ""
		return m, textinput.Blink
	}
	return m, nil
}

func (m configViewModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		return m, nil
	case key.Matches(msg, m.keys.Save):
		spec := m.specs[m.cursor]
		value := strings.ToLower(strings.TrimSpace(m.editor.Value()))
		if spec.Validate != nil {
			if err := spec.Validate(value); err != nil {
				m.status = "Error: " + err.Error()
				m.isError = true
				return m, nil
			}
		}
		spec.Set(m.cfg, value)
		return m, m.saveConfig(spec.Name, value)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m configViewModel) saveConfig(name, value string) tea.Cmd {
	cfg, save := m.cfg, m.save
	return func() tea.Msg {
		if err := save(cfg); err != nil {
			return configSaveErrorMsg{err: err}
		}
		return configSavedMsg{key: name, value: value}
	}
}

func (m configViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	st := m.styles

	header := st.AppBar.Width(m.width).Render(
		st.OnBar.CardTitle.Render("termfolio") + st.OnBar.Subtitle.Render(" · config"),
	)

	bindings := []key.Binding{m.keys.Down, m.keys.Edit, m.keys.Quit}
	if m.editing {
		bindings = []key.Binding{m.keys.Save, m.keys.Cancel}
	}
	footer := components.Footer(st, m.width, bindings)
	status := components.StatusBar(st, m.width, m.status, m.isError)

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-lipgloss.Height(status), 1)
	body := lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center,
		m.renderContent(),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(st.Config.Palette.Background.Default)),
	)

	sections := []string{header, body}
	if status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, footer)
	return st.AppFrame(m.width, m.height).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m configViewModel) renderContent() string {
	st := m.styles
	title := st.Page.Title.Render("Configuración")

	if len(m.specs) == 0 {
		return lipgloss.JoinVertical(lipgloss.Center, title, "", st.MutedText.Render("No configuration keys defined."))
	}

	const labelWidth = 18
	card := st.OnCard
	pad := func(s string, w int) string {
		if n := w - lipgloss.Width(s); n > 0 {
			return s + card.Text.Render(strings.Repeat(" ", n))
		}
		return s
	}

	rows := make([]string, 0, len(m.specs)*2)
	for i, spec := range m.specs {
		selected := i == m.cursor

		prefix := card.Text.Render("  ")
		if selected {
			prefix = card.Accent.Render("> ")
		}

		value := spec.Get(m.cfg)
		if value == "" {
			value = "(not set)"
		}

		var row string
		switch {
		case selected && m.editing:
			row = prefix + pad(card.CardTitle.Render(spec.Name), labelWidth) + m.editor.View()
		case selected:
			row = prefix + pad(card.CardTitle.Render(spec.Name), labelWidth) + card.Accent.Bold(true).Render(value)
		default:
			row = prefix + pad(card.Subtitle.Render(spec.Name), labelWidth) + card.Subtitle.Render(value)
		}
		rows = append(rows, row)

		if selected && !m.editing {
			rows = append(rows, card.Text.Render("    ")+card.Subtitle.Italic(true).Render(spec.Description))
		}
	}

	box := st.Card.Width(56).Render(strings.Join(rows, "\n"))
	return lipgloss.JoinVertical(lipgloss.Center, title, st.Page.Text.Render(" "), st.Shadow(box))
}
