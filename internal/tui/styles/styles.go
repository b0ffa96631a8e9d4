// Package styles turns a resolved theme.Config into Lip Gloss styles for
// the termfolio TUI. It owns no colours of its own: everything is read from
// the config, so a new config restyles the whole screen at once.
package styles

import (
	"strings"

	"dferna40/termfolio/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TextSet is the text hierarchy painted on one surface colour. Each style
// carries that surface as its background so nested renders keep it.
type TextSet struct {
	Title     lipgloss.Style // h3
	Heading   lipgloss.Style // h4
	CardTitle lipgloss.Style // h6
	Text      lipgloss.Style
	Subtitle  lipgloss.Style
	Accent    lipgloss.Style
	Link      lipgloss.Style
}

// Styles is the full style sheet for one theme.Config.
type Styles struct {
	Config theme.Config

	// Text on the page, inside cards, and inside the app bar.
	Page   TextSet
	OnCard TextSet
	OnBar  TextSet

	Frame lipgloss.Style

	AppBar     lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	Chip       lipgloss.Style
	Divider    lipgloss.Style
	Tooltip    lipgloss.Style

	ButtonContained lipgloss.Style
	ButtonOutlined  lipgloss.Style
	ButtonText      lipgloss.Style

	NavItem       lipgloss.Style
	NavItemActive lipgloss.Style

	KeyStyle     lipgloss.Style
	KeyDescStyle lipgloss.Style
	KeySepStyle  lipgloss.Style

	ErrorText   lipgloss.Style
	SuccessText lipgloss.Style
	MutedText   lipgloss.Style

	shadow lipgloss.Color
}

func color(c theme.Color) lipgloss.Color {
	return lipgloss.Color(string(c))
}

// borderFor picks the terminal border closest to a CSS corner radius.
func borderFor(radius int) lipgloss.Border {
	if radius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

func newTextSet(cfg theme.Config, surface theme.Color) TextSet {
	p := cfg.Palette
	t := cfg.Typography
	base := lipgloss.NewStyle().Background(color(surface))

	return TextSet{
		Title:     base.Foreground(color(p.Text.Primary)).Bold(t.H3.Bold()),
		Heading:   base.Foreground(color(p.Text.Primary)).Bold(t.H4.Bold()),
		CardTitle: base.Foreground(color(p.Text.Primary)).Bold(t.H6.Bold()),
		Text:      base.Foreground(color(p.Text.Primary)),
		Subtitle:  base.Foreground(color(p.Text.Secondary)),
		Accent:    base.Foreground(color(p.Primary)),
		Link:      base.Foreground(color(p.Primary)).Underline(true),
	}
}

// New builds the style sheet for cfg.
func New(cfg theme.Config) Styles {
	p := cfg.Palette
	bg := p.Background.Default
	page := lipgloss.NewStyle().Background(color(bg))

	bar := cfg.Component(theme.AppBar)
	card := cfg.Component(theme.Card)
	chip := cfg.Component(theme.Chip)
	button := cfg.Component(theme.Button)
	divider := cfg.Component(theme.Divider)
	tooltip := cfg.Component(theme.Tooltip)

	s := Styles{
		Config: cfg,
		Page:   newTextSet(cfg, bg),
		OnCard: newTextSet(cfg, card.Surface),
		OnBar:  newTextSet(cfg, bar.Surface),

		Frame: page.Foreground(color(p.Text.Primary)),

		AppBar: lipgloss.NewStyle().
			Background(color(bar.Surface)).
			Padding(0, 2).
			BorderStyle(lipgloss.Border{Bottom: "─"}).
			BorderBottom(true).
			BorderForeground(color(bar.Border.Over(bar.Surface))).
			BorderBackground(color(bg)),

		Card: lipgloss.NewStyle().
			Background(color(card.Surface)).
			Border(borderFor(card.BorderRadius)).
			BorderForeground(color(card.Border.Over(bg))).
			BorderBackground(color(bg)).
			Padding(1, 2),

		CardActive: lipgloss.NewStyle().
			Background(color(card.Surface)).
			Border(borderFor(card.BorderRadius)).
			BorderForeground(color(p.Primary)).
			BorderBackground(color(bg)).
			Padding(1, 2),

		Chip: lipgloss.NewStyle().
			Background(color(chip.Surface)).
			Foreground(color(p.Text.Primary)).
			Padding(0, 1),

		Divider: page.Foreground(color(divider.Surface)),

		Tooltip: lipgloss.NewStyle().
			Background(color(tooltip.Surface)).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1),

		ButtonContained: lipgloss.NewStyle().
			Background(color(button.Surface)).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 2),

		ButtonOutlined: lipgloss.NewStyle().
			Border(borderFor(button.BorderRadius)).
			BorderForeground(color(button.Border.Over(bg))).
			BorderBackground(color(bg)).
			Background(color(bg)).
			Foreground(color(p.Primary)).
			Padding(0, 1),

		ButtonText: page.Foreground(color(p.Primary)).Bold(true),

		NavItem: lipgloss.NewStyle().
			Background(color(bar.Surface)).
			Foreground(color(p.Text.Secondary)).
			Padding(0, 1),

		NavItemActive: lipgloss.NewStyle().
			Background(color(p.Glow.Over(bar.Surface))).
			Foreground(color(p.Primary)).
			Bold(true).
			Padding(0, 1),

		KeyStyle:     page.Foreground(color(p.Primary)).Bold(true),
		KeyDescStyle: page.Foreground(color(p.Text.Secondary)),
		KeySepStyle:  page.Foreground(color(divider.Surface)),

		ErrorText:   page.Foreground(color(p.Error)).Bold(true),
		SuccessText: page.Foreground(color(p.Success)).Bold(true),
		MutedText:   page.Foreground(color(p.Text.Secondary)),

		shadow: color(p.Shadow.Over(bg)),
	}

	return s
}

// FormatKeyBinding formats a single key binding for the footer.
func (s Styles) FormatKeyBinding(key, desc string) string {
	return s.KeyStyle.Render(key) + s.KeyDescStyle.Render(" "+desc)
}

// Gradient renders text with its runes coloured along the config's
// gradient stops. A flat gradient renders in a single colour.
func (s Styles) Gradient(text string, base lipgloss.Style) string {
	g := s.Config.Gradient
	runes := []rune(text)
	if g.Flat() || len(runes) < 2 {
		return base.Foreground(color(g.From)).Render(text)
	}

	var b strings.Builder
	last := float64(len(runes) - 1)
	for i, r := range runes {
		c := theme.Blend(g.From, g.To, float64(i)/last)
		b.WriteString(base.Foreground(color(c)).Render(string(r)))
	}
	return b.String()
}

// Shadow draws a one-cell drop shadow to the right of and below block when
// cards are elevated.
func (s Styles) Shadow(block string) string {
	if s.Config.Component(theme.Card).Elevation == 0 {
		return block
	}

	w, h := lipgloss.Width(block), lipgloss.Height(block)
	gap := lipgloss.NewStyle().Background(color(s.Config.Palette.Background.Default))
	shade := lipgloss.NewStyle().Background(s.shadow)

	col := make([]string, h)
	col[0] = gap.Render(" ")
	for i := 1; i < h; i++ {
		col[i] = shade.Render(" ")
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, block, strings.Join(col, "\n"))
	bottom := gap.Render(" ") + shade.Render(strings.Repeat(" ", w))
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

// Rule renders a horizontal divider of the given width.
func (s Styles) Rule(width int) string {
	if width < 1 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}

// CenterText centers text horizontally within the given width on the page
// background.
func (s Styles) CenterText(text string, width int) string {
	return lipgloss.NewStyle().
		Background(color(s.Config.Palette.Background.Default)).
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}

// AppFrame returns the full-window frame style.
func (s Styles) AppFrame(width, height int) lipgloss.Style {
	return s.Frame.Width(width).Height(height)
}

// Hyperlink wraps an already rendered label in an OSC 8 link to url.
// Empty and "#" placeholder URLs leave the label as plain text.
func Hyperlink(url, label string) string {
	if url == "" || url == "#" {
		return label
	}
	return ansi.SetHyperlink(url) + label + ansi.ResetHyperlink()
}
