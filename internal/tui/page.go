package tui

import (
	"fmt"
	"strings"

	"dferna40/termfolio/internal/content"
	"dferna40/termfolio/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const (
	maxContentWidth = 110
	minCardWidth    = 30
	cardGap         = 3
)

// page is the rendered scrollable body plus the first line of every
// section, indexed like content.Sections.
type page struct {
	body    string
	anchors []int
}

// pageBuilder accumulates vertical blocks and tracks line offsets.
type pageBuilder struct {
	st     styles.Styles
	width  int
	blocks []string
	lines  int
}

func (b *pageBuilder) add(block string) {
	b.blocks = append(b.blocks, block)
	b.lines += lipgloss.Height(block)
}

func (b *pageBuilder) blank() {
	b.add(b.st.Frame.Width(b.width).Render(""))
}

// renderPage lays out every section for the given terminal width. focused
// is the project card drawn as active.
func renderPage(st styles.Styles, width int, focused int, year int) page {
	inner := min(width, maxContentWidth) - 4
	if inner < 20 {
		inner = max(width, 1)
	}

	b := &pageBuilder{st: st, width: inner}
	anchors := make([]int, len(content.Sections))

	for i, s := range content.Sections {
		if i > 0 {
			b.blank()
			b.add(st.Rule(inner))
			b.blank()
		}
		anchors[i] = b.lines
		switch s.ID {
		case content.SectionHome:
			renderHero(b)
		case content.SectionProjects:
			renderProjects(b, focused)
		case content.SectionAbout:
			renderAbout(b)
		case content.SectionContact:
			renderContact(b, year)
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, b.blocks...)
	body = lipgloss.PlaceHorizontal(width, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(st.Frame.GetBackground()))

	return page{body: body, anchors: anchors}
}

func renderHero(b *pageBuilder) {
	st := b.st
	center := func(s string) string { return st.CenterText(s, b.width) }

	b.blank()
	b.add(center(st.Gradient(content.Owner.Headline, st.Page.Title)))
	b.blank()
	b.add(center(st.Page.Subtitle.Width(min(b.width, 72)).Align(lipgloss.Center).Render(content.Owner.Summary)))
	b.blank()

	primary := st.ButtonContained.Render("Ver proyectos")
	secondary := st.ButtonOutlined.Render("Descargar CV")
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, primary, st.Page.Text.Render("  "), secondary)
	b.add(center(buttons))
	b.add(center(st.Page.Subtitle.Render(content.Owner.CV)))
	b.blank()

	skills := content.Skills
	if len(skills) > content.HeroSkillCount {
		skills = skills[:content.HeroSkillCount]
	}
	for _, row := range chipRows(st, st.Page, skills, b.width) {
		b.add(center(row))
	}
}

func renderProjects(b *pageBuilder, focused int) {
	st := b.st

	b.add(st.Page.Heading.Render("Proyectos"))
	b.add(st.Page.Subtitle.Width(b.width).Render(content.ProjectsIntro))
	b.blank()

	cols := 1
	if b.width >= 3*minCardWidth+2*cardGap {
		cols = 3
	}
	cardWidth := (b.width - (cols-1)*cardGap) / cols

	// Leave room for the drop shadow.
	bodyWidth := max(cardWidth-1, 8)

	cards := make([]string, len(content.Projects))
	height := 0
	for i, p := range content.Projects {
		cards[i] = projectCardBody(st, p, max(bodyWidth-6, 1)) // border + padding
		height = max(height, lipgloss.Height(cards[i]))
	}

	for i := range cards {
		style := st.Card
		if i == focused {
			style = st.CardActive
		}
		cards[i] = st.Shadow(style.Width(bodyWidth - 2).Height(height).Render(cards[i]))
	}

	gap := st.Page.Text.Render(strings.Repeat(" ", cardGap))
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		row := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				row = append(row, gap)
			}
			row = append(row, cards[i])
		}
		if start > 0 {
			b.blank()
		}
		b.add(lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
}

func projectCardBody(st styles.Styles, p content.Project, width int) string {
	t := st.OnCard
	lines := []string{
		t.CardTitle.Width(width).Render(p.Title),
		t.Subtitle.Width(width).Render(p.Subtitle),
		t.Text.Render(""),
	}
	for _, bullet := range p.Bullets {
		lines = append(lines, t.Text.Width(width).Render("• "+bullet))
	}
	lines = append(lines, t.Text.Render(""))
	lines = append(lines, chipRows(st, t, p.Tags, width)...)
	lines = append(lines, t.Text.Render(""))

	links := []string{
		styles.Hyperlink(p.Links.Repo, t.Link.Render("Repo")),
		styles.Hyperlink(p.Links.Demo, t.Link.Render("Demo")),
		styles.Hyperlink(p.Links.Swagger, t.Link.Render("Swagger")),
	}
	lines = append(lines, strings.Join(links, t.Text.Render("  ")))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// chipRows flows labels into rows no wider than width.
func chipRows(st styles.Styles, surface styles.TextSet, labels []string, width int) []string {
	sep := surface.Text.Render(" ")
	var rows []string
	var row []string
	rowWidth := 0

	for _, label := range labels {
		chip := st.Chip.Render(label)
		w := lipgloss.Width(chip)
		if len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, strings.Join(row, sep))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			rowWidth++
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, sep))
	}
	return rows
}

func renderAbout(b *pageBuilder) {
	st := b.st
	b.add(st.Page.Heading.Render("Sobre mí"))
	b.blank()
	for i, para := range content.About {
		if i > 0 {
			b.blank()
		}
		b.add(st.Page.Subtitle.Width(b.width).Render(para))
	}
}

func renderContact(b *pageBuilder, year int) {
	st := b.st
	b.add(st.Page.Heading.Render("Contacto"))
	b.blank()
	for _, c := range content.Contacts {
		icon := st.Page.Accent.Width(4).Render(c.Icon)
		b.add(icon + styles.Hyperlink(c.URL, st.Page.Link.Render(c.Label)))
	}
	b.blank()
	b.blank()
	b.add(st.Page.Subtitle.Render(fmt.Sprintf("© %d %s. Portfolio personal.", year, content.Owner.Name)))
	b.blank()
}
