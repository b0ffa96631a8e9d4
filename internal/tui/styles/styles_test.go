package styles

import (
	"strings"
	"testing"

	"dferna40/termfolio/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestNew_AccentIsConstantAcrossModes(t *testing.T) {
	light := New(theme.Resolve(theme.Light))
	dark := New(theme.Resolve(theme.Dark))

	if light.Page.Accent.GetForeground() != dark.Page.Accent.GetForeground() {
		t.Errorf("accent foreground differs: %v vs %v",
			light.Page.Accent.GetForeground(), dark.Page.Accent.GetForeground())
	}
	if got := light.Page.Accent.GetForeground(); got != lipgloss.Color("#1976d2") {
		t.Errorf("accent = %v, want #1976d2", got)
	}
}

func TestNew_SurfacesFollowMode(t *testing.T) {
	light := New(theme.Resolve(theme.Light))
	dark := New(theme.Resolve(theme.Dark))

	if light.Frame.GetBackground() == dark.Frame.GetBackground() {
		t.Error("expected frame background to differ between modes")
	}
	if light.Card.GetBorderTopForeground() == dark.Card.GetBorderTopForeground() {
		t.Error("expected card border colour to differ between modes")
	}
	if got, want := dark.Frame.GetBackground(), lipgloss.Color("#0b0f17"); got != want {
		t.Errorf("dark frame background = %v, want %v", got, want)
	}
}

func TestNew_TextCarriesSurface(t *testing.T) {
	cfg := theme.ResolveVariant(theme.Dark, theme.Glass)
	s := New(cfg)

	want := lipgloss.Color(cfg.Component(theme.Card).Surface.String())
	if got := s.OnCard.Text.GetBackground(); got != want {
		t.Errorf("card text background = %v, want %v", got, want)
	}
	if got := s.Card.GetBackground(); got != want {
		t.Errorf("card background = %v, want %v", got, want)
	}
}

func TestNew_HeadingWeights(t *testing.T) {
	s := New(theme.Resolve(theme.Light))
	if !s.Page.Title.GetBold() || !s.Page.Heading.GetBold() || !s.OnCard.CardTitle.GetBold() {
		t.Error("headings with weight >= 600 should render bold")
	}
	if s.Page.Text.GetBold() {
		t.Error("body text should not be bold")
	}
}

func TestShadow_AddsOneCell(t *testing.T) {
	s := New(theme.ResolveVariant(theme.Dark, theme.Plain))
	block := "abc\ndef"

	out := s.Shadow(block)

	if got := lipgloss.Width(out); got != 4 {
		t.Errorf("shadowed width = %d, want 4", got)
	}
	if got := lipgloss.Height(out); got != 3 {
		t.Errorf("shadowed height = %d, want 3", got)
	}
}

func TestShadow_NoElevation(t *testing.T) {
	cfg := theme.Resolve(theme.Light)
	cfg.Components[theme.Card].Elevation = 0
	s := New(cfg)

	if out := s.Shadow("abc"); out != "abc" {
		t.Errorf("Shadow() without elevation = %q, want unchanged", out)
	}
}

func TestGradient_PreservesText(t *testing.T) {
	for _, v := range theme.Variants {
		s := New(theme.ResolveVariant(theme.Light, v))
		out := s.Gradient("Backend Java", s.Page.Title)
		if got := lipgloss.Width(out); got != len("Backend Java") {
			t.Errorf("%s: gradient width = %d, want %d", v, got, len("Backend Java"))
		}
	}
}

func TestRule(t *testing.T) {
	s := New(theme.Resolve(theme.Dark))
	if got := lipgloss.Width(s.Rule(10)); got != 10 {
		t.Errorf("Rule(10) width = %d", got)
	}
	if s.Rule(0) != "" {
		t.Error("Rule(0) should be empty")
	}
}

func TestHyperlink(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantLink bool
	}{
		{name: "real url", url: "https://github.com/dferna40", wantLink: true},
		{name: "mailto", url: "mailto:dferna40@gmail.com", wantLink: true},
		{name: "placeholder", url: "#"},
		{name: "empty", url: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hyperlink(tt.url, "Repo")
			if !strings.Contains(got, "Repo") {
				t.Fatalf("Hyperlink dropped the label: %q", got)
			}
			if hasLink := strings.Contains(got, "\x1b]8;"); hasLink != tt.wantLink {
				t.Errorf("Hyperlink(%q) link sequence present = %v, want %v", tt.url, hasLink, tt.wantLink)
			}
			if tt.wantLink && !strings.Contains(got, tt.url) {
				t.Errorf("Hyperlink(%q) = %q, missing url", tt.url, got)
			}
			if w := lipgloss.Width(got); w != len("Repo") {
				t.Errorf("link width = %d, want %d", w, len("Repo"))
			}
		})
	}
}
