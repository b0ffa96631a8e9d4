package theme

import (
	"sync"
	"time"
)

// Brand accent. Identical in both modes.
const accent Color = "#1976d2"

// surfaceSet is the per-mode set of solid colours. ink is the colour text and
// hairlines are mixed from.
type surfaceSet struct {
	bg      Color
	paper   Color
	ink     Color
	err     Color
	success Color
}

var (
	lightSurfaces = surfaceSet{bg: "#f7f7fb", paper: "#ffffff", ink: "#000000", err: "#d32f2f", success: "#2e7d32"}
	darkSurfaces  = surfaceSet{bg: "#0b0f17", paper: "#0f1624", ink: "#ffffff", err: "#f44336", success: "#66bb6a"}
)

// alphaSet is the per-mode set of opacities and depths.
type alphaSet struct {
	text      float64
	secondary float64
	border    float64
	divider   float64
	glow      float64
	glass     float64
	shadow    float64
	gradient  float64
	elevation int
}

var (
	lightAlphas = alphaSet{
		text:      0.87,
		secondary: 0.60,
		border:    0.08,
		divider:   0.12,
		glow:      0.12,
		glass:     0.25,
		shadow:    0.10,
		gradient:  0.35,
		elevation: 1,
	}
	darkAlphas = alphaSet{
		text:      1.00,
		secondary: 0.70,
		border:    0.10,
		divider:   0.12,
		glow:      0.35,
		glass:     0.45,
		shadow:    0.50,
		gradient:  0.45,
		elevation: 3,
	}
)

const (
	glassBlur       = 12
	glassTransition = 200 * time.Millisecond
	tooltipGrey     = Color("#616161")
)

// Resolve returns the configuration for mode using DefaultVariant. An invalid
// mode resolves as DefaultMode.
func Resolve(mode Mode) Config {
	return ResolveVariant(mode, DefaultVariant)
}

// ResolveVariant returns the configuration for mode and variant. It is pure:
// equal inputs always produce equal configs. Invalid inputs fall back to
// DefaultMode and DefaultVariant.
func ResolveVariant(mode Mode, variant Variant) Config {
	mode = mode.orDefault()
	if !variant.Valid() {
		variant = DefaultVariant
	}

	isDark := mode == Dark
	s, a := lightSurfaces, lightAlphas
	if isDark {
		s, a = darkSurfaces, darkAlphas
	}
	glass := variant == Glass

	border := Tint{Base: s.ink, Alpha: a.border}
	divider := Tint{Base: s.ink, Alpha: a.divider}
	glow := Tint{Base: accent, Alpha: a.glow}

	// Translucent surfaces show the page background through the paper.
	translucency, blur, transition := 0.0, 0, time.Duration(0)
	elevated := s.paper
	if glass {
		translucency, blur, transition = a.glass, glassBlur, glassTransition
		elevated = Tint{Base: s.paper, Alpha: 1 - a.glass}.Over(s.bg)
	}

	gradient := Gradient{From: accent, To: accent}
	if glass {
		gradient.To = Tint{Base: s.ink, Alpha: a.gradient}.Over(accent)
	}

	cfg := Config{
		Mode:    mode,
		Variant: variant,
		Palette: Palette{
			Primary: accent,
			Background: Background{
				Default: s.bg,
				Paper:   s.paper,
			},
			Text: Text{
				Primary:   Tint{Base: s.ink, Alpha: a.text}.Over(s.bg),
				Secondary: Tint{Base: s.ink, Alpha: a.secondary}.Over(s.bg),
			},
			Divider: divider,
			Glow:    glow,
			Shadow:  Tint{Base: "#000000", Alpha: a.shadow},
			Error:   s.err,
			Success: s.success,
		},
		Typography: Typography{
			FontFamily: [4]string{"Inter", "Roboto", "Arial", "sans-serif"},
			H3:         HeadingStyle{Weight: 800, LetterSpacing: -0.5},
			H4:         HeadingStyle{Weight: 800, LetterSpacing: -0.3},
			H6:         HeadingStyle{Weight: 700},
		},
		Shape:    Shape{BorderRadius: 12},
		Gradient: gradient,
	}

	cfg.Components[AppBar] = ComponentStyle{
		Border:       divider,
		Surface:      elevated,
		Translucency: translucency,
		Blur:         blur,
	}
	cfg.Components[Button] = ComponentStyle{
		BorderRadius:  10,
		Border:        Tint{Base: accent, Alpha: 0.5},
		Surface:       accent,
		Transition:    transition,
		TextTransform: "none",
	}
	cfg.Components[Card] = ComponentStyle{
		BorderRadius: 12,
		Border:       border,
		Surface:      elevated,
		Translucency: translucency,
		Blur:         blur,
		Transition:   transition,
		Elevation:    a.elevation,
	}
	if glass {
		// Glass cards pick up the accent glow on their outline.
		cfg.Components[Card].Border = glow
	}
	cfg.Components[Chip] = ComponentStyle{
		BorderRadius: 10,
		Border:       border,
		Surface:      glow.Over(s.bg),
	}
	cfg.Components[Divider] = ComponentStyle{
		Border:  divider,
		Surface: divider.Over(s.bg),
	}
	cfg.Components[Tooltip] = ComponentStyle{
		BorderRadius: 4,
		Border:       border,
		Surface:      Tint{Base: tooltipGrey, Alpha: 0.92}.Over(s.bg),
		Elevation:    a.elevation,
	}

	return cfg
}

// Resolver memoizes ResolveVariant for one variant. The zero value is not
// usable; construct with NewResolver.
type Resolver struct {
	variant Variant

	once  sync.Once
	byKey [2]Config
}

// NewResolver returns a Resolver for variant. An invalid variant falls back
// to DefaultVariant.
func NewResolver(variant Variant) *Resolver {
	if !variant.Valid() {
		variant = DefaultVariant
	}
	return &Resolver{variant: variant}
}

// Variant returns the variant this resolver renders.
func (r *Resolver) Variant() Variant {
	return r.variant
}

// Resolve returns the memoized configuration for mode.
func (r *Resolver) Resolve(mode Mode) Config {
	r.once.Do(func() {
		r.byKey[0] = ResolveVariant(Light, r.variant)
		r.byKey[1] = ResolveVariant(Dark, r.variant)
	})
	if mode.orDefault() == Light {
		return r.byKey[0]
	}
	return r.byKey[1]
}
