package theme

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a solid "#rrggbb" colour.
type Color string

func (c Color) String() string {
	return string(c)
}

func (c Color) parse() colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{}
	}
	return col
}

// Blend interpolates between a and b in Lab space. t=0 yields a and t=1
// yields b.
func Blend(a, b Color, t float64) Color {
	return Color(a.parse().BlendLab(b.parse(), clamp01(t)).Clamped().Hex())
}

// Tint is a colour with an alpha channel, the terminal stand-in for CSS
// rgba values.
type Tint struct {
	Base  Color   `json:"base"`
	Alpha float64 `json:"alpha"`
}

// Over composites the tint onto a solid background and returns the visible
// colour.
func (t Tint) Over(bg Color) Color {
	return Color(bg.parse().BlendRgb(t.Base.parse(), clamp01(t.Alpha)).Clamped().Hex())
}

func (t Tint) String() string {
	return fmt.Sprintf("%s@%.2f", t.Base, t.Alpha)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Config is the fully resolved styling for one mode. It holds no maps,
// slices or pointers, so copies never alias the memoized value.
type Config struct {
	Mode       Mode       `json:"mode"`
	Variant    Variant    `json:"variant"`
	Palette    Palette    `json:"palette"`
	Typography Typography `json:"typography"`
	Shape      Shape      `json:"shape"`
	Gradient   Gradient   `json:"gradient"`
	Components Components `json:"components"`
}

// IsDark reports whether the config was resolved for dark surfaces.
func (c Config) IsDark() bool {
	return c.Mode == Dark
}

// Component returns the style rules for a component category.
func (c Config) Component(cat Category) ComponentStyle {
	return c.Components.Get(cat)
}

type Palette struct {
	Primary    Color      `json:"primary"`
	Background Background `json:"background"`
	Text       Text       `json:"text"`
	Divider    Tint       `json:"divider"`
	Glow       Tint       `json:"glow"`
	Shadow     Tint       `json:"shadow"`
	Error      Color      `json:"error"`
	Success    Color      `json:"success"`
}

type Background struct {
	Default Color `json:"default"`
	Paper   Color `json:"paper"`
}

type Text struct {
	Primary   Color `json:"primary"`
	Secondary Color `json:"secondary"`
}

// HeadingStyle is a font-weight / letter-spacing preset.
type HeadingStyle struct {
	Weight        int     `json:"weight"`
	LetterSpacing float64 `json:"letter_spacing"`
}

// Bold reports whether the heading renders bold in a terminal.
func (h HeadingStyle) Bold() bool {
	return h.Weight >= 600
}

type Typography struct {
	FontFamily [4]string    `json:"font_family"`
	H3         HeadingStyle `json:"h3"`
	H4         HeadingStyle `json:"h4"`
	H6         HeadingStyle `json:"h6"`
}

// FontStack returns the font family list in CSS order.
func (t Typography) FontStack() string {
	return strings.Join(t.FontFamily[:], ", ")
}

type Shape struct {
	BorderRadius int `json:"border_radius"`
}

// Gradient holds the two stops of the hero gradient. Equal stops render a
// flat colour.
type Gradient struct {
	From Color `json:"from"`
	To   Color `json:"to"`
}

// Flat reports whether both stops are the same colour.
func (g Gradient) Flat() bool {
	return g.From == g.To
}

// Category identifies a UI component family that carries style overrides.
type Category int

const (
	AppBar Category = iota
	Button
	Card
	Chip
	Divider
	Tooltip

	numCategories
)

var categoryNames = [numCategories]string{
	AppBar:  "app_bar",
	Button:  "button",
	Card:    "card",
	Chip:    "chip",
	Divider: "divider",
	Tooltip: "tooltip",
}

// Categories lists every component category in declaration order.
func Categories() []Category {
	cats := make([]Category, numCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ComponentStyle holds the per-component overrides.
type ComponentStyle struct {
	BorderRadius  int           `json:"border_radius"`
	Border        Tint          `json:"border"`
	Surface       Color         `json:"surface"`
	Translucency  float64       `json:"translucency"`
	Blur          int           `json:"blur"`
	Transition    time.Duration `json:"transition"`
	Elevation     int           `json:"elevation"`
	TextTransform string        `json:"text_transform,omitempty"`
}

// Components maps each Category to its style. The zero value has no
// overrides.
type Components [numCategories]ComponentStyle

// Get returns the style for cat, or the zero style for an unknown category.
func (c Components) Get(cat Category) ComponentStyle {
	if cat < 0 || cat >= numCategories {
		return ComponentStyle{}
	}
	return c[cat]
}

// MarshalJSON encodes the table as an object keyed by category name.
func (c Components) MarshalJSON() ([]byte, error) {
	out := make(map[string]ComponentStyle, numCategories)
	for _, cat := range Categories() {
		out[cat.String()] = c[cat]
	}
	return json.Marshal(out)
}
