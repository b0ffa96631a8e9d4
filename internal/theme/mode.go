// Package theme resolves the portfolio's visual configuration from the
// active light/dark mode.
//
// Every mode-dependent value is derived from a single isDark flag and a
// small set of shared constants, so switching mode recolours the whole page
// in one resolution.
package theme

import (
	"errors"
	"strings"
)

// ErrInvalidMode is returned when a string is neither "light" nor "dark".
var ErrInvalidMode = errors.New("theme: mode must be \"light\" or \"dark\"")

// Mode is the user's light/dark preference.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// DefaultMode is used whenever no valid mode is available.
const DefaultMode = Dark

// Modes lists every valid mode in display order.
var Modes = []Mode{Light, Dark}

// ParseMode converts s to a Mode. Surrounding whitespace and case are
// ignored. On failure it returns DefaultMode and false.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Light, Dark:
		return m, true
	default:
		return DefaultMode, false
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == Light || m == Dark
}

// IsDark reports whether m renders on dark surfaces. Invalid modes fall back
// to DefaultMode.
func (m Mode) IsDark() bool {
	return m.orDefault() == Dark
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m.orDefault() == Light {
		return Dark
	}
	return Light
}

func (m Mode) String() string {
	return string(m)
}

func (m Mode) orDefault() Mode {
	if m.Valid() {
		return m
	}
	return DefaultMode
}

// Variant selects between the plain and the glass/gradient rendering of the
// same palette.
type Variant string

const (
	Plain Variant = "plain"
	Glass Variant = "glass"
)

// DefaultVariant is used when no variant is configured.
const DefaultVariant = Glass

// Variants lists every valid variant.
var Variants = []Variant{Plain, Glass}

// ParseVariant converts s to a Variant, returning DefaultVariant and false
// when s is not recognised.
func ParseVariant(s string) (Variant, bool) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case Plain, Glass:
		return v, true
	default:
		return DefaultVariant, false
	}
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	return v == Plain || v == Glass
}

func (v Variant) String() string {
	return string(v)
}
