package config

import (
	"fmt"
	"strings"

	"dferna40/termfolio/internal/content"
	"dferna40/termfolio/internal/theme"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "variant").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Validate rejects values Set must not store. Nil accepts anything.
	Validate func(value string) error

	// Values lists the accepted values, used for completion. Nil means free
	// text.
	Values func() []string
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "variant",
		Description: "Visual variant: plain or glass",
		Get:         func(cfg *Config) string { return cfg.Variant },
		Set:         func(cfg *Config, v string) { cfg.Variant = v },
		Validate: func(v string) error {
			if _, ok := theme.ParseVariant(v); !ok {
				return fmt.Errorf("invalid variant %q (valid: %s)", v, joinVariants())
			}
			return nil
		},
		Values: variantNames,
	},
	{
		Name:        "start-section",
		Description: "Section shown when the portfolio opens",
		Get:         func(cfg *Config) string { return cfg.StartSection },
		Set:         func(cfg *Config, v string) { cfg.StartSection = v },
		Validate: func(v string) error {
			if content.SectionIndex(v) < 0 {
				return fmt.Errorf("invalid section %q (valid: %s)", v, strings.Join(content.SectionIDs(), ", "))
			}
			return nil
		},
		Values: content.SectionIDs,
	},
}

func variantNames() []string {
	names := make([]string, len(theme.Variants))
	for i, v := range theme.Variants {
		names[i] = v.String()
	}
	return names
}

func joinVariants() string {
	return strings.Join(variantNames(), ", ")
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
