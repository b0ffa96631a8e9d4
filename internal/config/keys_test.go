package config

import (
	"strings"
	"testing"
)

func TestLookup_Exists(t *testing.T) {
	spec := Lookup("variant")
	if spec == nil {
		t.Fatal("expected to find key 'variant', got nil")
	}
	if spec.Name != "variant" {
		t.Errorf("expected Name %q, got %q", "variant", spec.Name)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	spec := Lookup("  START-SECTION ")
	if spec == nil {
		t.Fatal("expected case-insensitive lookup to succeed")
	}
	if spec.Name != "start-section" {
		t.Errorf("expected Name %q, got %q", "start-section", spec.Name)
	}
}

func TestLookup_NotFound(t *testing.T) {
	if spec := Lookup("nonexistent-key"); spec != nil {
		t.Errorf("expected nil for unknown key, got %+v", spec)
	}
}

func TestKeys_AllHaveGetSetAndValidate(t *testing.T) {
	for _, k := range Keys {
		if k.Get == nil {
			t.Errorf("key %q has nil Get function", k.Name)
		}
		if k.Set == nil {
			t.Errorf("key %q has nil Set function", k.Name)
		}
		if k.Validate == nil {
			t.Errorf("key %q has nil Validate function", k.Name)
		}
		if k.Description == "" {
			t.Errorf("key %q has empty Description", k.Name)
		}
	}
}

func TestKeys_GetSetRoundtrip(t *testing.T) {
	for _, k := range Keys {
		cfg := &Config{}
		k.Set(cfg, "test-value")
		if got := k.Get(cfg); got != "test-value" {
			t.Errorf("key %q: Set then Get = %q, want %q", k.Name, got, "test-value")
		}
	}
}

func TestKeys_Validate(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{"variant", "plain", false},
		{"variant", "glass", false},
		{"variant", "neon", true},
		{"start-section", "projects", false},
		{"start-section", "blog", true},
	}

	for _, tt := range tests {
		err := Lookup(tt.key).Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s=%q: Validate err = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
		}
	}
}

func TestKeyNames(t *testing.T) {
	names := KeyNames()
	if len(names) != len(Keys) {
		t.Fatalf("expected %d names, got %d", len(Keys), len(names))
	}
	for i, name := range names {
		if name != Keys[i].Name {
			t.Errorf("index %d: expected %q, got %q", i, Keys[i].Name, name)
		}
	}
}

func TestKeysHelp_ContainsAllKeys(t *testing.T) {
	help := KeysHelp()
	if !strings.Contains(help, "Available keys:") {
		t.Error("expected 'Available keys:' header in help output")
	}
	for _, k := range Keys {
		if !strings.Contains(help, k.Name) {
			t.Errorf("expected key %q in help output", k.Name)
		}
		if !strings.Contains(help, k.Description) {
			t.Errorf("expected description %q in help output", k.Description)
		}
	}
}

func TestKeys_ValuesPassValidation(t *testing.T) {
	for _, spec := range Keys {
		if spec.Values == nil {
			continue
		}
		values := spec.Values()
		if len(values) == 0 {
			t.Errorf("key %q lists no values", spec.Name)
		}
		for _, v := range values {
			if err := spec.Validate(v); err != nil {
				t.Errorf("key %q rejects its own value %q: %v", spec.Name, v, err)
			}
		}
	}
}
