package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"dferna40/termfolio/internal/config"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_Variant(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "variant", "plain")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"plain"`) {
		t.Errorf("expected confirmation with variant, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Variant != "plain" {
		t.Errorf("expected Variant %q, got %q", "plain", cfg.Variant)
	}
}

func TestSet_Variant_Invalid(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "variant", "neon")

	if !strings.Contains(stderr, "invalid variant") {
		t.Errorf("expected 'invalid variant' error, got: %s", stderr)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Variant != "" {
		t.Errorf("invalid value was saved: %q", cfg.Variant)
	}
}

func TestSet_StartSection_CaseInsensitive(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "start-section", "Projects")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"projects"`) {
		t.Errorf("expected normalized section, got: %s", stdout)
	}
}

func TestSet_StartSection_Unknown(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "start-section", "blog")

	if !strings.Contains(stderr, "invalid section") {
		t.Errorf("expected 'invalid section' error, got: %s", stderr)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
