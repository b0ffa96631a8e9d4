// Package logging configures the process-wide zerolog logger.
//
// The terminal belongs to the TUI, so logs go to a file and only when
// TERMFOLIO_DEBUG is set. Otherwise every component logger is a no-op.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const (
	appDir  = "termfolio"
	logFile = "termfolio.log"

	// EnvDebug enables file logging. Its value may name a level
	// ("debug", "info", ...); any other non-empty value means debug.
	EnvDebug = "TERMFOLIO_DEBUG"
)

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// Init routes all component loggers to w at the given level.
func Init(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Reset restores the no-op logger. Intended for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.Nop()
}

// Component returns a logger tagged with the component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}

// Setup enables file logging when EnvDebug is set. The returned closer must
// be called on exit; it is a no-op when logging stays disabled.
func Setup() (io.Closer, error) {
	raw := strings.TrimSpace(os.Getenv(EnvDebug))
	if raw == "" {
		return nopCloser{}, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.DebugLevel
	}

	path, err := Path()
	if err != nil {
		return nopCloser{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nopCloser{}, fmt.Errorf("logging: failed to create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nopCloser{}, fmt.Errorf("logging: failed to open %s: %w", path, err)
	}

	Init(f, level)
	return f, nil
}

// Path returns the log file location.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("logging: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, logFile), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
