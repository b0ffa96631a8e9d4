package modestore

import (
	"errors"
	"path/filepath"
	"testing"

	"dferna40/termfolio/internal/prefs"
	"dferna40/termfolio/internal/theme"

	"github.com/rs/zerolog"
)

func newStore(t *testing.T, repo prefs.Repository) *Store {
	t.Helper()
	return New(repo, zerolog.Nop())
}

func TestInitialize_EmptyStorage(t *testing.T) {
	s := newStore(t, prefs.NewMockRepository())

	if got := s.Initialize(); got != theme.Dark {
		t.Errorf("Initialize() = %q, want dark", got)
	}
}

func TestInitialize_DoesNotWrite(t *testing.T) {
	repo := prefs.NewMockRepository()
	s := newStore(t, repo)

	s.Initialize()

	if repo.Writes != 0 {
		t.Errorf("Initialize wrote %d times, want 0", repo.Writes)
	}
}

func TestInitialize_StoredValues(t *testing.T) {
	tests := []struct {
		stored string
		want   theme.Mode
	}{
		{"light", theme.Light},
		{"dark", theme.Dark},
		{"purple", theme.Dark},
		{"", theme.Dark},
		{"LIGHT", theme.Dark},
	}

	for _, tt := range tests {
		t.Run(tt.stored, func(t *testing.T) {
			repo := prefs.NewMockRepository()
			repo.Set(Key, tt.stored)

			s := newStore(t, repo)
			if got := s.Initialize(); got != tt.want {
				t.Errorf("Initialize() with %q = %q, want %q", tt.stored, got, tt.want)
			}
		})
	}
}

func TestInitialize_ReadFailure(t *testing.T) {
	repo := prefs.NewMockRepository()
	repo.GetErr = errors.New("disk on fire")

	s := newStore(t, repo)
	if got := s.Initialize(); got != theme.DefaultMode {
		t.Errorf("Initialize() on read failure = %q, want %q", got, theme.DefaultMode)
	}
}

func TestInitialize_NilRepository(t *testing.T) {
	s := newStore(t, nil)
	if got := s.Initialize(); got != theme.DefaultMode {
		t.Errorf("Initialize() = %q, want %q", got, theme.DefaultMode)
	}
	s.Toggle()
	if s.Mode() != theme.Light {
		t.Errorf("in-memory toggle failed, mode = %q", s.Mode())
	}
}

func TestSetMode_WritesExactlyOnce(t *testing.T) {
	repo := prefs.NewMockRepository()
	s := newStore(t, repo)
	s.Initialize()

	s.SetMode(theme.Light)
	if repo.Writes != 1 {
		t.Fatalf("writes after one SetMode = %d, want 1", repo.Writes)
	}
	s.SetMode(theme.Light)
	if repo.Writes != 2 {
		t.Fatalf("writes after two SetMode = %d, want 2", repo.Writes)
	}
}

func TestSetMode_MemoryUpdatedBeforeWrite(t *testing.T) {
	repo := prefs.NewMockRepository()
	s := newStore(t, repo)
	s.Initialize()

	var modeDuringWrite theme.Mode
	repo.OnSet = func(key, value string) {
		modeDuringWrite = s.Mode()
	}

	s.SetMode(theme.Light)
	if modeDuringWrite != theme.Light {
		t.Errorf("mode during write = %q, want light", modeDuringWrite)
	}
}

func TestSetMode_SubscribersRunAfterWrite(t *testing.T) {
	repo := prefs.NewMockRepository()
	s := newStore(t, repo)
	s.Initialize()

	var seen []string
	s.Subscribe(func(m theme.Mode) {
		stored, _ := repo.Value(Key)
		seen = append(seen, string(m)+"/"+stored)
	})

	s.SetMode(theme.Light)
	s.SetMode(theme.Dark)

	want := []string{"light/light", "dark/dark"}
	if len(seen) != len(want) {
		t.Fatalf("subscriber calls = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestSubscribe_Cancel(t *testing.T) {
	s := newStore(t, prefs.NewMockRepository())

	calls := 0
	cancel := s.Subscribe(func(theme.Mode) { calls++ })
	s.Toggle()
	cancel()
	s.Toggle()

	if calls != 1 {
		t.Errorf("subscriber called %d times, want 1", calls)
	}
}

func TestSetMode_WriteFailureStillUpdates(t *testing.T) {
	repo := prefs.NewMockRepository()
	repo.SetErr = errors.New("read-only filesystem")
	s := newStore(t, repo)
	s.Initialize()

	notified := false
	s.Subscribe(func(theme.Mode) { notified = true })

	s.SetMode(theme.Light)

	if s.Mode() != theme.Light {
		t.Errorf("Mode() after failed write = %q, want light", s.Mode())
	}
	if !notified {
		t.Error("subscribers should still be notified after a failed write")
	}
	if _, ok := repo.Value(Key); ok {
		t.Error("expected nothing stored after failed write")
	}
}

func TestSetMode_InvalidFailsClosed(t *testing.T) {
	repo := prefs.NewMockRepository()
	s := newStore(t, repo)
	s.SetMode(theme.Light)

	s.SetMode(theme.Mode("purple"))

	if s.Mode() != theme.DefaultMode {
		t.Errorf("Mode() = %q, want %q", s.Mode(), theme.DefaultMode)
	}
	if v, _ := repo.Value(Key); v != string(theme.DefaultMode) {
		t.Errorf("stored %q, want %q", v, theme.DefaultMode)
	}
}

func TestToggle_Involution(t *testing.T) {
	for _, start := range theme.Modes {
		s := newStore(t, prefs.NewMockRepository())
		s.SetMode(start)

		s.Toggle()
		s.Toggle()

		if s.Mode() != start {
			t.Errorf("double toggle from %q ended at %q", start, s.Mode())
		}
	}
}

func TestToggle_Scenario(t *testing.T) {
	repo := prefs.NewMockRepository()
	s := newStore(t, repo)

	if got := s.Initialize(); got != theme.Dark {
		t.Fatalf("Initialize() = %q, want dark", got)
	}

	if got := s.Toggle(); got != theme.Light {
		t.Fatalf("first Toggle() = %q, want light", got)
	}
	if v, _ := repo.Value(Key); v != "light" {
		t.Fatalf("stored %q after first toggle, want light", v)
	}

	if got := s.Toggle(); got != theme.Dark {
		t.Fatalf("second Toggle() = %q, want dark", got)
	}
	if v, _ := repo.Value(Key); v != "dark" {
		t.Fatalf("stored %q after second toggle, want dark", v)
	}
}

func TestRoundTrip_AcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termfolio.db")

	for _, m := range theme.Modes {
		t.Run(string(m), func(t *testing.T) {
			repo, err := prefs.OpenAt(path)
			if err != nil {
				t.Fatalf("OpenAt failed: %v", err)
			}
			s := New(repo, zerolog.Nop())
			s.Initialize()
			s.SetMode(m)
			if err := s.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			repo2, err := prefs.OpenAt(path)
			if err != nil {
				t.Fatalf("reopen failed: %v", err)
			}
			restarted := New(repo2, zerolog.Nop())
			defer restarted.Close()

			if got := restarted.Initialize(); got != m {
				t.Errorf("Initialize() after restart = %q, want %q", got, m)
			}
		})
	}
}
