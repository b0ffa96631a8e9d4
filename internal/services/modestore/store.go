// Package modestore owns the active theme mode and its persistence.
//
// The store is created once by the caller and passed to whoever needs it;
// there is no package-level instance. It is not safe for concurrent use:
// mutations are expected from a single event loop (Bubble Tea's Update or one
// CLI command).
package modestore

import (
	"dferna40/termfolio/internal/prefs"
	"dferna40/termfolio/internal/theme"

	"github.com/rs/zerolog"
)

// Key is the preference key the mode is stored under.
const Key = "mode"

// Store holds the current theme mode and writes every change through to a
// preference repository.
type Store struct {
	repo   prefs.Repository
	logger zerolog.Logger

	mode      theme.Mode
	nextSubID int
	subs      map[int]func(theme.Mode)
}

// New creates a store backed by repo. A nil repo keeps the mode in memory
// only. The store starts in theme.DefaultMode until Initialize is called.
func New(repo prefs.Repository, logger zerolog.Logger) *Store {
	return &Store{
		repo:   repo,
		logger: logger,
		mode:   theme.DefaultMode,
		subs:   make(map[int]func(theme.Mode)),
	}
}

// Close releases repository resources.
func (s *Store) Close() error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Close()
}

// Initialize loads the persisted mode and makes it current. Missing,
// unreadable or invalid values yield theme.DefaultMode. Nothing is written.
func (s *Store) Initialize() theme.Mode {
	s.mode = s.load()
	return s.mode
}

func (s *Store) load() theme.Mode {
	if s.repo == nil {
		return theme.DefaultMode
	}

	p, err := s.repo.Get(Key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read stored mode, using default")
		return theme.DefaultMode
	}
	if p == nil {
		return theme.DefaultMode
	}

	// Only the exact literals are accepted from storage.
	m := theme.Mode(p.Value)
	if !m.Valid() {
		s.logger.Debug().Str("value", p.Value).Msg("ignoring invalid stored mode")
		return theme.DefaultMode
	}
	return m
}

// Mode returns the current mode.
func (s *Store) Mode() theme.Mode {
	return s.mode
}

// SetMode makes m current, writes it to storage once, then notifies
// subscribers. An invalid m is replaced by theme.DefaultMode. A failed write
// is logged and otherwise ignored; the in-memory mode still changes.
func (s *Store) SetMode(m theme.Mode) {
	if !m.Valid() {
		s.logger.Debug().Str("value", string(m)).Msg("invalid mode, using default")
		m = theme.DefaultMode
	}

	s.mode = m
	s.persist(m)

	for _, fn := range s.subs {
		fn(m)
	}
}

// Toggle flips between light and dark and returns the new mode.
func (s *Store) Toggle() theme.Mode {
	s.SetMode(s.mode.Toggle())
	return s.mode
}

// Subscribe registers fn to be called after every SetMode. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(theme.Mode)) (cancel func()) {
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Store) persist(m theme.Mode) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Set(Key, m.String()); err != nil {
		s.logger.Warn().Err(err).Str("mode", m.String()).Msg("failed to persist mode")
		return
	}
	s.logger.Debug().Str("mode", m.String()).Msg("mode persisted")
}
