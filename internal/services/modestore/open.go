package modestore

import (
	"dferna40/termfolio/internal/prefs"

	"github.com/rs/zerolog"
)

// Open returns an initialized store backed by the default preference
// database. When the database cannot be opened the failure is logged and the
// store runs in memory, so the mode still works for this session.
func Open(logger zerolog.Logger) *Store {
	var repo prefs.Repository
	r, err := prefs.Open()
	if err != nil {
		logger.Warn().Err(err).Msg("preference store unavailable, mode will not persist")
	} else {
		repo = r
	}

	s := New(repo, logger)
	s.Initialize()
	return s
}
