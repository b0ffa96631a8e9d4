package prefs

import "time"

// Preference is a single persisted key-value pair.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
