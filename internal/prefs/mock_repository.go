package prefs

import "time"

// MockRepository is an in-memory Repository for testing. GetErr and SetErr
// force failures; Writes counts successful and failed Set calls.
type MockRepository struct {
	values map[string]string

	GetErr error
	SetErr error
	Writes int

	// OnSet, when non-nil, runs at the start of every Set call.
	OnSet func(key, value string)
}

func NewMockRepository() *MockRepository {
	return &MockRepository{values: make(map[string]string)}
}

func (m *MockRepository) Get(key string) (*Preference, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	return &Preference{Key: key, Value: v, UpdatedAt: time.Now().UTC()}, nil
}

func (m *MockRepository) Set(key, value string) error {
	m.Writes++
	if m.OnSet != nil {
		m.OnSet(key, value)
	}
	if m.SetErr != nil {
		return m.SetErr
	}
	m.values[key] = value
	return nil
}

// Value returns the raw stored value and whether it exists.
func (m *MockRepository) Value(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MockRepository) Close() error {
	return nil
}
