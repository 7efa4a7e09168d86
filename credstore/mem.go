package credstore

import "sync"

// Mem is an in-memory [Store]. Credentials do not survive a restart; it
// exists for tests and deliberately ephemeral shells.
type Mem struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMem creates an empty in-memory store.
func NewMem() *Mem {
	return &Mem{values: map[string]string{}}
}

// Get returns the stored value for key.
func (m *Mem) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok && v != ""
}

// Set stores value under key.
func (m *Mem) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Clear removes key.
func (m *Mem) Clear(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
