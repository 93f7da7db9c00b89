package store

import (
	"errors"
	"sync"
)

// KeyPrefix namespaces custom option lists inside the key/value storage.
const KeyPrefix = "custom-options:"

// StorageKey returns the storage key holding the custom list of category.
func StorageKey(category string) string {
	return KeyPrefix + category
}

// KV is a synchronous string key/value store. Get reports absent keys and
// unreadable values alike as missing.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// ErrWriteRejected is returned by MemoryKV when writes are disabled.
var ErrWriteRejected = errors.New("store: write rejected")

// MemoryKV keeps values in process memory. It is used by tests and as the
// fallback when no persistent backend can be opened.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
	// FailWrites makes every Set return ErrWriteRejected.
	FailWrites bool
	writes     int
}

// NewMemoryKV returns an empty in-memory store seeded with values.
func NewMemoryKV(seed map[string]string) *MemoryKV {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &MemoryKV{values: values}
}

func (m *MemoryKV) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrWriteRejected
	}
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	m.writes++
	return nil
}

// Writes reports how many successful Set calls were made.
func (m *MemoryKV) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
