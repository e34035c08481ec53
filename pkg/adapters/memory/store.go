package memory

import (
	"sort"
	"sync"
)

// Store is a concurrent-safe in-memory key-value store. It is the durable
// side of the memory transaction manager: only committed transactions
// touch it.
type Store struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]any),
	}
}

// Get returns the committed value for key.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Len returns the number of committed keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Keys returns all committed keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// apply writes a transaction's buffered effects in one critical section.
func (s *Store) apply(writes map[string]any, deletes map[string]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range writes {
		s.data[k] = v
	}
	for k := range deletes {
		delete(s.data, k)
	}
}
