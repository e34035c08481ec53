// Package memory provides an in-memory transaction manager and store.
//
// Transactions buffer their writes and apply them to the store atomically
// on commit, so rollback is a pure discard. The package backs the core's
// tests and suits embedding scenarios that need transactional semantics
// without an external store.
package memory

import (
	"context"
	"errors"

	"github.com/aretw0/cambium/pkg/ports"
)

// ErrTxDone is returned when using a transaction already committed or
// rolled back.
var ErrTxDone = errors.New("memory: transaction has already been resolved")

// Manager implements ports.Manager over a Store.
type Manager struct {
	store *Store
}

// NewManager creates a manager whose transactions commit into store.
func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// Begin opens a buffered transaction.
func (m *Manager) Begin(ctx context.Context) (ports.Tx, error) {
	return &Tx{
		store:   m.store,
		writes:  make(map[string]any),
		deletes: make(map[string]bool),
	}, nil
}

// Tx buffers writes against the store until Commit. Reads see the buffer
// first (read-your-writes), then the committed data underneath.
type Tx struct {
	store   *Store
	writes  map[string]any
	deletes map[string]bool
	done    bool
}

// Get returns the value visible inside this transaction.
func (t *Tx) Get(key string) (any, bool) {
	if t.deletes[key] {
		return nil, false
	}
	if v, ok := t.writes[key]; ok {
		return v, true
	}
	return t.store.Get(key)
}

// Put buffers a write.
func (t *Tx) Put(key string, value any) {
	delete(t.deletes, key)
	t.writes[key] = value
}

// Delete buffers a removal.
func (t *Tx) Delete(key string) {
	delete(t.writes, key)
	t.deletes[key] = true
}

// Commit applies all buffered effects to the store in one atomic step.
func (t *Tx) Commit(ctx context.Context) error {
	if t.done {
		return ErrTxDone
	}
	t.done = true
	t.store.apply(t.writes, t.deletes)
	return nil
}

// Rollback discards all buffered effects.
func (t *Tx) Rollback(ctx context.Context) error {
	if t.done {
		return ErrTxDone
	}
	t.done = true
	t.writes = nil
	t.deletes = nil
	return nil
}
