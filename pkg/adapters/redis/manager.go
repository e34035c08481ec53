// Package redis provides a transaction manager over a Redis MULTI/EXEC
// pipeline. Writes queue in the pipeline and hit the server atomically on
// commit; rollback discards the queue without network traffic.
package redis

import (
	"context"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/cambium/pkg/ports"
)

// Manager implements ports.Manager using Redis transactions.
type Manager struct {
	client *backend.Client
}

// New creates a Redis manager from connection parameters.
func New(address, password string, db int) *Manager {
	return &Manager{
		client: backend.NewClient(&backend.Options{
			Addr:     address,
			Password: password,
			DB:       db,
		}),
	}
}

// NewFromClient creates a Redis manager from an existing client.
func NewFromClient(client *backend.Client) *Manager {
	return &Manager{client: client}
}

// Client exposes the underlying client for reads outside a transaction.
func (m *Manager) Client() *backend.Client { return m.client }

// Close closes the underlying client.
func (m *Manager) Close() error { return m.client.Close() }

// Begin opens a MULTI/EXEC pipeline.
func (m *Manager) Begin(ctx context.Context) (ports.Tx, error) {
	return &Tx{pipe: m.client.TxPipeline()}, nil
}

// Tx queues commands until Commit. Handles assert this concrete type and
// issue commands through Pipeline; results materialize after Exec, so the
// adapter suits write-mostly handlers.
type Tx struct {
	pipe backend.Pipeliner
}

// Pipeline returns the command queue for this transaction.
func (t *Tx) Pipeline() backend.Pipeliner { return t.pipe }

// Commit sends the queued commands as one MULTI/EXEC block.
func (t *Tx) Commit(ctx context.Context) error {
	_, err := t.pipe.Exec(ctx)
	if err != nil && err != backend.Nil {
		return err
	}
	return nil
}

// Rollback discards the queued commands.
func (t *Tx) Rollback(ctx context.Context) error {
	t.pipe.Discard()
	return nil
}
