package ports

import "context"

// Manager is the external transaction manager the executor delegates to.
// Implementations must guarantee that Commit is atomic relative to the
// durable store and that Rollback leaves no partial effect.
//
// Reentrancy is NOT the manager's concern: the executor opens at most one
// physical transaction per call path and nested acquisitions join it.
type Manager interface {
	// Begin opens a new physical transaction.
	Begin(ctx context.Context) (Tx, error)
}

// Tx is one physical transaction. Exactly one of Commit or Rollback is
// called, exactly once, by whoever opened it.
//
// Adapters expose their store handles by concrete type assertion on Tx
// (e.g. *memory.Tx, *sqlite.Tx); handlers retrieve the live Tx from the
// context via cambium.TxFrom.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
