package cambium

import (
	"context"

	"github.com/aretw0/cambium/pkg/ports"
)

type scopeKeyType struct{}

var scopeKey scopeKeyType

// scope tracks the single physical transaction open on a call path.
// Nested acquisitions bump depth instead of opening a second transaction;
// only the depth-1 holder commits or rolls back physically.
type scope struct {
	tx    ports.Tx
	depth int
}

func scopeFrom(ctx context.Context) *scope {
	sc, _ := ctx.Value(scopeKey).(*scope)
	return sc
}

// ScopeDepth returns the current transaction nesting depth on the call
// path: 0 outside any scope, 1 at the outermost holder, and so on.
func ScopeDepth(ctx context.Context) int {
	if sc := scopeFrom(ctx); sc != nil {
		return sc.depth
	}
	return 0
}

// TxFrom returns the live physical transaction on the call path, if any.
// Handles assert the adapter's concrete type to reach the store:
//
//	tx, ok := cambium.TxFrom(ctx)
//	if ok {
//	    tx.(*memory.Tx).Put("orders/42", order)
//	}
func TxFrom(ctx context.Context) (ports.Tx, bool) {
	if sc := scopeFrom(ctx); sc != nil {
		return sc.tx, true
	}
	return nil, false
}
