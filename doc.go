/*
Package cambium is a synchronous action-pipeline execution core. It wraps
discrete units of business logic ("actions") behind a uniform contract,
gives each an optional atomic-transaction boundary, and chains them into
ordered pipelines where each stage consumes the previous stage's result.

# Concept

An Action holds one validated DTO as input plus any injected stateless
collaborators, and implements Handle with pure business logic. The
Executor decides the transactional discipline around Handle: Execute opens
a transaction scope (or joins one already on the call stack), commits on
success, and rolls back on any error; WithoutTransaction runs Handle bare.
Scopes are reentrant: at most one physical transaction exists per call
path, nested Execute calls join it, and a failure at any nesting depth
unwinds the single physical transaction.

# Usage

	exec := cambium.New(manager)

	in, err := orderdto.Create.New(map[string]any{
		"customer": 42,
		"products": []string{"p1", "p2"},
		"total":    150.0,
	})
	if err != nil {
		// *schema.ValidationError listing every violated field
	}

	result, err := exec.Execute(ctx, NewCreateOrder(in))

Pipelines chain actions left to right; the first error aborts the chain
and no later stage is constructed:

	result, err := exec.StartWith(NewCreateOrder(in)).
		Pipe(func(prev any) (cambium.Action, error) {
			return NewReserveStock(prev.(Order)), nil
		}).
		Pipe(func(prev any) (cambium.Action, error) {
			return NewNotifyWarehouse(prev.(Order)), nil
		}).
		Run(ctx)

Each stage runs without its own scope. For cross-stage atomicity, open one
scope around the whole chain; everything inside joins it:

	result, err := exec.InTransaction(ctx, func(ctx context.Context) (any, error) {
		return exec.StartWith(a).Pipe(next).Run(ctx)
	})

Concrete transaction managers live under pkg/adapters (memory, sqlite,
redis); the executor only sees the ports.Manager interface.
*/
package cambium
