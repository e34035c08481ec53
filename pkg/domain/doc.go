/*
Package domain defines the shared vocabulary of the Cambium core: the error
taxonomy that business logic raises and the lifecycle events the executor
emits.

# Error Taxonomy

Three disjoint kinds cross the core's boundary:

  - *Error: a business-rule violation raised inside an action's Handle
    (e.g. entity not found, terminal state). Carries a machine-readable
    code and optional context for the boundary layer to translate.
  - *InfraError: a failure in the transaction manager, store, or an
    injected service collaborator. Never user-facing.
  - schema.ValidationError: raised only at DTO construction, before any
    action exists (defined in pkg/schema).

Use errors.Is with the exported sentinels to classify domain errors by code:

	if errors.Is(err, domain.ErrNotFound) { ... }
*/
package domain
