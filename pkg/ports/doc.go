/*
Package ports defines the driven ports (interfaces) for the Cambium
executor.

These interfaces decouple the core from concrete transaction managers,
letting the same executor run against an in-memory journal, a SQL
database, or a Redis pipeline.

# Key Interfaces

  - Manager: begins physical transactions for the executor's scope logic.
  - Tx: one physical transaction; committed or rolled back exactly once,
    by the outermost scope holder only.
*/
package ports
