// Package store provides a SQLite cache of built tensor grids.
//
// Grids are keyed by the content-addressed request ID computed in
// internal/request, so a request that was already built is served from the
// cache instead of recomputed. Each row keeps the CBOR payload from
// internal/codec and a digest of the grid contents.
//
// # Ordering
//
//   - Insertion order is tracked by seq INTEGER, never by timestamps
//   - Listings use ORDER BY seq ASC, request_id COLLATE BINARY ASC
//
// # Idempotency
//
//   - request_id is UNIQUE; a second PutGrid for the same request is a no-op
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//   - application_id marks the file as a gkquad cache; Open refuses files
//     stamped by another application
//   - user_version counts applied migrations; each runs in its own
//     transaction
package store
