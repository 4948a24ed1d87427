// Package store provides SQLite-backed durable storage for benchmark
// results.
//
// The store is an append-only record of runs and their per-iteration
// region samples. Runs are keyed by UUIDv7, so ordering by id is ordering
// by creation time.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Writes are idempotent: re-recording a run with an id the database has
// already seen is silently ignored.
package store
