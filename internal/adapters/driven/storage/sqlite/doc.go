// Package sqlite provides a SQLite-backed implementation of the vault's
// driven store ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. A single database connection serves three stores:
//
//   - ProfileStore: family-member profiles
//   - DocumentStore: vault documents, cascading on profile deletion
//   - VaultStore: PIN and recovery verifiers plus lock preferences
//
// # Schema
//
// The schema is managed through versioned migrations in the migrations/
// directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.filesafe/data/filesafe.db
//
// # Thread Safety
//
// All operations are thread-safe. The store relies on SQLite locking in WAL mode.
package sqlite
