// Package sqlite provides a SQLite-based implementation of driven.FragmentStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Deposited fragments survive process
// restarts, so a sequence assembled from several partial downloads only has to
// be fetched once.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// One row of the spans table holds one known span of an accession.
//
// # Data Location
//
// By default, the database is stored at ~/.seqres/data/fragments.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. Each Put runs in a single
// transaction and the pool is limited to one connection, so merges of the
// same accession are serialized within a process; across processes SQLite's
// WAL locking with a busy timeout applies.
package sqlite
