// Package storage opens the local SQLite database that backs the ByteMe
// client and hands out the repositories built on it.
//
// # Lifecycle
//
// Open is the single initialization path: it opens the database file,
// applies the embedded goose migrations (schema version 1 creates the users
// table with its unique email index and the kv local-storage table) and
// returns a ready Store. Reopening an existing database applies nothing.
//
// Lazy wraps Open for callers that want one process-wide handle created on
// first use. Concurrent first callers share one in-flight Open, which keeps
// running even if the caller that started it gives up. A failed Open is not
// cached, so the next Get retries.
//
// # Connections
//
// The pool is capped at one connection once migrations have run. SQLite
// allows a single writer, and a plain ":memory:" database exists per
// connection, so that DSN is capped before migrating. Work that needs a
// transaction must go through the transaction handle only (see dbx.WithTx).
package storage
