// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the persistence interface the core depends on, and its
SQL implementation.

# Interfaces

The core packages never touch database/sql directly; they hold a Store:

	type Store interface {
		EventStore
		BallotStore
	}

Each operation is a single bounded read or write. The two invariants that
need atomicity are pushed into the database rather than application locks:

  - voter-name uniqueness per event: UNIQUE (event_id, voter_name), with
    constraint violations translated to models.ErrDuplicateVoter
  - one-shot vote submission: MarkSubmitted updates
    WHERE submitted_at IS NULL and reports whether a row changed

# SQL Implementation

NewSQL wraps a *sql.DB from the db package:

	st := store.NewSQL(conn)

Unique-violation detection handles both backends: lib/pq error code 23505
and the modernc.org/sqlite SQLITE_CONSTRAINT_UNIQUE / _PRIMARYKEY extended
codes.
*/
package store
