// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Backends

Open supports two backends behind the same database/sql surface:

	conn, err := db.Open("postgres", "postgres://...")
	conn, err := db.Open("sqlite", "ballotbox.db")

Queries elsewhere in the codebase use $1-style placeholders in ascending
order, which both lib/pq and modernc.org/sqlite accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - event: voting event metadata, lifecycle state, and its host/share tokens
  - ballot: one row per registered voter; vote stays NULL until submission

# Constraints

	event 1──* ballot (ON DELETE CASCADE)

  - event.host_token, event.share_token: unique
  - ballot.token: unique across all ballots
  - ballot.(event_id, voter_name): unique — voter-name collisions surface as
    constraint violations, not check-then-insert races
*/
package db
