// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The statements stick to the SQL dialect subset shared by postgres and
// sqlite; timestamps are always written by the application, never defaulted.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Events
CREATE TABLE IF NOT EXISTS event (
    id TEXT PRIMARY KEY,
    host_token TEXT NOT NULL UNIQUE,
    share_token TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    choices TEXT NOT NULL, -- JSON array of candidate strings, fixed at creation
    electoral_system TEXT NOT NULL CHECK (electoral_system IN ('plurality', 'ranked_choice')),
    status TEXT NOT NULL DEFAULT 'registering' CHECK (status IN ('registering', 'voting', 'closed')),
    show_results BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL,
    closed_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_event_host_token ON event(host_token);
CREATE INDEX IF NOT EXISTS idx_event_share_token ON event(share_token);

-- Ballots
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    token TEXT NOT NULL UNIQUE,
    event_id TEXT NOT NULL REFERENCES event(id) ON DELETE CASCADE,
    voter_name TEXT NOT NULL,
    vote TEXT, -- raw JSON payload, NULL until submitted
    created_at TIMESTAMP NOT NULL,
    submitted_at TIMESTAMP,
    UNIQUE (event_id, voter_name)
);

CREATE INDEX IF NOT EXISTS idx_ballot_event_id ON ballot(event_id);
CREATE INDEX IF NOT EXISTS idx_ballot_token ON ballot(token);
`
