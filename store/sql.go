// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/danielhkuo/ballotbox/models"
)

// SQL implements Store on top of database/sql. It works against both
// supported backends (postgres via lib/pq, sqlite via modernc.org/sqlite);
// queries use $1-style placeholders in ascending order, which both drivers
// bind positionally.
type SQL struct {
	db *sql.DB
}

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) CreateEvent(ctx context.Context, event *models.Event) error {
	choices, err := json.Marshal(event.Choices)
	if err != nil {
		return fmt.Errorf("failed to encode choices: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO event (id, host_token, share_token, name, choices, electoral_system, status, show_results, created_at, closed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, event.ID, event.HostToken, event.ShareToken, event.Name, string(choices),
		event.ElectoralSystem, event.Status, event.ShowResults, event.CreatedAt, nullTime(event.ClosedAt))
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (s *SQL) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, host_token, share_token, name, choices, electoral_system, status, show_results, created_at, closed_at
		FROM event
		WHERE id = $1
	`, id)
	return scanEvent(row)
}

func (s *SQL) UpdateEventStatus(ctx context.Context, id, status string, closedAt *time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE event
		SET status = $1, closed_at = $2
		WHERE id = $3
	`, status, nullTime(closedAt), id)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}
	return requireRow(res)
}

func (s *SQL) SetResultsVisibility(ctx context.Context, id string, visible bool) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE event
		SET show_results = $1
		WHERE id = $2
	`, visible, id)
	if err != nil {
		return fmt.Errorf("failed to update results visibility: %w", err)
	}
	return requireRow(res)
}

func (s *SQL) CreateBallot(ctx context.Context, ballot *models.Ballot) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ballot (id, token, event_id, voter_name, vote, created_at, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, ballot.ID, ballot.Token, ballot.EventID, ballot.VoterName,
		nullJSON(ballot.Vote), ballot.CreatedAt, nullTime(ballot.SubmittedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", models.ErrDuplicateVoter, ballot.VoterName)
		}
		return fmt.Errorf("failed to insert ballot: %w", err)
	}
	return nil
}

func (s *SQL) GetBallot(ctx context.Context, id string) (*models.Ballot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, token, event_id, voter_name, vote, created_at, submitted_at
		FROM ballot
		WHERE id = $1
	`, id)
	return scanBallot(row)
}

func (s *SQL) GetBallotByToken(ctx context.Context, token string) (*models.Ballot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, token, event_id, voter_name, vote, created_at, submitted_at
		FROM ballot
		WHERE token = $1
	`, token)
	return scanBallot(row)
}

func (s *SQL) ListBallots(ctx context.Context, eventID string) ([]*models.Ballot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, token, event_id, voter_name, vote, created_at, submitted_at
		FROM ballot
		WHERE event_id = $1
		ORDER BY created_at ASC, submitted_at ASC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ballots: %w", err)
	}
	defer rows.Close()

	ballots := []*models.Ballot{}
	for rows.Next() {
		ballot, err := scanBallot(rows)
		if err != nil {
			return nil, err
		}
		ballots = append(ballots, ballot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ballots: %w", err)
	}
	return ballots, nil
}

func (s *SQL) HasBallotToken(ctx context.Context, eventID, token string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM ballot
			WHERE event_id = $1 AND token = $2
		)
	`, eventID, token).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ballot token: %w", err)
	}
	return exists, nil
}

func (s *SQL) MarkSubmitted(ctx context.Context, ballotID string, vote json.RawMessage, at time.Time) (bool, error) {
	// The submitted_at IS NULL guard makes the one-shot submission a
	// compare-and-set: of two concurrent submissions, exactly one updates a row.
	res, err := s.db.ExecContext(ctx, `
		UPDATE ballot
		SET vote = $1, submitted_at = $2
		WHERE id = $3 AND submitted_at IS NULL
	`, string(vote), at, ballotID)
	if err != nil {
		return false, fmt.Errorf("failed to mark ballot submitted: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var event models.Event
	var choices string
	var closedAt sql.NullTime

	err := row.Scan(&event.ID, &event.HostToken, &event.ShareToken, &event.Name,
		&choices, &event.ElectoralSystem, &event.Status, &event.ShowResults,
		&event.CreatedAt, &closedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}

	if err := json.Unmarshal([]byte(choices), &event.Choices); err != nil {
		return nil, fmt.Errorf("failed to decode choices: %w", err)
	}
	if closedAt.Valid {
		t := closedAt.Time
		event.ClosedAt = &t
	}
	return &event, nil
}

func scanBallot(row rowScanner) (*models.Ballot, error) {
	var ballot models.Ballot
	var vote sql.NullString
	var submittedAt sql.NullTime

	err := row.Scan(&ballot.ID, &ballot.Token, &ballot.EventID, &ballot.VoterName,
		&vote, &ballot.CreatedAt, &submittedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan ballot: %w", err)
	}

	if vote.Valid {
		ballot.Vote = json.RawMessage(vote.String)
	}
	if submittedAt.Valid {
		t := submittedAt.Time
		ballot.SubmittedAt = &t
	}
	return &ballot, nil
}

// requireRow translates a zero-row update into models.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// isUniqueViolation recognizes uniqueness-constraint errors from either
// backend: postgres class 23505 or the sqlite unique/primary-key extended
// result codes.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullJSON(raw json.RawMessage) sql.NullString {
	if raw == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}

var _ Store = (*SQL)(nil)
