// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/danielhkuo/ballotbox/models"
)

// EventStore persists voting events.
type EventStore interface {
	// CreateEvent inserts a fully populated event.
	CreateEvent(ctx context.Context, event *models.Event) error

	// GetEvent returns the event with the given id, or models.ErrNotFound.
	GetEvent(ctx context.Context, id string) (*models.Event, error)

	// UpdateEventStatus sets status and closedAt together. closedAt must be
	// non-nil iff status is closed; the caller maintains that invariant.
	UpdateEventStatus(ctx context.Context, id, status string, closedAt *time.Time) error

	// SetResultsVisibility flips the host-controlled results gate.
	SetResultsVisibility(ctx context.Context, id string, visible bool) error
}

// BallotStore persists ballots.
type BallotStore interface {
	// CreateBallot inserts a new unsubmitted ballot. A voter-name collision
	// within the event surfaces as models.ErrDuplicateVoter; the uniqueness
	// constraint lives in the database, so concurrent inserts cannot race.
	CreateBallot(ctx context.Context, ballot *models.Ballot) error

	// GetBallot returns the ballot with the given id, or models.ErrNotFound.
	GetBallot(ctx context.Context, id string) (*models.Ballot, error)

	// GetBallotByToken returns the ballot carrying the given token, or
	// models.ErrNotFound.
	GetBallotByToken(ctx context.Context, token string) (*models.Ballot, error)

	// ListBallots returns all ballots for an event ordered by
	// (created_at, submitted_at) ascending.
	ListBallots(ctx context.Context, eventID string) ([]*models.Ballot, error)

	// HasBallotToken reports whether any ballot of the event carries token.
	HasBallotToken(ctx context.Context, eventID, token string) (bool, error)

	// MarkSubmitted records the vote and submission time iff the ballot has
	// not been submitted yet. Returns false when the compare-and-set found
	// the ballot already submitted (or gone).
	MarkSubmitted(ctx context.Context, ballotID string, vote json.RawMessage, at time.Time) (bool, error)
}

// Store is the full persistence surface the core depends on.
type Store interface {
	EventStore
	BallotStore
}
