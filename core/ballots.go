// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

// BallotManager owns ballot creation, the one-shot vote submission, and
// ballot reads.
type BallotManager struct {
	store store.Store
}

func NewBallotManager(st store.Store) *BallotManager {
	return &BallotManager{store: st}
}

// CreateBallot registers a voter on an event. Anyone holding the event's
// share token may self-register. The returned ballot carries its token -
// the voter's sole credential - which is never readable again through this
// API; transmitting it to the voter is the caller's job.
//
// Ballot creation is not gated on event status; a host who wants to freeze
// registration communicates that out of band.
func (m *BallotManager) CreateBallot(ctx context.Context, eventID, shareToken, voterName string) (*models.Ballot, error) {
	if voterName == "" {
		return nil, fmt.Errorf("%w: voter name is required", models.ErrValidation)
	}

	event, err := m.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(ctx, m.store, event, shareToken, TierShare); err != nil {
		return nil, err
	}

	id, err := auth.GenerateID(16)
	if err != nil {
		return nil, err
	}
	token, err := auth.NewToken()
	if err != nil {
		return nil, err
	}

	ballot := &models.Ballot{
		ID:        id,
		Token:     token,
		EventID:   eventID,
		VoterName: voterName,
		CreatedAt: time.Now().UTC(),
	}

	if err := m.store.CreateBallot(ctx, ballot); err != nil {
		return nil, err
	}

	slog.Info("ballot created", "event_id", eventID, "ballot_id", ballot.ID, "voter", voterName)

	return ballot, nil
}

// SubmitVote records a vote on a ballot exactly once. The payload shape is
// validated against the owning event's electoral system at this moment, not
// before. A ballot that has already been submitted fails with Unauthorized -
// the same coarse signal as a wrong token, deliberately indistinguishable to
// the caller.
func (m *BallotManager) SubmitVote(ctx context.Context, ballotID, token string, vote json.RawMessage) (*models.Ballot, error) {
	ballot, err := m.store.GetBallot(ctx, ballotID)
	if err != nil {
		return nil, err
	}
	if !auth.TokenEqual(token, ballot.Token) {
		return nil, models.ErrUnauthorized
	}
	if ballot.Submitted() {
		return nil, models.ErrUnauthorized
	}

	event, err := m.store.GetEvent(ctx, ballot.EventID)
	if err != nil {
		return nil, err
	}
	if err := validateVote(event, vote); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ok, err := m.store.MarkSubmitted(ctx, ballotID, vote, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the compare-and-set: a concurrent submission got there first.
		return nil, models.ErrUnauthorized
	}

	slog.Info("vote submitted", "event_id", ballot.EventID, "ballot_id", ballotID)

	ballot.Vote = vote
	ballot.SubmittedAt = &now
	ballot.Token = ""
	return ballot, nil
}

// GetBallot returns a ballot to the voter holding its token or to the
// event's host. The ballot token itself is redacted from reads; it is
// only ever returned at creation.
func (m *BallotManager) GetBallot(ctx context.Context, ballotID, token string) (*models.Ballot, error) {
	ballot, err := m.store.GetBallot(ctx, ballotID)
	if err != nil {
		return nil, err
	}

	if !auth.TokenEqual(token, ballot.Token) {
		event, err := m.store.GetEvent(ctx, ballot.EventID)
		if err != nil {
			return nil, err
		}
		if !auth.TokenEqual(token, event.HostToken) {
			return nil, models.ErrUnauthorized
		}
	}

	ballot.Token = ""
	return ballot, nil
}

// GetBallotByToken looks a ballot up by its token alone - the recovery path
// for a voter who kept nothing else.
func (m *BallotManager) GetBallotByToken(ctx context.Context, token string) (*models.Ballot, error) {
	if token == "" {
		return nil, models.ErrNotFound
	}
	ballot, err := m.store.GetBallotByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	ballot.Token = ""
	return ballot, nil
}

// ListBallots returns all ballots of an event, ordered by
// (created_at, submitted_at) ascending, to the host or any voter.
func (m *BallotManager) ListBallots(ctx context.Context, eventID, token string) ([]*models.Ballot, error) {
	event, err := m.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(ctx, m.store, event, token, TierVoter); err != nil {
		return nil, err
	}

	ballots, err := m.store.ListBallots(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for _, b := range ballots {
		b.Token = ""
	}
	return ballots, nil
}

// validateVote checks a raw payload against the event's electoral system:
// plurality wants a single string naming one of the event's choices;
// ranked choice wants an array of strings, each naming a choice. Duplicate
// and partial rankings are accepted.
func validateVote(event *models.Event, raw json.RawMessage) error {
	payload, err := models.ParseVotePayload(raw)
	if err != nil {
		return err
	}

	switch event.ElectoralSystem {
	case models.SystemPlurality:
		if payload.Choice == nil {
			return fmt.Errorf("%w: plurality vote must be a single string", models.ErrValidation)
		}
		if !event.HasChoice(*payload.Choice) {
			return fmt.Errorf("%w: %q is not a choice of this event", models.ErrValidation, *payload.Choice)
		}
	case models.SystemRankedChoice:
		if payload.Ranking == nil {
			return fmt.Errorf("%w: ranked-choice vote must be an array of strings", models.ErrValidation)
		}
		for _, c := range payload.Ranking {
			if !event.HasChoice(c) {
				return fmt.Errorf("%w: %q is not a choice of this event", models.ErrValidation, c)
			}
		}
	default:
		return fmt.Errorf("%w: unknown electoral system %q", models.ErrValidation, event.ElectoralSystem)
	}
	return nil
}
