// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package core

import (
	"context"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

// Tier is the capability level an operation requires. A presented token is
// classified against the event's three token classes (host, share,
// per-ballot); comparison is exact-match on the opaque value.
type Tier int

const (
	// TierHost: the event's host token only.
	TierHost Tier = iota
	// TierShare: the event's share token only (voter self-registration).
	TierShare
	// TierVoter: the host token or any ballot token of the event.
	TierVoter
	// TierParticipant: the host token, the share token, or any ballot token
	// of the event.
	TierParticipant
)

// Authorize checks a presented token against the required tier for an event.
// Returns nil on allow, models.ErrUnauthorized on deny. Ballot-token
// membership is resolved through the store; everything else is a
// constant-time comparison against the event's own tokens.
func Authorize(ctx context.Context, ballots store.BallotStore, event *models.Event, token string, tier Tier) error {
	if token == "" {
		return models.ErrUnauthorized
	}

	isHost := auth.TokenEqual(token, event.HostToken)
	isShare := auth.TokenEqual(token, event.ShareToken)

	switch tier {
	case TierHost:
		if isHost {
			return nil
		}
	case TierShare:
		if isShare {
			return nil
		}
	case TierVoter:
		if isHost {
			return nil
		}
		return authorizeBallotToken(ctx, ballots, event.ID, token)
	case TierParticipant:
		if isHost || isShare {
			return nil
		}
		return authorizeBallotToken(ctx, ballots, event.ID, token)
	}

	return models.ErrUnauthorized
}

func authorizeBallotToken(ctx context.Context, ballots store.BallotStore, eventID, token string) error {
	ok, err := ballots.HasBallotToken(ctx, eventID, token)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrUnauthorized
	}
	return nil
}
