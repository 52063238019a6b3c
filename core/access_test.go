// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package core

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

func TestAuthorize(t *testing.T) {
	st := testutil.SetupTestStore(t)
	ctx := context.Background()

	event := testutil.CreateTestEvent(t, st, models.SystemPlurality, models.StatusVoting)
	ballot := testutil.CreateTestBallot(t, st, event.ID, "Ted")

	otherEvent := testutil.CreateTestEvent(t, st, models.SystemPlurality, models.StatusVoting)
	otherBallot := testutil.CreateTestBallot(t, st, otherEvent.ID, "Stranger")

	tests := []struct {
		name  string
		token string
		tier  Tier
		allow bool
	}{
		{"host at host tier", event.HostToken, TierHost, true},
		{"share at host tier", event.ShareToken, TierHost, false},
		{"ballot at host tier", ballot.Token, TierHost, false},

		{"share at share tier", event.ShareToken, TierShare, true},
		{"host at share tier", event.HostToken, TierShare, false},
		{"ballot at share tier", ballot.Token, TierShare, false},

		{"host at voter tier", event.HostToken, TierVoter, true},
		{"ballot at voter tier", ballot.Token, TierVoter, true},
		{"share at voter tier", event.ShareToken, TierVoter, false},

		{"host at participant tier", event.HostToken, TierParticipant, true},
		{"share at participant tier", event.ShareToken, TierParticipant, true},
		{"ballot at participant tier", ballot.Token, TierParticipant, true},

		{"empty token", "", TierParticipant, false},
		{"garbage token", "not-a-token", TierParticipant, false},
		{"other event's ballot token", otherBallot.Token, TierParticipant, false},
		{"other event's host token", otherEvent.HostToken, TierHost, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(ctx, st, event, tt.token, tt.tier)
			if tt.allow && err != nil {
				t.Errorf("Authorize() = %v, want allow", err)
			}
			if !tt.allow && !errors.Is(err, models.ErrUnauthorized) {
				t.Errorf("Authorize() = %v, want ErrUnauthorized", err)
			}
		})
	}
}
