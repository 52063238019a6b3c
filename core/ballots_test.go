// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package core

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

func TestCreateBallot(t *testing.T) {
	st := testutil.SetupTestStore(t)
	m := NewBallotManager(st)
	ctx := context.Background()

	event := testutil.CreateTestEvent(t, st, models.SystemPlurality, models.StatusRegistering)

	tests := []struct {
		name      string
		token     string
		voterName string
		wantErr   error
	}{
		{"share token", event.ShareToken, "Ted", nil},
		{"host token denied", event.HostToken, "Host", models.ErrUnauthorized},
		{"no token", "", "Anon", models.ErrUnauthorized},
		{"missing voter name", event.ShareToken, "", models.ErrValidation},
		{"duplicate voter name", event.ShareToken, "Ted", models.ErrDuplicateVoter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ballot, err := m.CreateBallot(ctx, event.ID, tt.token, tt.voterName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateBallot() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateBallot() error = %v", err)
			}

			if ballot.Token == "" {
				t.Error("CreateBallot() returned no voter token")
			}
			if ballot.Submitted() {
				t.Error("fresh ballot reports submitted")
			}
			if ballot.VoterName != tt.voterName {
				t.Errorf("voter name = %q, want %q", ballot.VoterName, tt.voterName)
			}
		})
	}

	t.Run("same name on another event", func(t *testing.T) {
		other := testutil.CreateTestEvent(t, st, models.SystemPlurality, models.StatusRegistering)
		if _, err := m.CreateBallot(ctx, other.ID, other.ShareToken, "Ted"); err != nil {
			t.Errorf("CreateBallot() on a different event error = %v", err)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := m.CreateBallot(ctx, "nope", event.ShareToken, "Ted")
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("CreateBallot() error = %v, want ErrNotFound", err)
		}
	})
}

func TestSubmitVotePlurality(t *testing.T) {
	st := testutil.SetupTestStore(t)
	m := NewBallotManager(st)
	ctx := context.Background()

	event := testutil.CreateTestEvent(t, st, models.SystemPlurality, models.StatusVoting)

	tests := []struct {
		name    string
		vote    string
		wantErr error
	}{
		{"valid choice", `"Tom's Texas Chili"`, nil},
		{"unknown choice", `"Dave's Mystery Chili"`, models.ErrValidation},
		{"array on plurality", `["Tom's Texas Chili"]`, models.ErrValidation},
		{"number", `7`, models.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ballot := testutil.CreateTestBallot(t, st, event.ID, "voter-"+tt.name)

			got, err := m.SubmitVote(ctx, ballot.ID, ballot.Token, json.RawMessage(tt.vote))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SubmitVote() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SubmitVote() error = %v", err)
			}

			if !got.Submitted() {
				t.Error("ballot not marked submitted")
			}
			if string(got.Vote) != tt.vote {
				t.Errorf("stored vote = %s, want %s", got.Vote, tt.vote)
			}
			if got.Token != "" {
				t.Error("SubmitVote() leaked the ballot token")
			}
		})
	}
}

func TestSubmitVoteRankedChoice(t *testing.T) {
	st := testutil.SetupTestStore(t)
	m := NewBallotManager(st)
	ctx := context.Background()

	event := testutil.CreateTestEvent(t, st, models.SystemRankedChoice, models.StatusVoting)

	tests := []struct {
		name    string
		vote    string
		wantErr error
	}{
		{"full ranking", `["Jim's Vegan Chili","Tom's Texas Chili","Ed's Fusion Chili"]`, nil},
		{"partial ranking", `["Ed's Fusion Chili"]`, nil},
		{"repeated entry", `["Tom's Texas Chili","Tom's Texas Chili"]`, nil},
		{"string on ranked choice", `"Tom's Texas Chili"`, models.ErrValidation},
		{"unknown entry", `["Tom's Texas Chili","Dave's Mystery Chili"]`, models.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ballot := testutil.CreateTestBallot(t, st, event.ID, "voter-"+tt.name)

			got, err := m.SubmitVote(ctx, ballot.ID, ballot.Token, json.RawMessage(tt.vote))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SubmitVote() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SubmitVote() error = %v", err)
			}
			if string(got.Vote) != tt.vote {
				t.Errorf("stored vote = %s, want %s", got.Vote, tt.vote)
			}
		})
	}
}

func TestSubmitVoteAuth(t *testing.T) {
	st := testutil.SetupTestStore(t)
	m := NewBallotManager(st)
	ctx := context.Background()

	event := testutil.CreateTestEvent(t, st, models.SystemPlurality, models.StatusVoting)
	ballot := testutil.CreateTestBallot(t, st, event.ID, "Ted")
	vote := json.RawMessage(`"Tom's Texas Chili"`)

	t.Run("wrong token", func(t *testing.T) {
		_, err := m.SubmitVote(ctx, ballot.ID, event.HostToken, vote)
		if !errors.Is(err, models.ErrUnauthorized) {
			t.Errorf("SubmitVote() with host token error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("unknown ballot", func(t *testing.T) {
		_, err := m.SubmitVote(ctx, "nope", ballot.Token, vote)
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("SubmitVote() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("resubmission denied", func(t *testing.T) {
		if _, err := m.SubmitVote(ctx, ballot.ID, ballot.Token, vote); err != nil {
			t.Fatalf("first SubmitVote() error = %v", err)
		}

		_, err := m.SubmitVote(ctx, ballot.ID, ballot.Token, json.RawMessage(`"Jim's Vegan Chili"`))
		if !errors.Is(err, models.ErrUnauthorized) {
			t.Errorf("second SubmitVote() error = %v, want ErrUnauthorized", err)
		}

		// The original vote survives
		stored, err := st.GetBallot(ctx, ballot.ID)
		if err != nil {
			t.Fatalf("GetBallot() error = %v", err)
		}
		if string(stored.Vote) != string(vote) {
			t.Errorf("stored vote = %s, want %s", stored.Vote, vote)
		}
	})
}

func TestGetBallot(t *testing.T) {
	st := testutil.SetupTestStore(t)
	m := NewBallotManager(st)
	ctx := context.Background()

	event := testutil.CreateTestEvent(t, st, models.SystemPlurality, models.StatusVoting)
	ballot := testutil.CreateTestBallot(t, st, event.ID, "Ted")
	other := testutil.CreateTestBallot(t, st, event.ID, "Ned")

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"own token", ballot.Token, nil},
		{"host token", event.HostToken, nil},
		{"share token", event.ShareToken, models.ErrUnauthorized},
		{"another voter's token", other.Token, models.ErrUnauthorized},
		{"no token", "", models.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.GetBallot(ctx, ballot.ID, tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetBallot() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetBallot() error = %v", err)
			}
			if got.VoterName != "Ted" {
				t.Errorf("voter name = %q, want Ted", got.VoterName)
			}
			if got.Token != "" {
				t.Error("GetBallot() leaked the ballot token")
			}
		})
	}
}

func TestGetBallotByToken(t *testing.T) {
	st := testutil.SetupTestStore(t)
	m := NewBallotManager(st)
	ctx := context.Background()

	event := testutil.CreateTestEvent(t, st, models.SystemPlurality, models.StatusVoting)
	ballot := testutil.CreateTestBallot(t, st, event.ID, "Ted")

	t.Run("found", func(t *testing.T) {
		got, err := m.GetBallotByToken(ctx, ballot.Token)
		if err != nil {
			t.Fatalf("GetBallotByToken() error = %v", err)
		}
		if got.ID != ballot.ID {
			t.Errorf("ballot id = %q, want %q", got.ID, ballot.ID)
		}
		if got.Token != "" {
			t.Error("GetBallotByToken() echoed the token back")
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := m.GetBallotByToken(ctx, "nope")
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("GetBallotByToken() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := m.GetBallotByToken(ctx, "")
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("GetBallotByToken(\"\") error = %v, want ErrNotFound", err)
		}
	})
}

func TestListBallots(t *testing.T) {
	st := testutil.SetupTestStore(t)
	m := NewBallotManager(st)
	ctx := context.Background()

	event := testutil.CreateTestEvent(t, st, models.SystemPlurality, models.StatusVoting)
	tedBallot := testutil.CreateTestBallot(t, st, event.ID, "Ted")
	testutil.CreateTestBallot(t, st, event.ID, "Ned")

	t.Run("share token denied", func(t *testing.T) {
		_, err := m.ListBallots(ctx, event.ID, event.ShareToken)
		if !errors.Is(err, models.ErrUnauthorized) {
			t.Errorf("ListBallots() with share token error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("voter token", func(t *testing.T) {
		ballots, err := m.ListBallots(ctx, event.ID, tedBallot.Token)
		if err != nil {
			t.Fatalf("ListBallots() error = %v", err)
		}
		if len(ballots) != 2 {
			t.Fatalf("len(ballots) = %d, want 2", len(ballots))
		}
		if ballots[0].VoterName != "Ted" || ballots[1].VoterName != "Ned" {
			t.Errorf("order = [%s %s], want [Ted Ned]", ballots[0].VoterName, ballots[1].VoterName)
		}
		for _, b := range ballots {
			if b.Token != "" {
				t.Errorf("ListBallots() leaked token for %s", b.VoterName)
			}
		}
	})
}
