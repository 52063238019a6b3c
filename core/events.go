// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

// EventManager owns the event lifecycle: creation, status transitions,
// results visibility, and the host's views over an event's ballots.
type EventManager struct {
	store store.Store
}

func NewEventManager(st store.Store) *EventManager {
	return &EventManager{store: st}
}

// CreateEvent creates a voting event with freshly generated host and share
// tokens, status registering, and hidden results. The returned event is the
// only place the host token is handed out without prior authorization; the
// creator must receive it to ever act as host again.
func (m *EventManager) CreateEvent(ctx context.Context, name string, choices []string, electoralSystem string) (*models.Event, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if len(choices) == 0 {
		return nil, fmt.Errorf("%w: choices must be non-empty", models.ErrValidation)
	}
	seen := make(map[string]bool, len(choices))
	for _, c := range choices {
		if seen[c] {
			return nil, fmt.Errorf("%w: duplicate choice %q", models.ErrValidation, c)
		}
		seen[c] = true
	}
	if !models.ValidElectoralSystem(electoralSystem) {
		return nil, fmt.Errorf("%w: unknown electoral system %q", models.ErrValidation, electoralSystem)
	}

	id, err := auth.GenerateID(16)
	if err != nil {
		return nil, err
	}
	hostToken, err := auth.NewToken()
	if err != nil {
		return nil, err
	}
	shareToken, err := auth.NewToken()
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:              id,
		HostToken:       hostToken,
		ShareToken:      shareToken,
		Name:            name,
		Choices:         choices,
		ElectoralSystem: electoralSystem,
		Status:          models.StatusRegistering,
		ShowResults:     false,
		CreatedAt:       time.Now().UTC(),
	}

	if err := m.store.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	slog.Info("event created", "event_id", event.ID, "electoral_system", electoralSystem)

	return event, nil
}

// ReadEvent returns the event projection for any participant-tier caller.
// The share token is part of the projection; the host token is included only
// when the caller presented it.
func (m *EventManager) ReadEvent(ctx context.Context, eventID, token string) (*models.Event, error) {
	event, err := m.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(ctx, m.store, event, token, TierParticipant); err != nil {
		return nil, err
	}

	if !auth.TokenEqual(token, event.HostToken) {
		event.HostToken = ""
	}
	return event, nil
}

// UpdateStatus sets the event status. Closing stamps closedAt; any other
// status clears it. No ordering constraint is imposed between statuses, and
// reapplying the current status is a no-op in effect, not an error.
func (m *EventManager) UpdateStatus(ctx context.Context, eventID, token, status string) (*models.Event, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrValidation, status)
	}

	event, err := m.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(ctx, m.store, event, token, TierHost); err != nil {
		return nil, err
	}

	var closedAt *time.Time
	if status == models.StatusClosed {
		now := time.Now().UTC()
		closedAt = &now
	}

	if err := m.store.UpdateEventStatus(ctx, eventID, status, closedAt); err != nil {
		return nil, err
	}

	slog.Info("event status updated", "event_id", eventID, "status", status)

	event.Status = status
	event.ClosedAt = closedAt
	return event, nil
}

// SetResultsVisibility flips the host-controlled results gate. It is
// independent of status: results may be hidden while closed or shown while
// voting; the policy is the host's.
func (m *EventManager) SetResultsVisibility(ctx context.Context, eventID, token string, visible bool) (*models.Event, error) {
	event, err := m.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(ctx, m.store, event, token, TierHost); err != nil {
		return nil, err
	}

	if err := m.store.SetResultsVisibility(ctx, eventID, visible); err != nil {
		return nil, err
	}

	slog.Info("results visibility updated", "event_id", eventID, "show_results", visible)

	event.ShowResults = visible
	return event, nil
}

// ListBallotStatuses returns the host's progress view: pending voter names
// ordered by ballot creation time, submitted voter names ordered by
// submission time.
func (m *EventManager) ListBallotStatuses(ctx context.Context, eventID, token string) (*models.BallotStatusesResponse, error) {
	event, err := m.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(ctx, m.store, event, token, TierHost); err != nil {
		return nil, err
	}

	ballots, err := m.store.ListBallots(ctx, eventID)
	if err != nil {
		return nil, err
	}

	statuses := &models.BallotStatusesResponse{
		Pending:   []string{},
		Submitted: []string{},
	}
	submitted := []*models.Ballot{}
	for _, b := range ballots {
		if b.Submitted() {
			submitted = append(submitted, b)
		} else {
			statuses.Pending = append(statuses.Pending, b.VoterName)
		}
	}
	sort.SliceStable(submitted, func(i, j int) bool {
		return submitted[i].SubmittedAt.Before(*submitted[j].SubmittedAt)
	})
	for _, b := range submitted {
		statuses.Submitted = append(statuses.Submitted, b.VoterName)
	}
	return statuses, nil
}

// ListBallotResults returns every ballot's raw vote payload in ballot
// creation order; unsubmitted ballots contribute null. Aggregation is the
// caller's problem - payloads are opaque here. Readable by the host or any
// voter of the event.
func (m *EventManager) ListBallotResults(ctx context.Context, eventID, token string) ([]json.RawMessage, error) {
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

	results := make([]json.RawMessage, 0, len(ballots))
	for _, b := range ballots {
		results = append(results, b.Vote)
	}
	return results, nil
}
