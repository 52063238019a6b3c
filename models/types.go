package models

import (
	"encoding/json"
	"time"
)

// Event status constants
const (
	StatusRegistering = "registering"
	StatusVoting      = "voting"
	StatusClosed      = "closed"
)

// Electoral system constants
const (
	SystemPlurality    = "plurality"
	SystemRankedChoice = "ranked_choice"
)

// ValidStatus reports whether s is a known event status.
func ValidStatus(s string) bool {
	return s == StatusRegistering || s == StatusVoting || s == StatusClosed
}

// ValidElectoralSystem reports whether s is a known electoral system.
func ValidElectoralSystem(s string) bool {
	return s == SystemPlurality || s == SystemRankedChoice
}

// Request types

type CreateEventRequest struct {
	Name            string   `json:"name"`
	Choices         []string `json:"choices"`
	ElectoralSystem string   `json:"electoral_system"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type SetResultsVisibilityRequest struct {
	ShowResults bool `json:"show_results"`
}

type CreateBallotRequest struct {
	VoterName string `json:"voter_name"`
}

type SubmitVoteRequest struct {
	Vote json.RawMessage `json:"vote"`
}

// Response types

type CreateBallotResponse struct {
	BallotID string `json:"ballot_id"`
	Token    string `json:"token"`
}

type BallotStatusesResponse struct {
	Pending   []string `json:"pending"`
	Submitted []string `json:"submitted"`
}

// Domain types

type Event struct {
	ID              string     `json:"id"`
	HostToken       string     `json:"host_token,omitempty"`
	ShareToken      string     `json:"share_token,omitempty"`
	Name            string     `json:"name"`
	Choices         []string   `json:"choices"`
	ElectoralSystem string     `json:"electoral_system"`
	Status          string     `json:"status"`
	ShowResults     bool       `json:"show_results"`
	CreatedAt       time.Time  `json:"created_at"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`
}

// HasChoice reports whether candidate is one of the event's choices
// (case-sensitive exact match).
func (e *Event) HasChoice(candidate string) bool {
	for _, c := range e.Choices {
		if c == candidate {
			return true
		}
	}
	return false
}

type Ballot struct {
	ID          string          `json:"id"`
	Token       string          `json:"token,omitempty"` // voter credential; only returned at creation
	EventID     string          `json:"event_id"`
	VoterName   string          `json:"voter_name"`
	Vote        json.RawMessage `json:"vote,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	SubmittedAt *time.Time      `json:"submitted_at,omitempty"`
}

// Submitted reports whether the ballot has recorded a vote.
func (b *Ballot) Submitted() bool {
	return b.SubmittedAt != nil
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
