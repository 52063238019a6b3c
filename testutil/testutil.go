// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/db"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
// Each call gets its own private database; nothing leaks between tests.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore creates an in-memory database and wraps it in the SQL store.
func SetupTestStore(t *testing.T) *store.SQL {
	t.Helper()
	return store.NewSQL(SetupTestDB(t))
}

// CreateTestEvent inserts an event with fresh tokens. status should be
// "registering", "voting", or "closed".
func CreateTestEvent(t *testing.T, st *store.SQL, electoralSystem, status string) *models.Event {
	t.Helper()

	id, _ := auth.GenerateID(16)
	hostToken, _ := auth.NewToken()
	shareToken, _ := auth.NewToken()

	event := &models.Event{
		ID:              id,
		HostToken:       hostToken,
		ShareToken:      shareToken,
		Name:            "Big Cookoff",
		Choices:         []string{"Tom's Texas Chili", "Jim's Vegan Chili", "Ed's Fusion Chili"},
		ElectoralSystem: electoralSystem,
		Status:          status,
		CreatedAt:       time.Now().UTC(),
	}
	if status == models.StatusClosed {
		now := time.Now().UTC()
		event.ClosedAt = &now
	}

	if err := st.CreateEvent(context.Background(), event); err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}

	return event
}

// CreateTestBallot registers a voter on an event and returns the ballot,
// token included.
func CreateTestBallot(t *testing.T, st *store.SQL, eventID, voterName string) *models.Ballot {
	t.Helper()

	id, _ := auth.GenerateID(16)
	token, _ := auth.NewToken()

	ballot := &models.Ballot{
		ID:        id,
		Token:     token,
		EventID:   eventID,
		VoterName: voterName,
		CreatedAt: time.Now().UTC(),
	}

	if err := st.CreateBallot(context.Background(), ballot); err != nil {
		t.Fatalf("Failed to create test ballot: %v", err)
	}

	return ballot
}

// SubmitTestVote records a raw vote payload on a ballot.
func SubmitTestVote(t *testing.T, st *store.SQL, ballotID string, vote json.RawMessage) {
	t.Helper()

	ok, err := st.MarkSubmitted(context.Background(), ballotID, vote, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to submit test vote: %v", err)
	}
	if !ok {
		t.Fatalf("Test ballot %s was already submitted", ballotID)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
