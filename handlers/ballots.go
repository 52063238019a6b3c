// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/ballotbox/core"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type BallotHandler struct {
	ballots *core.BallotManager
}

func NewBallotHandler(ballots *core.BallotManager) *BallotHandler {
	return &BallotHandler{ballots: ballots}
}

// CreateBallot handles POST /events/{id}/ballots
func (h *BallotHandler) CreateBallot(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event id is required")
		return
	}

	var req models.CreateBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ballot, err := h.ballots.CreateBallot(r.Context(), eventID, middleware.AccessToken(r), req.VoterName)
	if err != nil {
		writeError(w, err)
		return
	}

	// The ballot token is the voter's sole credential; it is returned here
	// and never again.
	middleware.JSONResponse(w, http.StatusCreated, models.CreateBallotResponse{
		BallotID: ballot.ID,
		Token:    ballot.Token,
	})
}

// SubmitVote handles POST /ballots/{id}/submit
func (h *BallotHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	ballotID := r.PathValue("id")
	if ballotID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ballot id is required")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ballot, err := h.ballots.SubmitVote(r.Context(), ballotID, middleware.AccessToken(r), req.Vote)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ballot)
}

// GetBallot handles GET /ballots/{id}
func (h *BallotHandler) GetBallot(w http.ResponseWriter, r *http.Request) {
	ballotID := r.PathValue("id")
	if ballotID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ballot id is required")
		return
	}

	ballot, err := h.ballots.GetBallot(r.Context(), ballotID, middleware.AccessToken(r))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ballot)
}

// GetMyBallot handles GET /ballots/me
// Lookup by token alone, for a voter who only retained their token.
func (h *BallotHandler) GetMyBallot(w http.ResponseWriter, r *http.Request) {
	ballot, err := h.ballots.GetBallotByToken(r.Context(), middleware.AccessToken(r))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ballot)
}

// ListBallots handles GET /events/{id}/ballots
func (h *BallotHandler) ListBallots(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event id is required")
		return
	}

	ballots, err := h.ballots.ListBallots(r.Context(), eventID, middleware.AccessToken(r))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ballots)
}
