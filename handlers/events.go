// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/ballotbox/core"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type EventHandler struct {
	events *core.EventManager
}

func NewEventHandler(events *core.EventManager) *EventHandler {
	return &EventHandler{events: events}
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	event, err := h.events.CreateEvent(r.Context(), req.Name, req.Choices, req.ElectoralSystem)
	if err != nil {
		writeError(w, err)
		return
	}

	// The only response that carries the host token.
	middleware.JSONResponse(w, http.StatusCreated, event)
}

// ReadEvent handles GET /events/{id}
func (h *EventHandler) ReadEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event id is required")
		return
	}

	event, err := h.events.ReadEvent(r.Context(), eventID, middleware.AccessToken(r))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, event)
}

// UpdateStatus handles POST /events/{id}/status
func (h *EventHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event id is required")
		return
	}

	var req models.UpdateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	event, err := h.events.UpdateStatus(r.Context(), eventID, middleware.AccessToken(r), req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, event)
}

// SetResultsVisibility handles POST /events/{id}/results-visibility
func (h *EventHandler) SetResultsVisibility(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event id is required")
		return
	}

	var req models.SetResultsVisibilityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	event, err := h.events.SetResultsVisibility(r.Context(), eventID, middleware.AccessToken(r), req.ShowResults)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, event)
}

// ListBallotStatuses handles GET /events/{id}/ballot-statuses
func (h *EventHandler) ListBallotStatuses(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event id is required")
		return
	}

	statuses, err := h.events.ListBallotStatuses(r.Context(), eventID, middleware.AccessToken(r))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, statuses)
}

// ListBallotResults handles GET /events/{id}/ballot-results
func (h *EventHandler) ListBallotResults(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event id is required")
		return
	}

	results, err := h.events.ListBallotResults(r.Context(), eventID, middleware.AccessToken(r))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
