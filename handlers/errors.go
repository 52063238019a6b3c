// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

// writeError maps the core error taxonomy to wire status codes:
// Unauthorized → 403, NotFound → 404, DuplicateVoter and ValidationError →
// 422. Anything else is a server fault.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid or insufficient token")
	case errors.Is(err, models.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	case errors.Is(err, models.ErrDuplicateVoter):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Voter name already registered")
	case errors.Is(err, models.ErrValidation):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("internal error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
