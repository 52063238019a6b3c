// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Terminal error kinds shared by the storage and core layers. The transport
// layer maps these to HTTP status codes; nothing below it retries.
var (
	// ErrUnauthorized means the presented token is missing, wrong, or of an
	// insufficient tier for the requested operation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means no event or ballot matches the given id or token.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateVoter means the voter name is already registered for the event.
	ErrDuplicateVoter = errors.New("voter name already registered for event")

	// ErrValidation means a vote payload or creation input failed validation.
	ErrValidation = errors.New("validation failed")
)
