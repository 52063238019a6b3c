// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Event: voting event with fixed choices, electoral system, lifecycle
    status, and its three capability tokens (host, share, per-ballot)
  - Ballot: one voter's registration and (at most one) recorded vote
  - VotePayload: decoded vote, either a plurality choice or a ranked ordering

# Constants

Event status values:

	StatusRegistering = "registering"
	StatusVoting      = "voting"
	StatusClosed      = "closed"

Electoral systems:

	SystemPlurality    = "plurality"
	SystemRankedChoice = "ranked_choice"

# Errors

The package also carries the shared error taxonomy:

  - ErrUnauthorized: token missing, wrong, or insufficient tier (→ 403)
  - ErrNotFound: no event or ballot for the id/token (→ 404)
  - ErrDuplicateVoter: voter name collision within an event (→ 422)
  - ErrValidation: vote payload or creation input rejected (→ 422)

Storage and core wrap these sentinels with context; callers test them with
errors.Is.

# Vote Payloads

Votes are stored and returned as opaque JSON. ParseVotePayload decodes a raw
payload into the tagged VotePayload union; the core validates the decoded
shape against the owning event's electoral system at submission time, never
before.
*/
package models
