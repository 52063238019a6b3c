// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ballotbox API.

# Handler Types

Each handler is a thin adapter over a core manager:

  - EventHandler: event lifecycle, results visibility, host views
  - BallotHandler: voter registration, vote submission, ballot reads

Handlers parse the request, pull the caller's token via
middleware.AccessToken, call the core, and translate the error taxonomy to
status codes (403 / 404 / 422). No business rule lives here.

# Event Flow

	POST /events                          → CreateEvent (201; host+share tokens)
	GET  /events/{id}                     → ReadEvent (any event token)
	POST /events/{id}/status              → UpdateStatus (host)
	POST /events/{id}/results-visibility  → SetResultsVisibility (host)
	GET  /events/{id}/ballot-statuses     → ListBallotStatuses (host)
	GET  /events/{id}/ballot-results      → ListBallotResults (host or voter)

# Voting Flow

	POST /events/{id}/ballots → CreateBallot (share token; returns ballot token)
	POST /ballots/{id}/submit → SubmitVote (ballot token, once)
	GET  /ballots/{id}        → GetBallot (ballot or host token)
	GET  /ballots/me          → GetMyBallot (token-only lookup)
	GET  /events/{id}/ballots → ListBallots (host or voter)
*/
package handlers
