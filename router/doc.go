// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ballotbox API.

# Route Registration

NewRouter wires the SQL store, the core managers, and all endpoints into a
configured http.ServeMux:

	mux := router.NewRouter(db)

# Endpoints

Health:

	GET /health

Event management (token in X-Access-Token header or ?token=):

	POST /events                         - Create event (returns both tokens)
	GET  /events/{id}                    - Event projection
	POST /events/{id}/status             - Set status (host)
	POST /events/{id}/results-visibility - Show/hide results (host)
	GET  /events/{id}/ballot-statuses    - Pending/submitted voters (host)
	GET  /events/{id}/ballot-results     - Raw vote payloads (host or voter)

Voting:

	POST /events/{id}/ballots - Register voter (share token)
	GET  /events/{id}/ballots - List ballots (host or voter)
	POST /ballots/{id}/submit - Submit vote (ballot token)
	GET  /ballots/me          - Ballot lookup by token alone
	GET  /ballots/{id}        - Ballot read (ballot or host token)

The literal /ballots/me pattern takes precedence over /ballots/{id} under
Go 1.22 routing.
*/
package router
