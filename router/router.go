// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ballotbox/core"
	"github.com/danielhkuo/ballotbox/handlers"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/store"
)

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	// Wire storage and core managers
	st := store.NewSQL(db)
	eventHandler := handlers.NewEventHandler(core.NewEventManager(st))
	ballotHandler := handlers.NewBallotHandler(core.NewBallotManager(st))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Event management
	mux.HandleFunc("POST /events", middleware.WithLogging(eventHandler.CreateEvent))
	mux.HandleFunc("GET /events/{id}", middleware.WithLogging(eventHandler.ReadEvent))
	mux.HandleFunc("POST /events/{id}/status", middleware.WithLogging(eventHandler.UpdateStatus))
	mux.HandleFunc("POST /events/{id}/results-visibility", middleware.WithLogging(eventHandler.SetResultsVisibility))
	mux.HandleFunc("GET /events/{id}/ballot-statuses", middleware.WithLogging(eventHandler.ListBallotStatuses))
	mux.HandleFunc("GET /events/{id}/ballot-results", middleware.WithLogging(eventHandler.ListBallotResults))

	// Ballot operations
	mux.HandleFunc("POST /events/{id}/ballots", middleware.WithLogging(ballotHandler.CreateBallot))
	mux.HandleFunc("GET /events/{id}/ballots", middleware.WithLogging(ballotHandler.ListBallots))
	mux.HandleFunc("POST /ballots/{id}/submit", middleware.WithLogging(ballotHandler.SubmitVote))
	mux.HandleFunc("GET /ballots/me", middleware.WithLogging(ballotHandler.GetMyBallot))
	mux.HandleFunc("GET /ballots/{id}", middleware.WithLogging(ballotHandler.GetBallot))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotbox API v1"))
	})

	return mux
}
