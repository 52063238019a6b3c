// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Ballotbox API server.

Ballotbox is a small voting-event service: a host creates an event with a
fixed list of choices, shares a registration link, and voters each receive
a one-shot ballot they can fill in exactly once. Events support plurality
and ranked-choice vote payloads.

# Starting the Server

The server takes environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... DATABASE_TYPE=postgres go run main.go

Or with flags:

	go run main.go -p 3330 -t sqlite -d ballotbox.db

# Configuration

Settings:

  - DATABASE_URL (-d): Connection string (postgres URL or sqlite file path)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - PORT (-p): Server port (default: 3330)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (events, ballots)
  - router: Route definitions using Go 1.22+ routing
  - core: Event and ballot lifecycle rules, access control
  - store: SQL persistence behind a small interface
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - auth: Token generation and comparison
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
