// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3330)
  - DatabaseURL: Postgres DSN or sqlite file path (required)
  - DatabaseType: "sqlite" (default) or "postgres"

# CLI Flags

	-p    Server port
	-d    Database URL
	-t    Database type

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t

CLI flags take precedence over environment variables. main loads a .env
file (via godotenv) before parsing, so a local .env can supply any of the
above for development.
*/
package cliparse
