// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - APIBaseURL: External race API base URL (required)
  - APITimeout: Per-request timeout for API calls (default: none)
  - DatabaseURL: Credential store location (default: percentback.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - StrictTimes: Validate each race time on its own instead of the
    zero-result rule

# CLI Flags

	-p             Server port
	-api           External API base URL
	-timeout       API timeout, e.g. 10s
	-d             Database URL
	-t             Database type
	-strict-times  Strict race time validation

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	API_BASE_URL  → -api
	API_TIMEOUT   → -timeout
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	STRICT_TIMES  → -strict-times

CLI flags take precedence over environment variables. A .env file is loaded
by main before ParseFlags runs.

# Validation

ParseFlags returns an error if API_BASE_URL is missing or a numeric,
duration or boolean variable does not parse.
*/
package cliparse
