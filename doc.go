// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the percent-back dashboard.

Percent back is how far a runner finished behind the winner, as a percentage
of the winning time. The dashboard records races through an external race
API and shows them as a sortable table and a chart filtered by year.

# Starting the Server

The server needs the external API's address, from the environment, a .env
file, or a flag:

	API_BASE_URL=http://localhost:8080 go run .

Or with flags:

	go run . -p 3318 -api http://localhost:8080 -d percentback.db

# Configuration

Required settings:

  - API_BASE_URL (-api): External race API

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d), DATABASE_TYPE (-t): Where the session token is kept
    (default: sqlite file percentback.db)
  - API_TIMEOUT (-timeout): Per-call timeout (default: none)
  - STRICT_TIMES (-strict-times): Validate race times individually

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: Dashboard views (auth, race input, table, chart)
  - router: Route definitions using Go 1.22+ routing
  - apiclient: External race API client
  - racetime: Race time parsing and percent-back calculation
  - raceview: Year filter, average and sorting over fetched races
  - render: Text, spreadsheet and chart exports
  - credentials, db: Session token storage
  - auth: Bearer headers and token expiry
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
