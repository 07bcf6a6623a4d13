// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the percent-back dashboard.

# Handler Types

Each handler is a struct built around the external race API:

  - AuthHandler: Login, registration, password reset and session status
  - RaceHandler: The race input form
  - TableHandler: Sortable race table with delete and export
  - ChartHandler: Percent-back chart with a year filter

Handlers take the API as an interface, so *apiclient.Client or a test
double both work:

	tableHandler := handlers.NewTableHandler(client)

# View State

TableHandler and ChartHandler each keep the races they last fetched and
the user's current sort or year. Every response is projected from that
snapshot by raceview.Project, so filters never stack:

	GET  /dashboard/chart       → fetch, snapshot sorted by date
	POST /dashboard/chart/year  → {year}, filter the snapshot
	POST /dashboard/chart/reset → all years again

The lock guarding the state is never held during an API call. When two
loads overlap, the last one to finish wins.

# Race Submission

	POST /dashboard/races → SubmitRace

Fields are checked and the two times validated with racetime.Validator
before anything is sent. Invalid input gets a 400 and makes no API call;
the percent back sent to the API is unrounded.

# Errors

API failures map to 502 with the view's message ("Failed to fetch races",
"Failed to create race", "Failed to delete race"). Deletion only updates
the table once the API confirms it.
*/
package handlers
