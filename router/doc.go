// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the percent-back dashboard.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(client, creds, cfg)

# Endpoints

Health:

	GET /health

Account (passed through to the race API):

	POST /login                  - Log in and store the token
	POST /register               - Register with an email address
	POST /forgot-password        - Request a reset link
	POST /reset-password/{token} - Set a new password
	POST /logout                 - Forget the token
	GET  /session                - Token status and expiry

Race input:

	POST /dashboard/races - Validate times and create a race

Race table:

	GET    /dashboard/table              - Fetch, date descending
	POST   /dashboard/table/sort         - Toggle sort on a field
	DELETE /dashboard/table/races/{id}   - Delete a race
	GET    /dashboard/table/export       - ?format=text or xlsx

Race chart:

	GET  /dashboard/chart       - Fetch, years and average
	POST /dashboard/chart/year  - Filter to a year
	POST /dashboard/chart/reset - Clear the filter
	GET  /dashboard/chart.png   - Line chart image

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(api, creds)
	raceHandler := handlers.NewRaceHandler(api, racetime.NewValidator(cfg.StrictTimes))
	tableHandler := handlers.NewTableHandler(api)
	chartHandler := handlers.NewChartHandler(api)
*/
package router
