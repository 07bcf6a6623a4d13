// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines wire types for the external race API and the
dashboard's own request and response bodies.

# External API Types

Read path (capitalized keys, exactly as GET /races returns them):

  - RaceRecord: ID, RaceName, RaceDate, RaceDistance, PercentBack

Write path (lower-camel keys):

  - CreateRaceRequest: raceName, raceDate, raceDistance, percentBack

Auth pass-through:

  - Credentials: username, password (POST /login, POST /register)
  - LoginResponse: token
  - ForgotPasswordRequest: email
  - ResetPasswordRequest: password

# Dashboard Types

Requests:

  - LoginRequest, RegisterRequest
  - SubmitRaceRequest: the race input form, times as typed
  - SortRequest: key
  - YearRequest: year (0 = all)

Responses:

  - TableResponse: races, sort
  - ChartResponse: races, years, selected_year, average_percent_back
  - SubmitRaceResponse, MessageResponse, SessionResponse
  - ErrorResponse: error, message

# Constants

Sort directions:

	SortAsc  = "asc"
	SortDesc = "desc"

Sortable fields use the read-path spelling:

	FieldRaceName, FieldRaceDate, FieldRaceDistance, FieldPercentBack, FieldID
*/
package models
