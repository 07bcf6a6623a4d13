// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apiclient is the HTTP client for the external race API.

# Endpoints

	GET    /races                    ListRaces      (bearer)
	POST   /races/create             CreateRace     (bearer)
	DELETE /races/delete/{id}        DeleteRace     (bearer)
	POST   /login                    Login
	POST   /register                 Register
	POST   /forgot-password          ForgotPassword
	POST   /reset-password/{token}   ResetPassword

Login stores the returned token through the credentials.Provider; Logout only
clears it.

# Errors

Every failure, whether transport or a non-2xx status, is an *APIError.
Callers do not distinguish status codes:

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		slog.Warn("api call failed", "op", apiErr.Op, "status", apiErr.StatusCode)
	}

Calls are never retried. The http.Client timeout is zero unless configured.
*/
package apiclient
