// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles the bearer token issued by the external race API.

# Bearer Headers

Every race call carries the stored token:

	req.Header.Set("Authorization", auth.BearerHeader(token))

ParseBearer does the reverse; testutil.FakeAPI uses it to record the token
each API call carried.

# Expiry

The token is treated as opaque for authorization, but when it is a JWT its
exp claim is read (unverified) to report session status:

	exp, err := auth.TokenExpiry(token)
	if auth.Expired(token, time.Now()) {
		// prompt for login again
	}

Tokens that are not JWTs, or carry no exp, return ErrInvalidToken or
ErrNoExpiry and are never considered expired.
*/
package auth
