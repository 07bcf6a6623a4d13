// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package credentials stores the session token the external API hands out at
login.

A Provider wraps any Store and reads or writes the "token" key:

	p := credentials.NewProvider(credentials.NewSQLStore(conn))
	token, err := p.Token(ctx) // "" when logged out

The token is set after a successful login, read before every race call, and
cleared on logout. MemoryStore is handy in tests; SQLStore survives restarts.
*/
package credentials
