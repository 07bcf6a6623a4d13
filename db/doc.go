// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the dashboard's local database and creates its schema.

Race data never lives here; the external API owns it. The local database only
backs the credential store (the session token between restarts).

# Opening

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Two drivers are registered:

  - sqlite: modernc.org/sqlite, URL is a file path (default percentback.db)
  - postgres: github.com/lib/pq, URL is a connection string

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv_store: name (primary key), value, updated_at
*/
package db
