// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The DDL is portable between sqlite and postgres: no
database-specific default expressions, timestamps written by the
application, number sets stored as JSON text.

# Tables

  - app_user: participants, keyed by canonical phone number
  - pool: pool metadata and share slug
  - entry: one combination per row with claim state

# Relationships

	pool 1──* entry
	app_user 1──* entry (via owner_user_id, nullable)

Pool deletion removes its entries; users are never deleted by normal
flow.

# Seeding

SeedUsers inserts the original participant list, skipping phone keys
that already exist:

	if cfg.Seed {
		if err := db.SeedUsers(conn); err != nil { ... }
	}
*/
package db
