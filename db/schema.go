// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL avoids database-specific default expressions so the same
// schema runs on sqlite and postgres; timestamps are always written by
// the application.
const schema = `
-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    phone_key TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_app_user_phone_key ON app_user(phone_key);

-- Pools
CREATE TABLE IF NOT EXISTS pool (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    share_slug TEXT NOT NULL UNIQUE,
    group_key TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_pool_share_slug ON pool(share_slug);
CREATE INDEX IF NOT EXISTS idx_pool_group_key ON pool(group_key);

-- Entries
CREATE TABLE IF NOT EXISTS entry (
    id TEXT PRIMARY KEY,
    pool_id TEXT NOT NULL REFERENCES pool(id) ON DELETE CASCADE,
    numbers TEXT NOT NULL,
    claimed BOOLEAN NOT NULL DEFAULT FALSE,
    edited BOOLEAN NOT NULL DEFAULT FALSE,
    owner_user_id TEXT REFERENCES app_user(id),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entry_pool_id ON entry(pool_id);
CREATE INDEX IF NOT EXISTS idx_entry_owner ON entry(owner_user_id);
`
