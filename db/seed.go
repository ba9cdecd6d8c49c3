// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type seedUser struct {
	name     string
	phoneKey string
}

// The original participant list shipped with the application.
var seedUsers = []seedUser{
	{"Fernando", "5512981968688"},
	{"Marceline", "5519984241406"},
	{"Sérgio", "5512981605424"},
	{"Sheila", "5512991520844"},
	{"Vitor", "5511948780146"},
	{"Vinicius", "5512981879995"},
	{"Lucas", "5512982455955"},
	{"Paulo", "5511910806055"},
	{"Marcia", "5512982770616"},
}

// SeedUsers inserts the initial user list, skipping any phone key that
// already exists. Safe to call multiple times.
func SeedUsers(db *sql.DB) error {
	for _, u := range seedUsers {
		var exists bool
		err := db.QueryRow(`
			SELECT EXISTS(SELECT 1 FROM app_user WHERE phone_key = $1)
		`, u.phoneKey).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check seed user %s: %w", u.name, err)
		}
		if exists {
			continue
		}

		_, err = db.Exec(`
			INSERT INTO app_user (id, name, phone_key, created_at)
			VALUES ($1, $2, $3, $4)
		`, uuid.NewString(), u.name, u.phoneKey, time.Now())
		if err != nil {
			return fmt.Errorf("failed to insert seed user %s: %w", u.name, err)
		}

		slog.Info("seed user created", "name", u.name)
	}

	return nil
}
