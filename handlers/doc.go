// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the bolão API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: phone-number check and login/registration
  - PoolHandler: pool lifecycle (create with entries, list, get, delete)
  - EntryHandler: the claim/edit/cancel state machine
  - AdminHandler: admin gate check and generator preview

Handlers are created via constructor functions that accept *sql.DB and
Config:

	poolHandler := handlers.NewPoolHandler(db, cfg)

# Authentication Flow

Participants authenticate with a phone number:

	POST /auth/check → CheckUser (does this number exist?)
	POST /auth       → Authenticate (login or register, returns token)

The returned token goes into the Authorization header as a Bearer
token for entry operations.

# Entry Lifecycle

Each entry moves through open → claimed → claimed+edited and back to
open via cancel:

	POST   /entries/{id}/claim → Claim (open or own entry only)
	PUT    /entries/{id}       → Edit (owner only, 6 numbers in [1,60])
	DELETE /entries/{id}/claim → Cancel (owner only)

Claim uses a conditional update keyed on the open state, so concurrent
claims on the same entry resolve to exactly one owner. Cancel resets
the claim flags but keeps the last edited numbers.

# Pool Management

	POST   /pools           → CreatePool (entry set fixed at creation)
	GET    /pools           → ListPools
	GET    /pools/{slug}    → GetPool (resolves share slug)
	DELETE /pools/{slug}    → DeletePool (cascades to entries)
	GET    /pools/{id}/users → ListPoolUsers (claimed entries + owners)
	GET    /history         → ListPools (legacy alias)
*/
package handlers
