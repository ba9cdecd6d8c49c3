// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides bearer tokens, share slugs, and entity ids.

# Tokens

Tokens are HS256-signed JWTs carrying {user_id, phone_key} with a 7-day
validity window:

	token, err := auth.IssueToken(userID, phoneKey, secret, auth.TokenTTL)
	userID, err := auth.VerifyToken(token, secret)

Handlers extract the token straight from the request:

	userID, err := auth.UserIDFromRequest(r, secret)

Verification failures map to ErrNoToken, ErrInvalidToken, or
ErrExpiredToken; all three are surfaced to clients as 401. There is no
revocation list and no rotation - this is a minimal bearer scheme.

# Share Slugs

A pool is addressed externally by a random slug appended to the base
URL:

	slug, err := auth.GenerateShareSlug() // 8 random bytes, hex

# IDs

Entity primary keys are UUIDs:

	id := auth.NewID()
*/
package auth
