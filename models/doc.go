// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CheckUserRequest: whatsapp
  - AuthRequest: name, whatsapp
  - CreatePoolRequest: title, description, group_key, count, games
  - EditEntryRequest: numbers
  - AdminVerifyRequest: password

# Response Types

Types for JSON responses:

  - CheckUserResponse: exists, user
  - AuthResponse: token, user
  - DeletePoolResponse: success
  - AdminVerifyResponse: valid
  - PreviewResponse: games
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: participant identified by canonical phone key
  - Pool: a named collection of combinations with a share slug
  - Entry: one combination, claimable by one participant at a time
  - PoolWithEntries: pool plus its entry set and owners

# Number Sets

A combination is 6 integers in [1, 60], stored sorted ascending as JSON
text. ValidateNumbers, SortNumbers, EncodeNumbers, and DecodeNumbers
implement the storage codec and the edit validation rules.
*/
package models
