// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the bolão API server.

A bolão is a collaborative lottery pool: an administrator creates a
pool with a fixed set of number combinations, participants authenticate
with a phone number and claim one combination each, and past pools stay
viewable as history.

# Starting the Server

The server reads environment variables (optionally from a .env file)
or CLI flags:

	DATABASE_URL=file:bolao.db JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3333 -d "file:bolao.db" -jwt-secret "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file or postgres connection string
  - JWT_SECRET (-jwt-secret): token signing secret

Optional settings:

  - PORT (-p): server port (default: 3333)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - BASE_URL (-base-url): public base URL for share links
  - ADMIN_PASSWORD (-admin-password): admin gate password
  - SEED (-seed): insert the initial user list on startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, pools, entries, admin)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types and the number-set codec
  - auth: bearer tokens, share slugs, entity ids
  - phone: phone number normalization and display formatting
  - generator: weighted-random number generation
  - db: schema creation and seeding
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
