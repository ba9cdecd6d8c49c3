// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: server listen port (default: 3333)
  - DatabaseURL: sqlite file or postgres connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - JWTSecret: token signing secret (required)
  - AdminPassword: admin gate password (default: "admin123")
  - BaseURL: public base URL used in share links
  - Seed: insert the initial user list on startup

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	BASE_URL       → -base-url
	JWT_SECRET     → -jwt-secret
	ADMIN_PASSWORD → -admin-password
	SEED           → -seed

CLI flags take precedence over environment variables. A .env file is
loaded by main before parsing, so either mechanism works in dev.
*/
package cliparse
