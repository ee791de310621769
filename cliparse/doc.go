// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file can be loaded first; existing environment variables win:

	_ = cliparse.LoadEnvFile(".env")

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: database connection string (required)
  - DatabaseType: sqlite (default) or postgres
  - JWTSecret: HS256 secret for bearer tokens (required)
  - JWTIssuer: expected token issuer (optional)
  - Timezone: IANA zone defining the current day (default: UTC)
  - AdminUsername, AdminPassword: optional admin seeded at start-up

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-tz           Timezone
	--jwt-secret  JWT signing secret
	--jwt-issuer  Expected JWT issuer

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	TIMEZONE      → -tz
	JWT_SECRET    → --jwt-secret
	JWT_ISSUER    → --jwt-issuer

ADMIN_USERNAME and ADMIN_PASSWORD are read from the environment only.
CLI flags take precedence over environment variables.

# Current Day

Menus, votes and results are scoped to the calendar date in the configured
timezone:

	today := cfg.Today() // "2006-01-02"
*/
package cliparse
