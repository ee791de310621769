// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the lunch decider API server.

Restaurants publish dated menus built from their own dishes, and employees
vote for one of today's menus. Results are tallied per menu name.

# Starting the Server

The server reads a .env file, environment variables or CLI flags:

	JWT_SECRET=... DATABASE_URL=file:lunch.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -jwt-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite DSN or PostgreSQL connection string
  - JWT_SECRET (-jwt-secret): HS256 secret shared with the token issuer

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - TIMEZONE (-tz): IANA zone defining the current day (default: UTC)
  - JWT_ISSUER (-jwt-issuer): required iss claim
  - ADMIN_USERNAME, ADMIN_PASSWORD: Admin user created at start-up

# Architecture

  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: identity resolution, CORS, logging, JSON and validation helpers
  - service: domain operations and the error taxonomy
  - store: SQL persistence
  - models: domain, request and response types
  - auth: JWT verification, bcrypt, ID and API key generation
  - db: connection setup, schema and constraint classification
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
