// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the lunch decider API.

# Handler Types

Each handler is a struct holding the services and config:

  - RestaurantHandler: restaurant listing (v1 and v2) and creation

  - DishHandler: dish listing and creation by API key

  - MenuHandler: today's menus and menu assembly by API key

  - VoteHandler: casting a vote for one of today's menus

  - ResultsHandler: today's vote tally per menu name

  - EmployeeHandler: user creation by admins

    voteHandler := handlers.NewVoteHandler(svc, cfg)

Handlers read the caller from middleware.IdentityFromContext and leave
authorization decisions to the router's middleware chain and the services.

# Errors

Service errors map onto status codes:

	service.ErrMissingCredential → 400
	service.ErrInvalidInput      → 400
	service.ErrNotFound          → 404
	service.ErrConflict          → 409
	anything else                → 500 (logged)

Every error body is {"error": "<status text>", "message": "<detail>"}.

# Current Day

"Today" is computed by cliparse.Config.Today in the configured timezone, so
votes and results always agree on the date.
*/
package handlers
