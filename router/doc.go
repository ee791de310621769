// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to handlers using Go 1.22+ method patterns.

# Routes

	GET  /health                  health check
	GET  /api/v1/restaurants      list restaurants (Admin)
	POST /api/v1/restaurants      create restaurant, returns api_key (Admin)
	GET  /api/v2/restaurants      list with menu_count and additional_info (Admin)
	POST /api/v2/restaurants      create restaurant (Admin)
	GET  /api/v1/dishes           list dishes, ?restaurant= filter
	POST /api/v1/dishes           create dish (x-api-key)
	GET  /api/v1/menus            today's menus, ?restaurant= filter
	POST /api/v1/menus            assemble a menu (x-api-key)
	GET  /menu/current_day        today's menus (bearer token)
	POST /api/v1/votes            vote for one of today's menus (bearer token)
	GET  /results/current         today's tally per menu name (bearer token)
	POST /api/v1/employees        create a user (Admin)

Every API route is wrapped with middleware.WithLogging. The server wraps the
whole mux with middleware.CORS.
*/
package router
