// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/lunch-decider/cliparse"
	"github.com/danielhkuo/lunch-decider/handlers"
	"github.com/danielhkuo/lunch-decider/middleware"
	"github.com/danielhkuo/lunch-decider/service"
	"github.com/danielhkuo/lunch-decider/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	return NewRouterWithServices(service.New(store.New(db)), cfg)
}

// NewRouterWithServices builds the API over already constructed services
func NewRouterWithServices(svc *service.Services, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()
	authn := middleware.NewAuthenticator(svc.Users, cfg.JWTSecret, cfg.JWTIssuer)
	log := middleware.WithLogging

	// Initialize handlers
	restaurantHandler := handlers.NewRestaurantHandler(svc, cfg)
	dishHandler := handlers.NewDishHandler(svc, cfg)
	menuHandler := handlers.NewMenuHandler(svc, cfg)
	voteHandler := handlers.NewVoteHandler(svc, cfg)
	resultsHandler := handlers.NewResultsHandler(svc, cfg)
	employeeHandler := handlers.NewEmployeeHandler(svc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Restaurants (staff only)
	mux.HandleFunc("GET /api/v1/restaurants", log(authn.RequireAdmin(restaurantHandler.List)))
	mux.HandleFunc("POST /api/v1/restaurants", log(authn.RequireAdmin(restaurantHandler.Create)))
	mux.HandleFunc("GET /api/v2/restaurants", log(authn.RequireAdmin(middleware.WithAppVersion(restaurantHandler.ListV2))))
	mux.HandleFunc("POST /api/v2/restaurants", log(authn.RequireAdmin(restaurantHandler.Create)))

	// Dishes and menus (writes authenticated by restaurant API key)
	mux.HandleFunc("GET /api/v1/dishes", log(dishHandler.List))
	mux.HandleFunc("POST /api/v1/dishes", log(authn.WithIdentity(dishHandler.Create)))
	mux.HandleFunc("GET /api/v1/menus", log(menuHandler.List))
	mux.HandleFunc("POST /api/v1/menus", log(authn.WithIdentity(menuHandler.Create)))
	mux.HandleFunc("GET /menu/current_day", log(authn.RequireUser(menuHandler.CurrentDay)))

	// Voting and results (employees)
	mux.HandleFunc("POST /api/v1/votes", log(authn.RequireUser(voteHandler.Create)))
	mux.HandleFunc("GET /results/current", log(authn.RequireUser(resultsHandler.Current)))

	// User management
	mux.HandleFunc("POST /api/v1/employees", log(authn.RequireAdmin(employeeHandler.Create)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lunch-decider API"))
	})

	return mux
}
