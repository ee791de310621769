// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lunch-decider/cliparse"
	"github.com/danielhkuo/lunch-decider/middleware"
	"github.com/danielhkuo/lunch-decider/models"
	"github.com/danielhkuo/lunch-decider/service"
)

type RestaurantHandler struct {
	svc *service.Services
	cfg cliparse.Config
}

func NewRestaurantHandler(svc *service.Services, cfg cliparse.Config) *RestaurantHandler {
	return &RestaurantHandler{svc: svc, cfg: cfg}
}

// List handles GET /api/v1/restaurants
func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.svc.Restaurants.ListRestaurants(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, restaurants)
}

// ListV2 handles GET /api/v2/restaurants
func (h *RestaurantHandler) ListV2(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.svc.Restaurants.ListRestaurantsV2(r.Context(), middleware.AppVersion(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, restaurants)
}

// Create handles POST /api/v1/restaurants and POST /api/v2/restaurants.
// The response carries the generated API key; it is never listed again.
func (h *RestaurantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRestaurantRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	restaurant, err := h.svc.Restaurants.CreateRestaurant(r.Context(), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slog.Info("restaurant created", "restaurant_id", restaurant.ID, "name", restaurant.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRestaurantResponse{
		Restaurant: restaurant,
		APIKey:     restaurant.APIKey,
	})
}
