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

type DishHandler struct {
	svc *service.Services
	cfg cliparse.Config
}

func NewDishHandler(svc *service.Services, cfg cliparse.Config) *DishHandler {
	return &DishHandler{svc: svc, cfg: cfg}
}

// List handles GET /api/v1/dishes?restaurant=
func (h *DishHandler) List(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.svc.Dishes.ListDishes(r.Context(), r.URL.Query().Get("restaurant"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, dishes)
}

// Create handles POST /api/v1/dishes. The owning restaurant comes from the
// x-api-key header, never from the body.
func (h *DishHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	// Credential problems win over body problems
	if _, err := h.svc.Dishes.ResolveOwnerForDishCreation(r.Context(), identity); err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req models.CreateDishRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	dish, err := h.svc.Dishes.CreateDish(r.Context(), identity, req.Name, req.Description, *req.Price)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slog.Info("dish created", "dish_id", dish.ID, "restaurant_id", dish.RestaurantID)

	middleware.JSONResponse(w, http.StatusCreated, dish)
}
