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

type MenuHandler struct {
	svc *service.Services
	cfg cliparse.Config
}

func NewMenuHandler(svc *service.Services, cfg cliparse.Config) *MenuHandler {
	return &MenuHandler{svc: svc, cfg: cfg}
}

// List handles GET /api/v1/menus?restaurant= and returns today's menus
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	h.listToday(w, r, r.URL.Query().Get("restaurant"))
}

// CurrentDay handles GET /menu/current_day
func (h *MenuHandler) CurrentDay(w http.ResponseWriter, r *http.Request) {
	h.listToday(w, r, "")
}

func (h *MenuHandler) listToday(w http.ResponseWriter, r *http.Request, restaurantID string) {
	menus, err := h.svc.Menus.ListMenus(r.Context(), h.cfg.Today(), restaurantID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, menus)
}

// Create handles POST /api/v1/menus
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMenuRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The service checks credentials and dishes before the name and date
	menu, err := h.svc.Menus.AssembleMenu(r.Context(), middleware.IdentityFromContext(r.Context()),
		req.DishIDs, req.Date, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slog.Info("menu assembled",
		"menu_id", menu.ID,
		"restaurant_id", menu.RestaurantID,
		"date", menu.Date,
		"dishes", len(menu.Dishes),
	)

	middleware.JSONResponse(w, http.StatusCreated, menu)
}
