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

type EmployeeHandler struct {
	svc *service.Services
	cfg cliparse.Config
}

func NewEmployeeHandler(svc *service.Services, cfg cliparse.Config) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, cfg: cfg}
}

// Create handles POST /api/v1/employees
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.svc.Users.CreateUser(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slog.Info("user created",
		"user_id", user.ID,
		"role", user.Role,
		"by", middleware.IdentityFromContext(r.Context()).Username,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.UserResponse{
		Username: user.Username,
		Groups:   user.Groups(),
	})
}
