// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lunch-decider/cliparse"
	"github.com/danielhkuo/lunch-decider/middleware"
	"github.com/danielhkuo/lunch-decider/models"
	"github.com/danielhkuo/lunch-decider/service"
)

type VoteHandler struct {
	svc *service.Services
	cfg cliparse.Config
}

func NewVoteHandler(svc *service.Services, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{svc: svc, cfg: cfg}
}

// Create handles POST /api/v1/votes
func (h *VoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity := middleware.IdentityFromContext(r.Context())
	menu, err := h.svc.Votes.CastVote(r.Context(), identity, req.Menu, h.cfg.Today())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slog.Info("vote cast", "menu_id", menu.ID, "user_id", identity.UserID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateVoteResponse{
		Message: fmt.Sprintf("Voted for %s successfully.", menu.Name),
	})
}

type ResultsHandler struct {
	svc *service.Services
	cfg cliparse.Config
}

func NewResultsHandler(svc *service.Services, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{svc: svc, cfg: cfg}
}

// Current handles GET /results/current
func (h *ResultsHandler) Current(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.Results.CurrentDayResults(r.Context(), h.cfg.Today())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, results)
}
