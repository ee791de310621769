// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/lunch-decider/auth"
	"github.com/danielhkuo/lunch-decider/db"
	"github.com/danielhkuo/lunch-decider/models"
	"github.com/danielhkuo/lunch-decider/store"
)

type VoteService struct {
	store Store
}

func NewVoteService(s Store) *VoteService {
	return &VoteService{store: s}
}

// CastVote records the identity's vote for a menu dated today and returns the
// menu. A repeated vote fails with ErrConflict; the store's unique constraint
// decides, so concurrent duplicates produce exactly one vote.
func (s *VoteService) CastVote(ctx context.Context, identity models.Identity, menuID, today string) (models.Menu, error) {
	if menuID == "" {
		return models.Menu{}, newError(ErrInvalidInput, "Menu ID is required.")
	}
	if !identity.Authenticated() {
		return models.Menu{}, newError(ErrMissingCredential, "Authentication required.")
	}

	menu, err := s.store.MenuForDate(ctx, menuID, today)
	if errors.Is(err, store.ErrNotFound) {
		return models.Menu{}, newError(ErrNotFound, "Menu not found or not available today.")
	}
	if err != nil {
		return models.Menu{}, err
	}

	vote := models.Vote{
		ID:      auth.NewID(),
		UserID:  identity.UserID,
		MenuID:  menu.ID,
		VotedAt: time.Now().UTC(),
	}
	if err := s.store.CreateVote(ctx, &vote); err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			return models.Menu{}, newError(ErrConflict, "You have already voted for this menu.")
		}
		return models.Menu{}, err
	}
	return menu, nil
}

type ResultsService struct {
	store Store
}

func NewResultsService(s Store) *ResultsService {
	return &ResultsService{store: s}
}

// CurrentDayResults tallies today's votes per menu name, most votes first and
// ties ordered by name. Menus sharing a name on the same day share a bucket.
func (s *ResultsService) CurrentDayResults(ctx context.Context, today string) ([]models.MenuResult, error) {
	return s.store.ResultsForDate(ctx, today)
}
