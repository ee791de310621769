// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/danielhkuo/lunch-decider/auth"
	"github.com/danielhkuo/lunch-decider/db"
	"github.com/danielhkuo/lunch-decider/models"
)

type MenuService struct {
	store Store
}

func NewMenuService(s Store) *MenuService {
	return &MenuService{store: s}
}

// AssembleMenu builds a menu for the restaurant owning the identity's API key
// from dishes of that same restaurant. The menu and its dish set are written
// atomically.
func (s *MenuService) AssembleMenu(ctx context.Context, identity models.Identity, dishIDs []string, date, name string) (models.Menu, error) {
	if identity.APIKey == "" {
		return models.Menu{}, newError(ErrMissingCredential,
			"x-api-key is required in header. The API administrator can give it to you")
	}
	if len(dishIDs) == 0 {
		return models.Menu{}, newError(ErrInvalidInput, "At least one dish is required.")
	}

	restaurant, err := resolveRestaurant(ctx, s.store, identity.APIKey, "Restaurant not found")
	if err != nil {
		return models.Menu{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" || len(name) > 50 {
		return models.Menu{}, newError(ErrInvalidInput, "name is required (max 50 characters)")
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return models.Menu{}, newError(ErrInvalidInput, "date must be formatted as YYYY-MM-DD")
	}

	// Duplicated ids shrink the resolved set, so they fail the count check too
	dishes, err := s.store.DishesByIDs(ctx, restaurant.ID, dishIDs)
	if err != nil {
		return models.Menu{}, err
	}
	if len(dishes) != len(dishIDs) {
		return models.Menu{}, newError(ErrInvalidInput, "One or more dishes do not belong to this restaurant.")
	}

	menu := models.Menu{
		ID:           auth.NewID(),
		RestaurantID: restaurant.ID,
		Name:         name,
		Date:         date,
		Dishes:       dishes,
	}
	if err := s.store.CreateMenu(ctx, &menu); err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			return models.Menu{}, newError(ErrConflict, "A menu with this name already exists for this restaurant and date.")
		}
		return models.Menu{}, err
	}
	return menu, nil
}

// ListMenus returns the menus dated today, optionally for one restaurant
func (s *MenuService) ListMenus(ctx context.Context, today, restaurantID string) ([]models.Menu, error) {
	return s.store.ListMenus(ctx, today, restaurantID)
}
