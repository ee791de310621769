// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/danielhkuo/lunch-decider/auth"
	"github.com/danielhkuo/lunch-decider/db"
	"github.com/danielhkuo/lunch-decider/models"
)

type RestaurantService struct {
	store Store
}

func NewRestaurantService(s Store) *RestaurantService {
	return &RestaurantService{store: s}
}

// CreateRestaurant registers a restaurant and generates its API key
func (s *RestaurantService) CreateRestaurant(ctx context.Context, name, description string) (models.Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return models.Restaurant{}, newError(ErrInvalidInput, "name is required (max 100 characters)")
	}

	r := models.Restaurant{
		ID:          auth.NewID(),
		Name:        name,
		Description: description,
		APIKey:      auth.GenerateAPIKey(),
	}
	if err := s.store.CreateRestaurant(ctx, &r); err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			return models.Restaurant{}, newError(ErrConflict, "Restaurant already exists.")
		}
		return models.Restaurant{}, err
	}
	return r, nil
}

// ListRestaurants returns every restaurant
func (s *RestaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.store.ListRestaurants(ctx)
}

// ListRestaurantsV2 returns restaurants with their menu count and a note that
// depends on the client's app version
func (s *RestaurantService) ListRestaurantsV2(ctx context.Context, appVersion string) ([]models.RestaurantV2, error) {
	restaurants, err := s.store.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.store.MenuCounts(ctx)
	if err != nil {
		return nil, err
	}

	info := "You have version 1.0"
	if appVersion == models.AppVersion2 {
		info = "New feature for version 2.0"
	}

	out := make([]models.RestaurantV2, len(restaurants))
	for i, r := range restaurants {
		out[i] = models.RestaurantV2{
			Restaurant:     r,
			MenuCount:      counts[r.ID],
			AdditionalInfo: info,
		}
	}
	return out, nil
}
