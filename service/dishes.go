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

type DishService struct {
	store Store
}

func NewDishService(s Store) *DishService {
	return &DishService{store: s}
}

// ResolveOwnerForDishCreation returns the restaurant owning the identity's API
// key. It never writes.
func (s *DishService) ResolveOwnerForDishCreation(ctx context.Context, identity models.Identity) (models.Restaurant, error) {
	return resolveRestaurant(ctx, s.store, identity.APIKey, "Invalid API Key.")
}

// CreateDish adds a dish to the restaurant owning the identity's API key
func (s *DishService) CreateDish(ctx context.Context, identity models.Identity, name, description string, price models.Price) (models.Dish, error) {
	owner, err := s.ResolveOwnerForDishCreation(ctx, identity)
	if err != nil {
		return models.Dish{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return models.Dish{}, newError(ErrInvalidInput, "name is required (max 100 characters)")
	}
	if err := validatePrice(price); err != nil {
		return models.Dish{}, err
	}

	d := models.Dish{
		ID:           auth.NewID(),
		RestaurantID: owner.ID,
		Name:         name,
		Description:  description,
		Price:        price,
	}
	if err := s.store.CreateDish(ctx, &d); err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			return models.Dish{}, newError(ErrConflict, "A dish with this name already exists for this restaurant.")
		}
		return models.Dish{}, err
	}
	return d, nil
}

// ListDishes returns dishes, optionally for one restaurant
func (s *DishService) ListDishes(ctx context.Context, restaurantID string) ([]models.Dish, error) {
	return s.store.ListDishes(ctx, restaurantID)
}

// validatePrice enforces a non-negative amount of at most 6 digits with 2
// decimal places
func validatePrice(p models.Price) error {
	if p.IsNegative() {
		return newError(ErrInvalidInput, "price must not be negative")
	}
	if p.GreaterThan(models.MaxPrice) {
		return newError(ErrInvalidInput, "price must be at most 9999.99")
	}
	if !p.Equal(p.Round(2)) {
		return newError(ErrInvalidInput, "price must have at most 2 decimal places")
	}
	return nil
}
