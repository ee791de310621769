// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/lunch-decider/models"
	"github.com/danielhkuo/lunch-decider/store"
)

// Store is the persistence the services depend on. *store.Store implements it.
type Store interface {
	CreateRestaurant(ctx context.Context, r *models.Restaurant) error
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	RestaurantByAPIKey(ctx context.Context, apiKey string) (models.Restaurant, error)
	MenuCounts(ctx context.Context) (map[string]int, error)

	CreateDish(ctx context.Context, d *models.Dish) error
	ListDishes(ctx context.Context, restaurantID string) ([]models.Dish, error)
	DishesByIDs(ctx context.Context, restaurantID string, ids []string) ([]models.Dish, error)

	CreateMenu(ctx context.Context, m *models.Menu) error
	MenuForDate(ctx context.Context, id, date string) (models.Menu, error)
	ListMenus(ctx context.Context, date, restaurantID string) ([]models.Menu, error)

	CreateVote(ctx context.Context, v *models.Vote) error
	ResultsForDate(ctx context.Context, date string) ([]models.MenuResult, error)

	CreateUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
}

// Services bundles every service over one store
type Services struct {
	Restaurants *RestaurantService
	Dishes      *DishService
	Menus       *MenuService
	Votes       *VoteService
	Results     *ResultsService
	Users       *UserService
}

func New(s Store) *Services {
	return &Services{
		Restaurants: NewRestaurantService(s),
		Dishes:      NewDishService(s),
		Menus:       NewMenuService(s),
		Votes:       NewVoteService(s),
		Results:     NewResultsService(s),
		Users:       NewUserService(s),
	}
}

// resolveRestaurant maps an API key to its restaurant. notFound is the
// message reported for an unknown key.
func resolveRestaurant(ctx context.Context, s Store, apiKey, notFound string) (models.Restaurant, error) {
	if apiKey == "" {
		return models.Restaurant{}, newError(ErrMissingCredential,
			"x-api-key is required in header. The API administrator can give it to you")
	}

	restaurant, err := s.RestaurantByAPIKey(ctx, apiKey)
	if errors.Is(err, store.ErrNotFound) {
		return models.Restaurant{}, newError(ErrNotFound, notFound)
	}
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("resolve restaurant: %w", err)
	}
	return restaurant, nil
}
