// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/lunch-decider/models"
)

// CreateRestaurant inserts a restaurant. ID and APIKey must be set.
func (s *Store) CreateRestaurant(ctx context.Context, r *models.Restaurant) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO restaurant (id, name, description, api_key, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.ID, r.Name, r.Description, r.APIKey, time.Now().UTC())
	if err != nil {
		return insertError("restaurant", err)
	}
	return nil
}

// ListRestaurants returns all restaurants ordered by name
func (s *Store) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, api_key
		FROM restaurant
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := []models.Restaurant{}
	for rows.Next() {
		var r models.Restaurant
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.APIKey); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

// RestaurantByAPIKey finds the restaurant owning an API key
func (s *Store) RestaurantByAPIKey(ctx context.Context, apiKey string) (models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, api_key
		FROM restaurant
		WHERE api_key = $1
	`, apiKey).Scan(&r.ID, &r.Name, &r.Description, &r.APIKey)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Restaurant{}, fmt.Errorf("restaurant: %w", ErrNotFound)
	}
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to query restaurant: %w", err)
	}
	return r, nil
}

// MenuCounts returns the number of menus per restaurant ID, all dates included
func (s *Store) MenuCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT restaurant_id, COUNT(*)
		FROM menu
		GROUP BY restaurant_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count menus: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var restaurantID string
		var count int
		if err := rows.Scan(&restaurantID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan menu count: %w", err)
		}
		counts[restaurantID] = count
	}
	return counts, rows.Err()
}
