// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/lunch-decider/models"
)

// CreateDish inserts a dish. A duplicate (restaurant, name) is rejected by the
// database and reported as db.ErrUniqueViolation.
func (s *Store) CreateDish(ctx context.Context, d *models.Dish) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO dish (id, restaurant_id, name, description, price)
		VALUES ($1, $2, $3, $4, $5)
	`, d.ID, d.RestaurantID, d.Name, d.Description, d.Price)
	if err != nil {
		return insertError("dish", err)
	}
	return nil
}

// ListDishes returns dishes, optionally limited to one restaurant
func (s *Store) ListDishes(ctx context.Context, restaurantID string) ([]models.Dish, error) {
	query := `
		SELECT id, restaurant_id, name, description, price
		FROM dish
	`
	var args []any
	if restaurantID != "" {
		query += ` WHERE restaurant_id = $1`
		args = append(args, restaurantID)
	}
	query += ` ORDER BY name, id`

	return s.queryDishes(ctx, s.db, query, args...)
}

// DishesByIDs returns the dishes among ids that belong to the restaurant.
// Unknown ids and dishes of other restaurants are silently omitted.
func (s *Store) DishesByIDs(ctx context.Context, restaurantID string, ids []string) ([]models.Dish, error) {
	if len(ids) == 0 {
		return []models.Dish{}, nil
	}

	query := `
		SELECT id, restaurant_id, name, description, price
		FROM dish
		WHERE restaurant_id = $1 AND id IN (` + placeholders(2, len(ids)) + `)
		ORDER BY name, id
	`
	args := append([]any{restaurantID}, stringArgs(ids)...)

	return s.queryDishes(ctx, s.db, query, args...)
}

func (s *Store) queryDishes(ctx context.Context, q queryer, query string, args ...any) ([]models.Dish, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	dishes := []models.Dish{}
	for rows.Next() {
		var d models.Dish
		if err := rows.Scan(&d.ID, &d.RestaurantID, &d.Name, &d.Description, &d.Price); err != nil {
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}
