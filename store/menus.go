// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/lunch-decider/models"
)

// CreateMenu inserts a menu and its dish associations in one transaction.
// On any failure nothing is written.
func (s *Store) CreateMenu(ctx context.Context, m *models.Menu) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO menu (id, restaurant_id, menu_date, name)
		VALUES ($1, $2, $3, $4)
	`, m.ID, m.RestaurantID, m.Date, m.Name)
	if err != nil {
		return insertError("menu", err)
	}

	for _, d := range m.Dishes {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO menu_dish (menu_id, dish_id)
			VALUES ($1, $2)
		`, m.ID, d.ID)
		if err != nil {
			return insertError("menu dish", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit menu: %w", err)
	}
	return nil
}

// MenuForDate returns the menu with the given id if it is dated date
func (s *Store) MenuForDate(ctx context.Context, id, date string) (models.Menu, error) {
	var m models.Menu
	err := s.db.QueryRowContext(ctx, `
		SELECT id, restaurant_id, menu_date, name
		FROM menu
		WHERE id = $1 AND menu_date = $2
	`, id, date).Scan(&m.ID, &m.RestaurantID, &m.Date, &m.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Menu{}, fmt.Errorf("menu: %w", ErrNotFound)
	}
	if err != nil {
		return models.Menu{}, fmt.Errorf("failed to query menu: %w", err)
	}

	menus := []models.Menu{m}
	if err := s.loadDishes(ctx, menus); err != nil {
		return models.Menu{}, err
	}
	return menus[0], nil
}

// ListMenus returns menus dated date with their dishes, optionally limited to
// one restaurant
func (s *Store) ListMenus(ctx context.Context, date, restaurantID string) ([]models.Menu, error) {
	query := `
		SELECT id, restaurant_id, menu_date, name
		FROM menu
		WHERE menu_date = $1
	`
	args := []any{date}
	if restaurantID != "" {
		query += ` AND restaurant_id = $2`
		args = append(args, restaurantID)
	}
	query += ` ORDER BY name, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menus: %w", err)
	}
	defer rows.Close()

	menus := []models.Menu{}
	for rows.Next() {
		var m models.Menu
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.Date, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		menus = append(menus, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read menus: %w", err)
	}
	rows.Close()

	if err := s.loadDishes(ctx, menus); err != nil {
		return nil, err
	}
	return menus, nil
}

// loadDishes fills the Dishes of each menu with one query
func (s *Store) loadDishes(ctx context.Context, menus []models.Menu) error {
	if len(menus) == 0 {
		return nil
	}

	ids := make([]string, len(menus))
	index := make(map[string]int, len(menus))
	for i := range menus {
		ids[i] = menus[i].ID
		index[menus[i].ID] = i
		menus[i].Dishes = []models.Dish{}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT md.menu_id, d.id, d.restaurant_id, d.name, d.description, d.price
		FROM menu_dish md
		JOIN dish d ON d.id = md.dish_id
		WHERE md.menu_id IN (`+placeholders(1, len(ids))+`)
		ORDER BY d.name, d.id
	`, stringArgs(ids)...)
	if err != nil {
		return fmt.Errorf("failed to query menu dishes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var menuID string
		var d models.Dish
		if err := rows.Scan(&menuID, &d.ID, &d.RestaurantID, &d.Name, &d.Description, &d.Price); err != nil {
			return fmt.Errorf("failed to scan menu dish: %w", err)
		}
		i := index[menuID]
		menus[i].Dishes = append(menus[i].Dishes, d)
	}
	return rows.Err()
}
