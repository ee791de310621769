// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The statements are valid for both PostgreSQL and SQLite.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Schema is the DDL for every table. Uniqueness rules live here, not in
// application code.
const Schema = `
-- Restaurants
CREATE TABLE IF NOT EXISTS restaurant (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    api_key TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Dishes
CREATE TABLE IF NOT EXISTS dish (
    id TEXT PRIMARY KEY,
    restaurant_id TEXT NOT NULL REFERENCES restaurant(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    price NUMERIC(6, 2) NOT NULL,
    UNIQUE (restaurant_id, name)
);

CREATE INDEX IF NOT EXISTS idx_dish_restaurant_id ON dish(restaurant_id);

-- Menus
CREATE TABLE IF NOT EXISTS menu (
    id TEXT PRIMARY KEY,
    restaurant_id TEXT NOT NULL REFERENCES restaurant(id) ON DELETE CASCADE,
    menu_date TEXT NOT NULL,
    name TEXT NOT NULL,
    UNIQUE (restaurant_id, menu_date, name)
);

CREATE INDEX IF NOT EXISTS idx_menu_date ON menu(menu_date);

-- Menu dishes
CREATE TABLE IF NOT EXISTS menu_dish (
    menu_id TEXT NOT NULL REFERENCES menu(id) ON DELETE CASCADE,
    dish_id TEXT NOT NULL REFERENCES dish(id) ON DELETE CASCADE,
    PRIMARY KEY (menu_id, dish_id)
);

CREATE INDEX IF NOT EXISTS idx_menu_dish_dish_id ON menu_dish(dish_id);

-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL CHECK (role IN ('Admin', 'Employee')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    menu_id TEXT NOT NULL REFERENCES menu(id) ON DELETE CASCADE,
    voted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (user_id, menu_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_menu_id ON vote(menu_id);
`
