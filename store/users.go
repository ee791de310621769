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

// CreateUser inserts a user. Usernames are unique.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_user (id, username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Username, u.PasswordHash, u.Role, u.CreatedAt)
	if err != nil {
		return insertError("user", err)
	}
	return nil
}

// UserByID loads a user by id
func (s *Store) UserByID(ctx context.Context, id string) (models.User, error) {
	return s.queryUser(ctx, `
		SELECT id, username, password_hash, role
		FROM app_user
		WHERE id = $1
	`, id)
}

// UserByUsername loads a user by username
func (s *Store) UserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.queryUser(ctx, `
		SELECT id, username, password_hash, role
		FROM app_user
		WHERE username = $1
	`, username)
}

func (s *Store) queryUser(ctx context.Context, query string, arg string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("user: %w", ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}
