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
	"github.com/danielhkuo/lunch-decider/store"
)

type UserService struct {
	store Store
}

func NewUserService(s Store) *UserService {
	return &UserService{store: s}
}

// CreateUser registers an Admin or Employee with a bcrypt-hashed password
func (s *UserService) CreateUser(ctx context.Context, username, password, role string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, newError(ErrInvalidInput, "username is required")
	}
	if password == "" {
		return models.User{}, newError(ErrInvalidInput, "password is required")
	}
	if role != models.RoleAdmin && role != models.RoleEmployee {
		return models.User{}, newError(ErrInvalidInput, "role must be Admin or Employee")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:           auth.NewID(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateUser(ctx, &u); err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			return models.User{}, newError(ErrConflict, "A user with that username already exists.")
		}
		return models.User{}, err
	}
	return u, nil
}

// EnsureUser creates the user unless the username is already taken.
// It reports whether a user was created.
func (s *UserService) EnsureUser(ctx context.Context, username, password, role string) (bool, error) {
	_, err := s.store.UserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	_, err = s.CreateUser(ctx, username, password, role)
	if errors.Is(err, ErrConflict) {
		// Created concurrently by another instance
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Identify builds the identity of an authenticated user
func (s *UserService) Identify(ctx context.Context, userID string) (models.Identity, error) {
	u, err := s.store.UserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Identity{}, newError(ErrNotFound, "user not found")
	}
	if err != nil {
		return models.Identity{}, err
	}
	return models.Identity{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	}, nil
}
