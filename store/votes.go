// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/lunch-decider/models"
)

// CreateVote inserts a vote. There is no existence check: a second vote for
// the same (user, menu) is rejected by the UNIQUE constraint and reported as
// db.ErrUniqueViolation, which holds under concurrent inserts.
func (s *Store) CreateVote(ctx context.Context, v *models.Vote) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vote (id, user_id, menu_id, voted_at)
		VALUES ($1, $2, $3, $4)
	`, v.ID, v.UserID, v.MenuID, v.VotedAt)
	if err != nil {
		return insertError("vote", err)
	}
	return nil
}

// CountVotes returns the number of votes for a menu
func (s *Store) CountVotes(ctx context.Context, menuID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM vote WHERE menu_id = $1
	`, menuID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

// ResultsForDate counts votes per menu name for menus dated date, most votes
// first. Equal counts are ordered by menu name.
func (s *Store) ResultsForDate(ctx context.Context, date string) ([]models.MenuResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.name, COUNT(v.id) AS total_votes
		FROM vote v
		JOIN menu m ON m.id = v.menu_id
		WHERE m.menu_date = $1
		GROUP BY m.name
		ORDER BY total_votes DESC, m.name ASC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := []models.MenuResult{}
	for rows.Next() {
		var r models.MenuResult
		if err := rows.Scan(&r.MenuName, &r.TotalVotes); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
