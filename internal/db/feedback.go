package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateFeedback stores a rating with an optional comment
func (db *DB) CreateFeedback(ctx context.Context, userID uuid.UUID, rating int, comment, category string) (*Feedback, error) {
	var f Feedback
	err := db.pool.QueryRow(ctx,
		`INSERT INTO feedback (user_id, rating, comment, category)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, rating, comment, category, created_at`,
		userID, rating, comment, category,
	).Scan(&f.ID, &f.UserID, &f.Rating, &f.Comment, &f.Category, &f.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return &f, nil
}

// GetFeedbackStats aggregates total count, average rating, and per-category
// counts over all feedback
func (db *DB) GetFeedbackStats(ctx context.Context) (*FeedbackStats, error) {
	stats := &FeedbackStats{ByCategory: map[string]int{}}

	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(rating), 0) FROM feedback`,
	).Scan(&stats.Total, &stats.AverageRating)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback stats: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT category, COUNT(*) FROM feedback GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan feedback category: %w", err)
		}
		stats.ByCategory[category] = count
	}
	return stats, nil
}
