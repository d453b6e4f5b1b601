package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveJob bookmarks a job for a user
func (db *DB) SaveJob(ctx context.Context, userID, jobID uuid.UUID) (*SavedJob, error) {
	var s SavedJob
	err := db.pool.QueryRow(ctx,
		`INSERT INTO saved_jobs (user_id, job_id)
		 VALUES ($1, $2)
		 RETURNING id, user_id, job_id, saved_at`,
		userID, jobID,
	).Scan(&s.ID, &s.UserID, &s.JobID, &s.SavedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	return &s, nil
}

// GetSavedJobByUserAndJob retrieves a user's existing bookmark for a job,
// returning nil when there is none
func (db *DB) GetSavedJobByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*SavedJob, error) {
	var s SavedJob
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_id, saved_at
		 FROM saved_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	).Scan(&s.ID, &s.UserID, &s.JobID, &s.SavedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get saved job: %w", err)
	}
	return &s, nil
}

// ListSavedJobs retrieves a user's bookmarked jobs, newest first
func (db *DB) ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]SavedJobWithJob, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT s.id, s.user_id, s.job_id, s.saved_at,
			j.title, j.company, j.location, j.apply_url
		 FROM saved_jobs s
		 JOIN jobs j ON j.id = s.job_id
		 WHERE s.user_id = $1
		 ORDER BY s.saved_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}
	defer rows.Close()

	var saved []SavedJobWithJob
	for rows.Next() {
		var s SavedJobWithJob
		if err := rows.Scan(&s.ID, &s.UserID, &s.JobID, &s.SavedAt,
			&s.JobTitle, &s.JobCompany, &s.JobLocation, &s.ApplyURL); err != nil {
			return nil, fmt.Errorf("failed to scan saved job: %w", err)
		}
		saved = append(saved, s)
	}
	return saved, nil
}

// DeleteSavedJob removes a bookmark by its ID, scoped to its owner
func (db *DB) DeleteSavedJob(ctx context.Context, id, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM saved_jobs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete saved job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("saved job not found: %s", id)
	}
	return nil
}
