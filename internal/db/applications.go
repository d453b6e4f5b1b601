package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned when a uniqueness constraint rejects an insert.
var ErrDuplicate = errors.New("already exists")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateApplication records a user's application to a job
func (db *DB) CreateApplication(ctx context.Context, userID, jobID uuid.UUID) (*Application, error) {
	var a Application
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (user_id, job_id)
		 VALUES ($1, $2)
		 RETURNING id, user_id, job_id, status, applied_at, updated_at`,
		userID, jobID,
	).Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &a, nil
}

// ListApplications retrieves a user's applications with job summaries,
// newest first
func (db *DB) ListApplications(ctx context.Context, userID uuid.UUID) ([]ApplicationWithJob, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.user_id, a.job_id, a.status, a.applied_at, a.updated_at,
			j.title, j.company, j.location, j.description, j.apply_url
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.user_id = $1
		 ORDER BY a.applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []ApplicationWithJob
	for rows.Next() {
		var a ApplicationWithJob
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.AppliedAt,
			&a.UpdatedAt, &a.JobTitle, &a.JobCompany, &a.JobLocation,
			&a.JobDescription, &a.ApplyURL); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, nil
}

// GetApplicationByUserAndJob retrieves the application a user already filed
// for a job, returning nil when there is none
func (db *DB) GetApplicationByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*Application, error) {
	var a Application
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_id, status, applied_at, updated_at
		 FROM applications WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	).Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &a, nil
}

// GetApplication retrieves an application by ID, returning nil when not found
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*Application, error) {
	var a Application
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_id, status, applied_at, updated_at
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &a, nil
}
