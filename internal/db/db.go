// Package db provides PostgreSQL persistence for users, jobs, applications,
// saved jobs, and feedback.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT UNIQUE NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		summary TEXT NOT NULL DEFAULT '',
		resume_text TEXT NOT NULL DEFAULT '',
		skills TEXT NOT NULL DEFAULT '',
		preferred_locations TEXT NOT NULL DEFAULT '',
		desired_salary_min INTEGER NOT NULL DEFAULT 0,
		desired_salary_max INTEGER NOT NULL DEFAULT 0,
		password_hash TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		external_id TEXT UNIQUE,
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		apply_url TEXT NOT NULL DEFAULT '',
		job_type TEXT NOT NULL DEFAULT 'Full-time',
		level TEXT NOT NULL DEFAULT 'Mid Level',
		salary TEXT NOT NULL DEFAULT '',
		salary_min INTEGER NOT NULL DEFAULT 0,
		salary_max INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		status TEXT NOT NULL DEFAULT 'Application Submitted',
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, job_id)
	)`,
	`CREATE TABLE IF NOT EXISTS saved_jobs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		saved_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, job_id)
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID REFERENCES users(id) ON DELETE SET NULL,
		rating INTEGER NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT 'general',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_title ON jobs (title)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_user ON applications (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_saved_jobs_user ON saved_jobs (user_id)`,
}

// Init creates the tables if they do not exist
func (db *DB) Init(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// Stats holds per-table row counts for the health endpoint
type Stats struct {
	Users        int `json:"users"`
	Jobs         int `json:"jobs"`
	Applications int `json:"applications"`
	SavedJobs    int `json:"saved_jobs"`
	Feedback     int `json:"feedback"`
}

// GetStats returns row counts for every table
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := db.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM applications),
			(SELECT COUNT(*) FROM saved_jobs),
			(SELECT COUNT(*) FROM feedback)`,
	).Scan(&s.Users, &s.Jobs, &s.Applications, &s.SavedJobs, &s.Feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &s, nil
}
