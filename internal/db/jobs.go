package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, COALESCE(external_id, ''), title, company, description,
	location, apply_url, job_type, level, salary, salary_min, salary_max, created_at`

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.ExternalID, &j.Title, &j.Company, &j.Description,
		&j.Location, &j.ApplyURL, &j.JobType, &j.Level, &j.Salary,
		&j.SalaryMin, &j.SalaryMax, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// GetJob retrieves a job by ID, returning nil when not found
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	job, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// UpsertJob inserts a job, updating the existing row when the external ID is
// already present. Returns the stored record and whether a row was inserted.
func (db *DB) UpsertJob(ctx context.Context, job *Job) (*Job, bool, error) {
	if job.ExternalID == "" {
		stored, err := scanJob(db.pool.QueryRow(ctx,
			`INSERT INTO jobs (title, company, description, location, apply_url,
				job_type, level, salary, salary_min, salary_max)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 RETURNING `+jobColumns,
			job.Title, job.Company, job.Description, job.Location, job.ApplyURL,
			job.JobType, job.Level, job.Salary, job.SalaryMin, job.SalaryMax,
		))
		if err != nil {
			return nil, false, fmt.Errorf("failed to insert job: %w", err)
		}
		return stored, true, nil
	}

	var inserted bool
	stored, err := scanJobInserted(db.pool.QueryRow(ctx,
		`INSERT INTO jobs (external_id, title, company, description, location,
			apply_url, job_type, level, salary, salary_min, salary_max)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (external_id) DO UPDATE SET
			title = EXCLUDED.title,
			company = EXCLUDED.company,
			description = EXCLUDED.description,
			location = EXCLUDED.location,
			apply_url = EXCLUDED.apply_url,
			job_type = EXCLUDED.job_type,
			level = EXCLUDED.level,
			salary = EXCLUDED.salary,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max
		 RETURNING `+jobColumns+`, (xmax = 0)`,
		job.ExternalID, job.Title, job.Company, job.Description, job.Location,
		job.ApplyURL, job.JobType, job.Level, job.Salary, job.SalaryMin, job.SalaryMax,
	), &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert job: %w", err)
	}
	return stored, inserted, nil
}

func scanJobInserted(row pgx.Row, inserted *bool) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.ExternalID, &j.Title, &j.Company, &j.Description,
		&j.Location, &j.ApplyURL, &j.JobType, &j.Level, &j.Salary,
		&j.SalaryMin, &j.SalaryMax, &j.CreatedAt, inserted)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// ListJobs retrieves the most recent jobs
func (db *DB) ListJobs(ctx context.Context, limit int) ([]Job, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

// SearchJobs retrieves jobs whose title, company, or description matches query
// and whose location matches location. Empty filters match everything.
func (db *DB) SearchJobs(ctx context.Context, query, location string, limit int) ([]Job, error) {
	if limit <= 0 {
		limit = 100
	}

	sql := `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`
	args := []any{}
	argNum := 1

	if query != "" {
		sql += fmt.Sprintf(" AND (title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d)",
			argNum, argNum, argNum)
		args = append(args, "%"+query+"%")
		argNum++
	}
	if location != "" {
		sql += fmt.Sprintf(" AND location ILIKE $%d", argNum)
		args = append(args, "%"+location+"%")
		argNum++
	}

	sql += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, limit)

	rows, err := db.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

// CountJobs returns the number of jobs in the catalogue
func (db *DB) CountJobs(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

func collectJobs(rows pgx.Rows) ([]Job, error) {
	var jobs []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.ExternalID, &j.Title, &j.Company,
			&j.Description, &j.Location, &j.ApplyURL, &j.JobType, &j.Level,
			&j.Salary, &j.SalaryMin, &j.SalaryMax, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
