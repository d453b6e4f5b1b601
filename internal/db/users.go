package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, full_name, phone, summary, resume_text, skills,
	preferred_locations, desired_salary_min, desired_salary_max, password_hash,
	created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Phone, &u.Summary,
		&u.ResumeText, &u.Skills, &u.PreferredLocations,
		&u.DesiredSalaryMin, &u.DesiredSalaryMax, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a new user and returns the stored record
func (db *DB) CreateUser(ctx context.Context, email, fullName, passwordHash string) (*User, error) {
	user, err := scanUser(db.pool.QueryRow(ctx,
		`INSERT INTO users (email, full_name, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		email, fullName, passwordHash,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user by ID, returning nil when not found
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email, returning nil when not found
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	user, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// UserUpdate holds the profile fields a user may change. Nil fields are
// left untouched.
type UserUpdate struct {
	FullName           *string
	Phone              *string
	Summary            *string
	ResumeText         *string
	Skills             *string
	PreferredLocations *string
	DesiredSalaryMin   *int
	DesiredSalaryMax   *int
}

// UpdateUser applies the non-nil fields of update and returns the new record
func (db *DB) UpdateUser(ctx context.Context, id uuid.UUID, update UserUpdate) (*User, error) {
	query := `UPDATE users SET updated_at = NOW()`
	args := []any{}
	argNum := 1

	set := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, argNum)
		args = append(args, value)
		argNum++
	}

	if update.FullName != nil {
		set("full_name", *update.FullName)
	}
	if update.Phone != nil {
		set("phone", *update.Phone)
	}
	if update.Summary != nil {
		set("summary", *update.Summary)
	}
	if update.ResumeText != nil {
		set("resume_text", *update.ResumeText)
	}
	if update.Skills != nil {
		set("skills", *update.Skills)
	}
	if update.PreferredLocations != nil {
		set("preferred_locations", *update.PreferredLocations)
	}
	if update.DesiredSalaryMin != nil {
		set("desired_salary_min", *update.DesiredSalaryMin)
	}
	if update.DesiredSalaryMax != nil {
		set("desired_salary_max", *update.DesiredSalaryMax)
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argNum, userColumns)
	args = append(args, id)

	user, err := scanUser(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
