package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user profile with search preferences.
type User struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	Phone              string    `json:"phone,omitempty"`
	Summary            string    `json:"summary,omitempty"`
	ResumeText         string    `json:"resume_text,omitempty"`
	Skills             string    `json:"skills,omitempty"`
	PreferredLocations string    `json:"preferred_locations,omitempty"`
	DesiredSalaryMin   int       `json:"desired_salary_min"`
	DesiredSalaryMax   int       `json:"desired_salary_max"`
	PasswordHash       string    `json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Job represents a job posting in the catalogue.
type Job struct {
	ID          uuid.UUID `json:"id"`
	ExternalID  string    `json:"external_id,omitempty"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	ApplyURL    string    `json:"apply_url,omitempty"`
	JobType     string    `json:"job_type"`
	Level       string    `json:"level"`
	Salary      string    `json:"salary,omitempty"`
	SalaryMin   int       `json:"salary_min,omitempty"`
	SalaryMax   int       `json:"salary_max,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Application represents a user's application to a job.
type Application struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	JobID     uuid.UUID `json:"job_id"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplicationWithJob is an application joined with its job for listing.
type ApplicationWithJob struct {
	Application
	JobTitle       string `json:"job_title"`
	JobCompany     string `json:"job_company"`
	JobLocation    string `json:"job_location,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
	ApplyURL       string `json:"apply_url,omitempty"`
}

// SavedJob represents a bookmarked job.
type SavedJob struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	JobID   uuid.UUID `json:"job_id"`
	SavedAt time.Time `json:"saved_at"`
}

// SavedJobWithJob is a saved job joined with its job for listing.
type SavedJobWithJob struct {
	SavedJob
	JobTitle    string `json:"job_title"`
	JobCompany  string `json:"job_company"`
	JobLocation string `json:"job_location,omitempty"`
	ApplyURL    string `json:"apply_url,omitempty"`
}

// Feedback represents a user-submitted rating with an optional comment.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackStats aggregates feedback for reporting.
type FeedbackStats struct {
	Total         int            `json:"total"`
	AverageRating float64        `json:"average_rating"`
	ByCategory    map[string]int `json:"by_category"`
}
