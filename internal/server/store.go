package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/job-agent/internal/db"
)

// Store is the database surface the handlers depend on. *db.DB satisfies it;
// tests substitute an in-memory fake.
type Store interface {
	Ping(ctx context.Context) error
	GetStats(ctx context.Context) (*db.Stats, error)

	CreateUser(ctx context.Context, email, fullName, passwordHash string) (*db.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update db.UserUpdate) (*db.User, error)

	GetJob(ctx context.Context, id uuid.UUID) (*db.Job, error)
	ListJobs(ctx context.Context, limit int) ([]db.Job, error)
	SearchJobs(ctx context.Context, query, location string, limit int) ([]db.Job, error)

	CreateApplication(ctx context.Context, userID, jobID uuid.UUID) (*db.Application, error)
	GetApplicationByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*db.Application, error)
	ListApplications(ctx context.Context, userID uuid.UUID) ([]db.ApplicationWithJob, error)

	SaveJob(ctx context.Context, userID, jobID uuid.UUID) (*db.SavedJob, error)
	GetSavedJobByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*db.SavedJob, error)
	ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]db.SavedJobWithJob, error)
	DeleteSavedJob(ctx context.Context, id, userID uuid.UUID) error

	CreateFeedback(ctx context.Context, userID uuid.UUID, rating int, comment, category string) (*db.Feedback, error)
	GetFeedbackStats(ctx context.Context) (*db.FeedbackStats, error)
}
