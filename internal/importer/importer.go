// Package importer pulls jobs from the external feeds into the catalogue.
package importer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/job-agent/internal/db"
	"github.com/jonathan/job-agent/internal/source"
)

// Catalogue is the subset of the database the importer writes to.
type Catalogue interface {
	UpsertJob(ctx context.Context, job *db.Job) (*db.Job, bool, error)
}

// Importer aggregates the configured feeds and upserts the results.
type Importer struct {
	catalogue  Catalogue
	aggregator *source.Aggregator
	logger     *zap.Logger
}

// New creates an Importer over the given catalogue and aggregator.
func New(catalogue Catalogue, aggregator *source.Aggregator, logger *zap.Logger) *Importer {
	return &Importer{
		catalogue:  catalogue,
		aggregator: aggregator,
		logger:     logger,
	}
}

// ImportJobs fetches every feed and upserts the merged results. It returns
// how many jobs were newly inserted and how many the feeds produced in
// total. Existing jobs are refreshed in place, not counted as imported.
func (i *Importer) ImportJobs(ctx context.Context) (imported, total int, err error) {
	jobs := i.aggregator.FetchAll(ctx)
	total = len(jobs)

	for idx := range jobs {
		record := toRecord(&jobs[idx])
		_, inserted, upsertErr := i.catalogue.UpsertJob(ctx, record)
		if upsertErr != nil {
			return imported, total, fmt.Errorf("failed to upsert job %q: %w", record.Title, upsertErr)
		}
		if inserted {
			imported++
		}
	}

	i.logger.Info("feed import finished",
		zap.Int("imported", imported),
		zap.Int("total_found", total))
	return imported, total, nil
}

func toRecord(job *source.Job) *db.Job {
	return &db.Job{
		ExternalID:  job.ExternalID,
		Title:       job.Title,
		Company:     job.Company,
		Description: job.Description,
		Location:    job.Location,
		ApplyURL:    job.ApplyURL,
		JobType:     job.JobType,
		Level:       job.Level,
		Salary:      job.Salary,
		SalaryMin:   job.SalaryMin,
		SalaryMax:   job.SalaryMax,
	}
}
