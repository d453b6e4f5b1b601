// Package scheduler wires up the cron job that periodically refreshes the
// job catalogue from the configured feed sources.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Importer runs one import cycle and reports how many listings were new out
// of how many were fetched.
type Importer interface {
	ImportJobs(ctx context.Context) (imported, total int, err error)
}

// Scheduler wraps robfig/cron and manages the import loop.
type Scheduler struct {
	cron      *cron.Cron
	importer  Importer
	countJobs func(ctx context.Context) (int, error)
	spec      string
	logger    *zap.Logger
}

// New creates a Scheduler firing on the given cron spec (e.g. "@every 6h" or
// "0 6 * * *"). countJobs reports the catalogue size for startup seeding.
func New(importer Importer, countJobs func(ctx context.Context) (int, error), spec string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		importer:  importer,
		countJobs: countJobs,
		spec:      spec,
		logger:    logger,
	}
}

// Start registers the job and starts the scheduler. When the catalogue is
// empty an import runs immediately so the feed is populated without waiting
// for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.spec != "" {
		if _, err := s.cron.AddFunc(s.spec, func() {
			s.runImport(ctx)
		}); err != nil {
			return fmt.Errorf("cron.AddFunc: %w", err)
		}
		s.cron.Start()
		s.logger.Info("import scheduler started", zap.String("spec", s.spec))
	}

	count, err := s.countJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to count jobs: %w", err)
	}
	if count == 0 {
		s.logger.Info("job catalogue empty, seeding from feeds")
		go s.runImport(ctx)
	}

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("import scheduler stopped")
}

func (s *Scheduler) runImport(ctx context.Context) {
	s.logger.Info("import cycle started")

	imported, total, err := s.importer.ImportJobs(ctx)
	if err != nil {
		s.logger.Error("import cycle failed", zap.Error(err))
		return
	}

	s.logger.Info("import cycle complete",
		zap.Int("imported", imported),
		zap.Int("total_fetched", total),
	)
}
