package source

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Aggregator fans out to every configured fetcher and merges the results.
// A failing source is logged and skipped; the merged feed carries whatever
// the remaining sources returned.
type Aggregator struct {
	fetchers []Fetcher
	logger   *zap.Logger
}

// NewAggregator creates an aggregator over the given fetchers.
func NewAggregator(logger *zap.Logger, fetchers ...Fetcher) *Aggregator {
	return &Aggregator{fetchers: fetchers, logger: logger}
}

// DefaultFetchers wires the three remote sources behind retry decorators,
// plus the bundled sample catalogue.
func DefaultFetchers(client *http.Client, logger *zap.Logger) []Fetcher {
	const (
		maxRetries = 2
		baseDelay  = 2 * time.Second
	)
	return []Fetcher{
		WithRetry(NewRemotiveFetcher(client), maxRetries, baseDelay, logger),
		WithRetry(NewArbeitnowFetcher(client), maxRetries, baseDelay, logger),
		WithRetry(NewRemoteOKFetcher(client), maxRetries, baseDelay, logger),
		NewStaticFetcher("samples", SampleJobs()),
	}
}

// FetchAll fetches every source concurrently and returns the merged feed
// with duplicates removed. Duplicates are listings sharing a title and
// company, compared case-insensitively; the first source wins.
func (a *Aggregator) FetchAll(ctx context.Context) []Job {
	results := make([][]Job, len(a.fetchers))

	var g errgroup.Group
	for i, fetcher := range a.fetchers {
		g.Go(func() error {
			jobs, err := fetcher.FetchJobs(ctx)
			if err != nil {
				a.logger.Warn("source fetch failed",
					zap.String("source", fetcher.Name()),
					zap.Error(err),
				)
				return nil
			}
			a.logger.Info("source fetch complete",
				zap.String("source", fetcher.Name()),
				zap.Int("jobs", len(jobs)),
			)
			results[i] = jobs
			return nil
		})
	}
	g.Wait()

	var merged []Job
	seen := make(map[string]bool)
	for _, jobs := range results {
		for _, job := range jobs {
			key := strings.ToLower(job.Title) + "_" + strings.ToLower(job.Company)
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, job)
		}
	}
	return merged
}
