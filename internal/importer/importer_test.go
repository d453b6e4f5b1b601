package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/job-agent/internal/db"
	"github.com/jonathan/job-agent/internal/source"
)

type fakeCatalogue struct {
	seen     map[string]bool
	upserted []*db.Job
}

func (f *fakeCatalogue) UpsertJob(_ context.Context, job *db.Job) (*db.Job, bool, error) {
	if f.seen == nil {
		f.seen = make(map[string]bool)
	}
	inserted := !f.seen[job.ExternalID]
	f.seen[job.ExternalID] = true
	f.upserted = append(f.upserted, job)
	return job, inserted, nil
}

func TestImportJobs_CountsOnlyNewRows(t *testing.T) {
	catalogue := &fakeCatalogue{seen: map[string]bool{"samples_existing": true}}
	fetcher := source.NewStaticFetcher("test", []source.Job{
		{ExternalID: "samples_existing", Title: "Old Job", Company: "Acme"},
		{ExternalID: "samples_new", Title: "New Job", Company: "Acme", SalaryMin: 90000, SalaryMax: 120000},
	})
	agg := source.NewAggregator(zap.NewNop(), fetcher)

	imp := New(catalogue, agg, zap.NewNop())
	imported, total, err := imp.ImportJobs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, imported)
	assert.Equal(t, 2, total)
	require.Len(t, catalogue.upserted, 2)
	assert.Equal(t, 90000, catalogue.upserted[1].SalaryMin)
}
