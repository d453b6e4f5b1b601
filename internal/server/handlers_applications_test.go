package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-agent/internal/db"
)

func TestCreateApplication(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "jordan@example.com", "hunter2hunter2")
	jobID := ts.store.addJob(db.Job{Title: "Engineer", Company: "Acme"})

	rec := ts.do(t, http.MethodPost, "/applications", token, JobRefRequest{JobID: jobID.String()})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var app db.Application
	decodeBody(t, rec, &app)
	assert.Equal(t, jobID, app.JobID)
	assert.Equal(t, "applied", app.Status)
}

func TestCreateApplication_DuplicateReturnsExisting(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "jordan@example.com", "hunter2hunter2")
	jobID := ts.store.addJob(db.Job{Title: "Engineer", Company: "Acme"})

	first := ts.do(t, http.MethodPost, "/applications", token, JobRefRequest{JobID: jobID.String()})
	require.Equal(t, http.StatusCreated, first.Code)
	var created db.Application
	decodeBody(t, first, &created)

	second := ts.do(t, http.MethodPost, "/applications", token, JobRefRequest{JobID: jobID.String()})
	require.Equal(t, http.StatusOK, second.Code)
	var existing db.Application
	decodeBody(t, second, &existing)
	assert.Equal(t, created.ID, existing.ID)
}

func TestCreateApplication_UnknownJob(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "jordan@example.com", "hunter2hunter2")

	rec := ts.do(t, http.MethodPost, "/applications", token,
		JobRefRequest{JobID: "00000000-0000-0000-0000-000000000001"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateApplication_BadJobID(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "jordan@example.com", "hunter2hunter2")

	rec := ts.do(t, http.MethodPost, "/applications", token, JobRefRequest{JobID: "not-a-uuid"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListApplications_TruncatesDescriptions(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.register(t, "jordan@example.com", "hunter2hunter2")
	jobID := ts.store.addJob(db.Job{
		Title:       "Engineer",
		Company:     "Acme",
		Description: strings.Repeat("long description ", 50),
	})

	rec := ts.do(t, http.MethodPost, "/applications", token, JobRefRequest{JobID: jobID.String()})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodGet, "/users/"+userID.String()+"/applications", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Applications []db.ApplicationWithJob `json:"applications"`
		Count        int                     `json:"count"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, 1, resp.Count)
	assert.LessOrEqual(t, len(resp.Applications[0].JobDescription), descriptionPreviewLimit+3)
	assert.Equal(t, "Engineer", resp.Applications[0].JobTitle)
}

func TestListApplications_OtherUserForbidden(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "jordan@example.com", "hunter2hunter2")
	otherID, _ := ts.register(t, "casey@example.com", "hunter2hunter2")

	rec := ts.do(t, http.MethodGet, "/users/"+otherID.String()+"/applications", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSaveJob_RoundTrip(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.register(t, "jordan@example.com", "hunter2hunter2")
	jobID := ts.store.addJob(db.Job{Title: "Engineer", Company: "Acme"})

	rec := ts.do(t, http.MethodPost, "/saved-jobs", token, JobRefRequest{JobID: jobID.String()})
	require.Equal(t, http.StatusCreated, rec.Code)
	var saved db.SavedJob
	decodeBody(t, rec, &saved)

	// Saving again hands back the same bookmark.
	rec = ts.do(t, http.MethodPost, "/saved-jobs", token, JobRefRequest{JobID: jobID.String()})
	require.Equal(t, http.StatusOK, rec.Code)
	var existing db.SavedJob
	decodeBody(t, rec, &existing)
	assert.Equal(t, saved.ID, existing.ID)

	rec = ts.do(t, http.MethodGet, "/users/"+userID.String()+"/saved-jobs", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listResp struct {
		SavedJobs []db.SavedJobWithJob `json:"saved_jobs"`
		Count     int                  `json:"count"`
	}
	decodeBody(t, rec, &listResp)
	assert.Equal(t, 1, listResp.Count)

	rec = ts.do(t, http.MethodDelete, "/saved-jobs/"+saved.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/saved-jobs/"+saved.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSavedJob_OtherUsersBookmark(t *testing.T) {
	ts := newTestServer(t)
	_, ownerToken := ts.register(t, "jordan@example.com", "hunter2hunter2")
	_, otherToken := ts.register(t, "casey@example.com", "hunter2hunter2")
	jobID := ts.store.addJob(db.Job{Title: "Engineer", Company: "Acme"})

	rec := ts.do(t, http.MethodPost, "/saved-jobs", ownerToken, JobRefRequest{JobID: jobID.String()})
	require.Equal(t, http.StatusCreated, rec.Code)
	var saved db.SavedJob
	decodeBody(t, rec, &saved)

	rec = ts.do(t, http.MethodDelete, "/saved-jobs/"+saved.ID.String(), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedback(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "jordan@example.com", "hunter2hunter2")

	rec := ts.do(t, http.MethodPost, "/feedback", token, FeedbackRequest{
		Rating:  5,
		Comment: "Scores feel accurate",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var fb db.Feedback
	decodeBody(t, rec, &fb)
	assert.Equal(t, "general", fb.Category, "category defaults when omitted")

	rec = ts.do(t, http.MethodPost, "/feedback", token, FeedbackRequest{
		Rating:   3,
		Category: "matching",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodGet, "/feedback/stats", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats db.FeedbackStats
	decodeBody(t, rec, &stats)
	assert.Equal(t, 2, stats.Total)
	assert.InDelta(t, 4.0, stats.AverageRating, 0.001)
	assert.Equal(t, 1, stats.ByCategory["matching"])
}

func TestFeedback_InvalidRating(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "jordan@example.com", "hunter2hunter2")

	rec := ts.do(t, http.MethodPost, "/feedback", token, FeedbackRequest{Rating: 6})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
