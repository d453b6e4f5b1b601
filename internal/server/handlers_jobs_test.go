package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-agent/internal/db"
)

func seedProfile(t *testing.T, ts *testServer) (string, string) {
	t.Helper()
	userID, token := ts.register(t, "jordan@example.com", "hunter2hunter2")

	skills := "AWS, Kubernetes, Terraform, Python"
	resume := "Senior engineer with 8 years of experience building cloud platforms."
	locations := "Remote"
	rec := ts.do(t, http.MethodPut, "/users/"+userID.String(), token, UpdateUserRequest{
		Skills:             &skills,
		ResumeText:         &resume,
		PreferredLocations: &locations,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return userID.String(), token
}

func TestRecommendedJobs_SortedByScore(t *testing.T) {
	ts := newTestServer(t)
	_, token := seedProfile(t, ts)

	ts.store.addJob(db.Job{
		Title: "Frontend Developer", Company: "WebCo",
		Description: "React and CSS.", Location: "New York, NY", Level: "Mid Level",
	})
	ts.store.addJob(db.Job{
		Title: "Platform Engineer", Company: "CloudCo",
		Description: "AWS, Kubernetes and Terraform for a senior engineer.",
		Location:    "Remote", Level: "Senior",
	})

	rec := ts.do(t, http.MethodGet, "/jobs/recommended", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp JobListResponse
	decodeBody(t, rec, &resp)
	require.Equal(t, 2, resp.Count)

	assert.Equal(t, "Platform Engineer", resp.Jobs[0].Title)
	assert.Greater(t, resp.Jobs[0].Score, resp.Jobs[1].Score)
	assert.Equal(t, resp.Jobs[0].Score, resp.Jobs[0].MatchScore)
	assert.Contains(t, resp.Jobs[0].Tags, "aws")
}

func TestRecommendedJobs_CapsAtFifty(t *testing.T) {
	ts := newTestServer(t)
	_, token := seedProfile(t, ts)

	for i := 0; i < 60; i++ {
		ts.store.addJob(db.Job{
			Title:       fmt.Sprintf("Engineer %d", i),
			Company:     "Acme",
			Description: "AWS and Python.",
			Location:    "Remote",
		})
	}

	rec := ts.do(t, http.MethodGet, "/jobs/recommended", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp JobListResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 50, resp.Count)
	assert.Len(t, resp.Jobs, 50)
}

func TestSearchJobs_Filters(t *testing.T) {
	ts := newTestServer(t)
	_, token := seedProfile(t, ts)

	ts.store.addJob(db.Job{Title: "DevOps Engineer", Company: "Acme", Description: "Terraform.", Location: "Remote"})
	ts.store.addJob(db.Job{Title: "Data Scientist", Company: "Acme", Description: "Python.", Location: "Boston, MA"})

	rec := ts.do(t, http.MethodGet, "/jobs/search?query=devops&location=remote", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp JobListResponse
	decodeBody(t, rec, &resp)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "DevOps Engineer", resp.Jobs[0].Title)
	assert.Greater(t, resp.Jobs[0].Score, 0.0)
}

func TestSearchJobs_EmptyQueryReturnsAll(t *testing.T) {
	ts := newTestServer(t)
	_, token := seedProfile(t, ts)

	ts.store.addJob(db.Job{Title: "A", Company: "Acme"})
	ts.store.addJob(db.Job{Title: "B", Company: "Acme"})

	rec := ts.do(t, http.MethodGet, "/jobs/search", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp JobListResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 2, resp.Count)
}

func TestImportJobs(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "jordan@example.com", "hunter2hunter2")
	ts.importing.imported = 12
	ts.importing.total = 20

	rec := ts.do(t, http.MethodPost, "/jobs/import", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ImportResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 12, resp.Imported)
	assert.Equal(t, 20, resp.TotalFound)
	assert.Equal(t, "Imported 12 new jobs out of 20 found", resp.Message)
	assert.Equal(t, 1, ts.importing.calls)
}

func TestImportJobs_Failure(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "jordan@example.com", "hunter2hunter2")
	ts.importing.err = fmt.Errorf("feed unavailable")

	rec := ts.do(t, http.MethodPost, "/jobs/import", token, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
