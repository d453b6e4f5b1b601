package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/jonathan/job-agent/internal/db"
	"github.com/jonathan/job-agent/internal/match"
	"github.com/jonathan/job-agent/internal/server/middleware"
)

const (
	// recommendedPool bounds how much of the catalogue is scored per request.
	recommendedPool  = 500
	recommendedLimit = 50
	searchLimit      = 100
)

// ScoredJob is a job posting annotated with its compatibility score and the
// skill tags recognized in its description.
type ScoredJob struct {
	db.Job
	Score      float64  `json:"score"`
	MatchScore float64  `json:"match_score"`
	Tags       []string `json:"tags,omitempty"`
}

// JobListResponse is the response body for job listing endpoints.
type JobListResponse struct {
	Jobs  []ScoredJob `json:"jobs"`
	Count int         `json:"count"`
}

// handleRecommendedJobs scores the catalogue against the authenticated
// user's profile and returns the best matches, highest first.
func (s *Server) handleRecommendedJobs(w http.ResponseWriter, r *http.Request) {
	candidate, ok := s.loadCandidate(w, r)
	if !ok {
		return
	}

	jobs, err := s.db.ListJobs(r.Context(), recommendedPool)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	scored := scoreJobs(jobs, candidate)
	if len(scored) > recommendedLimit {
		scored = scored[:recommendedLimit]
	}

	s.jsonResponse(w, http.StatusOK, JobListResponse{Jobs: scored, Count: len(scored)})
}

// handleSearchJobs filters the catalogue by query and location, scored
// against the authenticated user's profile.
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	candidate, ok := s.loadCandidate(w, r)
	if !ok {
		return
	}

	query := r.URL.Query().Get("query")
	location := r.URL.Query().Get("location")

	jobs, err := s.db.SearchJobs(r.Context(), query, location, searchLimit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	scored := scoreJobs(jobs, candidate)
	s.jsonResponse(w, http.StatusOK, JobListResponse{Jobs: scored, Count: len(scored)})
}

// ImportResponse is the response body for /jobs/import.
type ImportResponse struct {
	Status     string `json:"status"`
	Imported   int    `json:"imported"`
	TotalFound int    `json:"total_found"`
	Message    string `json:"message"`
}

// handleImportJobs runs the feed aggregation and upserts the results.
func (s *Server) handleImportJobs(w http.ResponseWriter, r *http.Request) {
	imported, total, err := s.importer.ImportJobs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Import failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ImportResponse{
		Status:     "success",
		Imported:   imported,
		TotalFound: total,
		Message:    fmt.Sprintf("Imported %d new jobs out of %d found", imported, total),
	})
}

// loadCandidate resolves the authenticated user into a scoring profile.
func (s *Server) loadCandidate(w http.ResponseWriter, r *http.Request) (*match.Candidate, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if user == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return nil, false
	}

	return &match.Candidate{
		ResumeText:         user.ResumeText,
		Skills:             user.Skills,
		PreferredLocations: user.PreferredLocations,
		DesiredSalaryMin:   user.DesiredSalaryMin,
	}, true
}

// scoreJobs annotates each job with its score and tags and sorts by score
// descending. The sort is stable so equal scores keep catalogue order.
func scoreJobs(jobs []db.Job, candidate *match.Candidate) []ScoredJob {
	scored := make([]ScoredJob, 0, len(jobs))
	for i := range jobs {
		job := jobs[i]
		score := match.Score(match.Job{
			Description: job.Description,
			Level:       job.Level,
			Location:    job.Location,
			SalaryMin:   job.SalaryMin,
			SalaryMax:   job.SalaryMax,
		}, candidate)
		scored = append(scored, ScoredJob{
			Job:        job,
			Score:      score,
			MatchScore: score,
			Tags:       match.ExtractSkills(job.Description),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
