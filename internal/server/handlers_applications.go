package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/job-agent/internal/db"
	"github.com/jonathan/job-agent/internal/logger"
	"github.com/jonathan/job-agent/internal/server/middleware"
)

// descriptionPreviewLimit caps job descriptions embedded in list responses.
const descriptionPreviewLimit = 200

// JobRefRequest is the request body for endpoints that reference a job.
type JobRefRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, ok := s.decodeJobRef(w, r)
	if !ok {
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	app, err := s.db.CreateApplication(r.Context(), userID, jobID)
	if errors.Is(err, db.ErrDuplicate) {
		// Applying twice is idempotent: hand back the original record.
		existing, getErr := s.db.GetApplicationByUserAndJob(r.Context(), userID, jobID)
		if getErr != nil || existing == nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		s.jsonResponse(w, http.StatusOK, existing)
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, app)
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireSelf(w, r)
	if !ok {
		return
	}

	apps, err := s.db.ListApplications(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	for i := range apps {
		apps[i].JobDescription = logger.TruncateForLog(apps[i].JobDescription, descriptionPreviewLimit)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applications": apps,
		"count":        len(apps),
	})
}

// decodeJobRef decodes and validates a job reference body.
func (s *Server) decodeJobRef(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var req JobRefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return uuid.Nil, false
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return uuid.Nil, false
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return uuid.Nil, false
	}

	return jobID, true
}
