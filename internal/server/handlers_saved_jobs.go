package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/job-agent/internal/db"
	"github.com/jonathan/job-agent/internal/server/middleware"
)

func (s *Server) handleSaveJob(w http.ResponseWriter, r *http.Request) {
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

	saved, err := s.db.SaveJob(r.Context(), userID, jobID)
	if errors.Is(err, db.ErrDuplicate) {
		existing, getErr := s.db.GetSavedJobByUserAndJob(r.Context(), userID, jobID)
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

	s.jsonResponse(w, http.StatusCreated, saved)
}

func (s *Server) handleListSavedJobs(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireSelf(w, r)
	if !ok {
		return
	}

	saved, err := s.db.ListSavedJobs(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"saved_jobs": saved,
		"count":      len(saved),
	})
}

func (s *Server) handleDeleteSavedJob(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	savedID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid saved job ID")
		return
	}

	if err := s.db.DeleteSavedJob(r.Context(), savedID, userID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, "Saved job not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
