package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/job-agent/internal/server/middleware"
)

// FeedbackRequest is the request body for /feedback.
type FeedbackRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"max=2000"`
	Category string `json:"category" validate:"omitempty,max=100"`
}

func (s *Server) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if req.Category == "" {
		req.Category = "general"
	}

	feedback, err := s.db.CreateFeedback(r.Context(), userID, req.Rating, req.Comment, req.Category)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, feedback)
}

func (s *Server) handleFeedbackStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetFeedbackStats(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stats)
}
