package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/job-agent/internal/db"
	"github.com/jonathan/job-agent/internal/server/middleware"
)

// UpdateUserRequest carries the profile fields a user may change. Absent
// fields are left untouched.
type UpdateUserRequest struct {
	FullName           *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone              *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Summary            *string `json:"summary,omitempty" validate:"omitempty,max=5000"`
	ResumeText         *string `json:"resume_text,omitempty" validate:"omitempty,max=50000"`
	Skills             *string `json:"skills,omitempty" validate:"omitempty,max=2000"`
	PreferredLocations *string `json:"preferred_locations,omitempty" validate:"omitempty,max=500"`
	DesiredSalaryMin   *int    `json:"desired_salary_min,omitempty" validate:"omitempty,min=0"`
	DesiredSalaryMax   *int    `json:"desired_salary_max,omitempty" validate:"omitempty,min=0"`
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if user == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	authedID, err := middleware.GetUserID(r)
	if err != nil || authedID != userID {
		s.errorResponse(w, http.StatusForbidden, "Access denied")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := s.db.UpdateUser(r.Context(), userID, db.UserUpdate{
		FullName:           req.FullName,
		Phone:              req.Phone,
		Summary:            req.Summary,
		ResumeText:         req.ResumeText,
		Skills:             req.Skills,
		PreferredLocations: req.PreferredLocations,
		DesiredSalaryMin:   req.DesiredSalaryMin,
		DesiredSalaryMax:   req.DesiredSalaryMax,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if user == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, user)
}

// requireSelf checks the path user ID against the authenticated identity.
func (s *Server) requireSelf(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return uuid.Nil, false
	}

	authedID, err := middleware.GetUserID(r)
	if err != nil || authedID != userID {
		s.errorResponse(w, http.StatusForbidden, "Access denied")
		return uuid.Nil, false
	}

	return userID, true
}
