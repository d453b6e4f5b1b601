package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/job-agent/internal/db"
	"github.com/jonathan/job-agent/internal/generate"
	"github.com/jonathan/job-agent/internal/schemas"
	"github.com/jonathan/job-agent/internal/server/middleware"
)

// GenerateRequest is the request body for the /generate endpoints. The
// optional employment data overrides fields otherwise derived from the
// resume text and is schema-validated before use.
type GenerateRequest struct {
	JobID          string          `json:"job_id" validate:"required,uuid"`
	EmploymentData json.RawMessage `json:"employment_data,omitempty"`
}

func (s *Server) handleGenerateCoverLetter(w http.ResponseWriter, r *http.Request) {
	s.handleGenerate(w, r, generate.KindCoverLetter)
}

func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	s.handleGenerate(w, r, generate.KindResume)
}

func (s *Server) handleGenerateInterviewPrep(w http.ResponseWriter, r *http.Request) {
	s.handleGenerate(w, r, generate.KindInterviewPrep)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request, kind generate.Kind) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var employment *generate.Employment
	if len(req.EmploymentData) > 0 {
		if err := schemas.ValidateEmploymentData(req.EmploymentData); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		employment = &generate.Employment{}
		if err := json.Unmarshal(req.EmploymentData, employment); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid employment data")
			return
		}
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// A missing user or job surfaces as a status=error result, matching the
	// generator's own contract.
	result := generate.Generate(toProfile(user, employment), toPosting(job), kind)
	s.jsonResponse(w, http.StatusOK, result)
}

func toProfile(user *db.User, employment *generate.Employment) *generate.Profile {
	if user == nil {
		return nil
	}
	return &generate.Profile{
		FullName:   user.FullName,
		Email:      user.Email,
		Phone:      user.Phone,
		ResumeText: user.ResumeText,
		Skills:     user.Skills,
		Summary:    user.Summary,
		Employment: employment,
	}
}

func toPosting(job *db.Job) *generate.Posting {
	if job == nil {
		return nil
	}
	return &generate.Posting{
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Description: job.Description,
	}
}
