package server

import (
	"net/http"
)

// handleRoot identifies the service.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"service": "job-agent",
		"status":  "running",
	})
}

// HealthResponse is the response body for /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Stats    any    `json:"stats,omitempty"`
}

// handleHealth reports database connectivity and table counts.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
		})
		return
	}

	resp := HealthResponse{Status: "healthy", Database: "connected"}
	if stats, err := s.db.GetStats(r.Context()); err == nil {
		resp.Stats = stats
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
