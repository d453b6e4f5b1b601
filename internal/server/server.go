package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/job-agent/internal/config"
	"github.com/jonathan/job-agent/internal/server/middleware"
	"github.com/jonathan/job-agent/internal/server/ratelimit"
)

// JobImporter runs a feed import and reports how many jobs were new.
type JobImporter interface {
	ImportJobs(ctx context.Context) (imported, total int, err error)
}

// Server is the HTTP server for the job agent API.
type Server struct {
	httpServer  *http.Server
	db          Store
	sessions    Sessions
	importer    JobImporter
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	validator   *validator.Validate
	logger      *zap.Logger
	corsOrigin  string
}

// New creates a server over already-connected dependencies. JWT, password
// and rate-limit settings are read from the environment.
func New(cfg *config.Config, store Store, sessions Sessions, imp JobImporter, logger *zap.Logger) (*Server, error) {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load JWT config: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load password config: %w", err)
	}

	s := &Server{
		db:          store,
		sessions:    sessions,
		importer:    imp,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		jwtService:  NewJWTService(jwtConfig),
		validator:   validator.New(),
		logger:      logger,
		corsOrigin:  cfg.CORSOrigin,
	}
	s.userService = NewUserService(store, passwordConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService, sessions)

	handler := s.withRateLimit(s.withLogging(s.withCORS(s.routes())))

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request multiplexer. Everything past the health and
// login endpoints requires a bearer token with a live session.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	protect := middleware.Auth(NewTokenValidator(s.jwtService, s.sessions))
	auth := func(h http.HandlerFunc) http.Handler { return protect(h) }

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("POST /auth/logout", auth(s.authHandler.Logout))
	mux.Handle("GET /auth/me", auth(s.authHandler.Me))

	mux.Handle("GET /users/{id}", auth(s.handleGetUser))
	mux.Handle("PUT /users/{id}", auth(s.handleUpdateUser))

	mux.Handle("GET /jobs/recommended", auth(s.handleRecommendedJobs))
	mux.Handle("GET /jobs/search", auth(s.handleSearchJobs))
	mux.Handle("POST /jobs/import", auth(s.handleImportJobs))

	mux.Handle("POST /applications", auth(s.handleCreateApplication))
	mux.Handle("GET /users/{id}/applications", auth(s.handleListApplications))

	mux.Handle("POST /saved-jobs", auth(s.handleSaveJob))
	mux.Handle("GET /users/{id}/saved-jobs", auth(s.handleListSavedJobs))
	mux.Handle("DELETE /saved-jobs/{id}", auth(s.handleDeleteSavedJob))

	mux.Handle("POST /feedback", auth(s.handleCreateFeedback))
	mux.HandleFunc("GET /feedback/stats", s.handleFeedbackStats)

	mux.Handle("POST /generate/cover-letter", auth(s.handleGenerateCoverLetter))
	mux.Handle("POST /generate/resume", auth(s.handleGenerateResume))
	mux.Handle("POST /generate/interview-prep", auth(s.handleGenerateInterviewPrep))

	return mux
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		s.logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.rateLimiter.Stop()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

// withCORS adds CORS headers and answers preflight requests.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with its duration and status.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRateLimit enforces per-client token buckets and reports limit state
// via response headers.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)

		if !allowed {
			s.logger.Warn("rate limit exceeded",
				zap.String("client", clientID),
				zap.String("path", r.URL.Path))
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractClientID derives a rate-limit key from the request. The remote IP
// is used; X-Forwarded-For takes precedence behind a proxy.
func extractClientID(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds())+1))
	}
	s.jsonResponse(w, http.StatusTooManyRequests, map[string]string{
		"error":   "rate_limit_exceeded",
		"message": "Too many requests, please try again later",
	})
}

// jsonResponse writes a JSON response with the given status code.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes a JSON error response with the given status code.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
