package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/curanova/curanova-site/internal/auth"
	"github.com/curanova/curanova-site/internal/careers"
	"github.com/curanova/curanova-site/internal/config"
	"github.com/curanova/curanova-site/internal/content"
	"github.com/curanova/curanova-site/internal/db"
	"github.com/curanova/curanova-site/internal/llm"
	"github.com/curanova/curanova-site/internal/upload"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	content    *content.Store
	tokens     *auth.Service
	validator  *validator.Validate

	accounts     *careers.AccountService
	jobs         *careers.JobService
	applications *careers.ApplicationService
	referrals    *careers.ReferralService

	// generator is nil when no Gemini API key is configured.
	generator *llm.JobGenerator
	uploads   *upload.Store
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	authConfig, err := config.NewAuthConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create auth config: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	uploadConfig, err := config.NewUploadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create upload config: %w", err)
	}
	uploads, err := upload.NewStore(*uploadConfig)
	if err != nil {
		return nil, err
	}

	s := &Server{
		db:           database,
		content:      content.NewStore(config.NewContentConfig().Path),
		tokens:       auth.NewService(authConfig),
		validator:    validator.New(),
		accounts:     careers.NewAccountService(database, passwordConfig),
		jobs:         careers.NewJobService(database),
		applications: careers.NewApplicationService(database),
		referrals:    careers.NewReferralService(database),
		uploads:      uploads,
	}

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, llm.DefaultModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.generator = llm.NewJobGenerator(client)
	} else {
		log.Println("GEMINI_API_KEY not set, job generation disabled")
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux. Split out so handler tests can exercise the
// full routing table without a listener.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Site content
	mux.HandleFunc("GET /api/content", s.handleGetContent)
	mux.HandleFunc("PUT /api/content", s.requireKind(auth.KindSiteAdmin, s.handleUpdateContent))

	// Site-admin session
	mux.HandleFunc("POST /api/auth/login", s.handleSiteLogin)
	mux.HandleFunc("GET /api/auth/verify", s.handleVerify(auth.KindSiteAdmin))
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout(auth.KindSiteAdmin))

	// HR session
	mux.HandleFunc("POST /api/careers/auth/login", s.handleHRLogin)
	mux.HandleFunc("GET /api/careers/auth/verify", s.handleVerify(auth.KindHRAdmin))
	mux.HandleFunc("POST /api/careers/auth/logout", s.handleLogout(auth.KindHRAdmin))

	// Candidate accounts
	mux.HandleFunc("POST /api/careers/candidate/register", s.handleCandidateRegister)
	mux.HandleFunc("POST /api/careers/candidate/login", s.handleCandidateLogin)
	mux.HandleFunc("GET /api/careers/candidate/verify", s.handleVerify(auth.KindCandidate))
	mux.HandleFunc("POST /api/careers/candidate/logout", s.handleLogout(auth.KindCandidate))
	mux.HandleFunc("GET /api/careers/candidate/profile", s.requireKind(auth.KindCandidate, s.handleGetProfile))
	mux.HandleFunc("PUT /api/careers/candidate/profile", s.requireKind(auth.KindCandidate, s.handleUpdateProfile))

	// Jobs. List/read are public but reveal more to HR.
	mux.HandleFunc("GET /api/careers/jobs", s.handleListJobs)
	mux.HandleFunc("GET /api/careers/jobs/{id}", s.handleGetJob)
	mux.HandleFunc("POST /api/careers/jobs", s.requireKind(auth.KindHRAdmin, s.handleCreateJob))
	mux.HandleFunc("PUT /api/careers/jobs/{id}", s.requireKind(auth.KindHRAdmin, s.handleUpdateJob))
	mux.HandleFunc("DELETE /api/careers/jobs/{id}", s.requireKind(auth.KindHRAdmin, s.handleDeleteJob))
	mux.HandleFunc("POST /api/careers/generate-job", s.requireKind(auth.KindHRAdmin, s.handleGenerateJob))

	// Applications
	mux.HandleFunc("POST /api/careers/applications", s.requireKind(auth.KindCandidate, s.handleSubmitApplication))
	mux.HandleFunc("GET /api/careers/applications", s.handleListApplications)
	mux.HandleFunc("GET /api/careers/applications/{id}", s.requireKind(auth.KindHRAdmin, s.handleGetApplication))
	mux.HandleFunc("PUT /api/careers/applications/{id}", s.requireKind(auth.KindHRAdmin, s.handleReviewApplication))

	// HR candidate roster
	mux.HandleFunc("GET /api/careers/candidates", s.requireKind(auth.KindHRAdmin, s.handleListCandidates))

	// Referrals
	mux.HandleFunc("GET /api/careers/referrals", s.requireKind(auth.KindCandidate, s.handleGetReferrals))
	mux.HandleFunc("POST /api/careers/referrals", s.requireKind(auth.KindCandidate, s.handleCreateReferralCode))

	// Resume upload and static serving
	mux.HandleFunc("POST /api/careers/upload", s.requireKind(auth.KindCandidate, s.handleUploadResume))
	if s.uploads != nil {
		prefix := s.uploads.PublicPrefix() + "/"
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(s.uploads.Dir()))))
	}

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// requireKind rejects requests without a valid cookie of the given kind and
// hands the verified principal to the handler.
func (s *Server) requireKind(kind auth.Kind, next func(http.ResponseWriter, *http.Request, *auth.Principal)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := s.tokens.FromRequest(r, kind)
		if principal == nil {
			s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(w, r, principal)
	}
}

// isHR reports whether the request carries a valid HR cookie. Used on routes
// that are public but reveal more to HR.
func (s *Server) isHR(r *http.Request) bool {
	return s.tokens.FromRequest(r, auth.KindHRAdmin) != nil
}

// decode reads and validates a JSON request body, writing the error response
// itself when the body is unusable.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := s.validator.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return false
	}
	return true
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
