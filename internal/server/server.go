// Package server provides the HTTP REST API over the workspace document
// store.
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

	"github.com/jonathan/resume-workspace/internal/config"
	"github.com/jonathan/resume-workspace/internal/db"
	"github.com/jonathan/resume-workspace/internal/projection"
	"github.com/jonathan/resume-workspace/internal/server/middleware"
	"github.com/jonathan/resume-workspace/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	views      *projection.Views
	db         *db.DB // nil when snapshot persistence is not configured
	sessions   *SessionService
	accessCfg  *config.AccessConfig
	accessHash string
}

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string // optional; enables snapshot persistence
	AccessHash  string // optional; enables password-gated sessions
}

// New creates a new server instance over the given store.
func New(cfg Config, st *store.Store) (*Server, error) {
	s := &Server{
		store:      st,
		views:      projection.New(st),
		accessHash: cfg.AccessHash,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(context.Background()); err != nil {
			database.Close()
			return nil, err
		}
		s.db = database
	}

	if cfg.AccessHash != "" {
		accessCfg, err := config.NewAccessConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create access config: %w", err)
		}
		jwtCfg, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.accessCfg = accessCfg
		s.sessions = NewSessionService(jwtCfg)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.router())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// router assembles the route table. Mutations on protected routes require
// a session token when an access password is configured.
func (s *Server) router() http.Handler {
	mux := http.NewServeMux()

	// Document lifecycle
	mux.HandleFunc("GET /documents", s.handleListDocuments)
	mux.HandleFunc("POST /documents", s.handleCreateDocument)
	mux.HandleFunc("GET /documents/{id}", s.handleGetDocument)
	mux.HandleFunc("DELETE /documents/{id}", s.handleDeleteDocument)
	mux.HandleFunc("POST /documents/{id}/clone", s.handleCloneDocument)
	mux.HandleFunc("GET /current", s.handleGetCurrent)
	mux.HandleFunc("PUT /current", s.handleSwitchCurrent)

	// Field-level mutations
	mux.HandleFunc("PUT /documents/{id}/metadata", s.handleUpdateMetadata)
	mux.HandleFunc("PUT /documents/{id}/content", s.handleSetContent)
	mux.HandleFunc("PUT /documents/{id}/profile", s.handleUpdateProfile)
	mux.HandleFunc("PUT /documents/{id}/skills", s.handleUpdateSkills)
	mux.HandleFunc("PUT /documents/{id}/custom", s.handleUpdateCustom)
	mux.HandleFunc("PUT /documents/{id}/headings/{section}", s.handleSetHeading)

	// Section entries
	mux.HandleFunc("POST /documents/{id}/sections/{section}/entries", s.handleAddEntry)
	mux.HandleFunc("PUT /documents/{id}/sections/{section}/entries/{idx}", s.handleUpdateEntry)
	mux.HandleFunc("POST /documents/{id}/sections/{section}/entries/{idx}/move", s.handleMoveEntry)
	mux.HandleFunc("DELETE /documents/{id}/sections/{section}/entries/{idx}", s.handleDeleteEntry)

	// Interchange
	mux.HandleFunc("POST /import", s.handleImport)
	mux.HandleFunc("GET /export", s.handleExport)
	mux.HandleFunc("PUT /state", s.handleReplaceState)
	mux.HandleFunc("GET /documents/{id}/markdown", s.handleMarkdown)

	// Snapshot persistence (404 when no database is configured)
	mux.HandleFunc("GET /snapshots", s.handleListSnapshots)
	mux.HandleFunc("POST /snapshots/{name}", s.handleSaveSnapshot)
	mux.HandleFunc("POST /snapshots/{name}/restore", s.handleRestoreSnapshot)
	mux.HandleFunc("DELETE /snapshots/{name}", s.handleDeleteSnapshot)

	protected := http.Handler(mux)
	if s.sessions != nil {
		protected = middleware.AuthMiddleware(s.sessions.AsTokenValidator())(mux)
	}

	root := http.NewServeMux()
	root.HandleFunc("GET /health", s.handleHealth)
	root.HandleFunc("POST /session", s.handleCreateSession)
	root.Handle("/", protected)
	return root
}

// Start begins listening for requests and blocks until shutdown.
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

	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// Handler exposes the assembled routes, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// storeError maps a store error to an HTTP error response.
func (s *Server) storeError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
