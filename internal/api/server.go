// Package api serves parsed documentation over HTTP for presentation layers.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bartekus/planscan/internal/roadmap"
)

// Loader is what the server needs from a project loader.
type Loader interface {
	Discover(ctx context.Context, root string) ([]roadmap.DocFileInfo, error)
	Load(ctx context.Context, root string) (roadmap.ProjectDocumentation, error)
}

// Server is the HTTP API server for planscan.
type Server struct {
	router      chi.Router
	loader      Loader
	log         *slog.Logger
	defaultRoot string
	apiKey      string
}

// Option configures a Server.
type Option func(*Server)

// WithAPIKey requires `Authorization: Bearer <key>` on every /api route.
func WithAPIKey(key string) Option {
	return func(s *Server) { s.apiKey = key }
}

// NewServer creates and configures the HTTP server. Requests may only name
// defaultRoot or directories beneath it; defaultRoot is used when a request
// does not name a root.
func NewServer(loader Loader, log *slog.Logger, defaultRoot string, opts ...Option) *Server {
	s := &Server{
		loader:      loader,
		log:         log,
		defaultRoot: defaultRoot,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(AuthMiddleware(s.apiKey))
		}
		r.Get("/documentation", s.handleDocumentation)
		r.Get("/documents", s.handleDocuments)
		r.Get("/tasks", s.handleTasks)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
