package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dgallion1/brandpost/internal/chunker"
	"github.com/dgallion1/brandpost/internal/config"
	"github.com/dgallion1/brandpost/internal/llm"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Posts is the generation surface the API drives.
type Posts interface {
	Generate(ctx context.Context, purpose, language string) (string, error)
	SetTone(tone string) string
}

// Server is the HTTP API server for brandpost.
type Server struct {
	router chi.Router
	posts  Posts
	chunks chunker.Store
	stats  *llm.Stats
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server. stats may be nil.
func NewServer(posts Posts, chunks chunker.Store, stats *llm.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		posts:  posts,
		chunks: chunks,
		stats:  stats,
		log:    log,
		cfg:    cfg,
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

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated when an API key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/generate", s.handleGenerate)
		r.Post("/settings/tone", s.handleSetTone)

		r.Get("/api/chunks", s.handleListChunks)
		r.Get("/api/chunks/{key}", s.handleGetChunk)
		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
