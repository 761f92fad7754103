package web

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"catanboard/internal/application"
	"catanboard/internal/models"
	"catanboard/pkg/config"
)

const shutdownTimeout = 5 * time.Second

// Server serves the leaderboard page and its JSON API. It remembers the active
// sort mode so the toggle re-renders from the loaded dataset.
type Server struct {
	services *application.Service
	logger   application.Logger
	addr     string
	title    string
	basePath string
	origins  []string

	mu     sync.RWMutex
	sortBy models.SortMode

	http *http.Server
}

func NewServer(cfg *config.Config, services *application.Service, logger application.Logger) *Server {
	s := &Server{
		services: services,
		logger:   logger,
		addr:     cfg.Web.Addr,
		title:    cfg.Web.Title,
		basePath: cfg.BasePath,
		origins:  cfg.Web.CORSOrigins,
		sortBy:   cfg.Sort(),
	}
	s.http = &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Name() string {
	return "web"
}

func (s *Server) Init() error {
	return nil
}

func (s *Server) Run(ctx context.Context) {
	s.logger.Info("web server listening", "addr", s.addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("web server stopped", "error", err)
	}
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("web server shutdown", "error", err)
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handlePage)
	r.Post("/sort/toggle", s.handleToggle)
	r.Post("/reload", s.handleReload)
	r.Get("/export.xlsx", s.handleExport)

	r.Route("/api", func(r chi.Router) {
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/players/{name}", s.handlePlayer)
	})

	return r
}

// SortMode returns the sort mode the page currently shows.
func (s *Server) SortMode() models.SortMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortBy
}

func (s *Server) setSortMode(mode models.SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortBy = mode
}

func (s *Server) toggleSortMode() models.SortMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortBy = s.sortBy.Toggle()
	return s.sortBy
}
