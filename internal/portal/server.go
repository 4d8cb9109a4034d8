package portal

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/backend"
	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/config"
	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/store"
)

// sessionCleanupInterval is how often expired portal sessions are purged.
const sessionCleanupInterval = time.Hour

// Server is the portal HTTP server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    *config.Config
	startTime time.Time
	backend   *backend.Client
	sessions  *SessionManager
	store     store.Store
}

// New creates a Server with all routes registered.
func New(cfg *config.Config, st store.Store, bc *backend.Client, logger *slog.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "portal"),
		config:    cfg,
		startTime: time.Now(),
		backend:   bc,
		sessions:  NewSessionManager(st, cfg.SessionTTL),
		store:     st,
	}
	s.routes()
	return s
}

// StartSessionCleanup purges expired sessions periodically until ctx is done.
func (s *Server) StartSessionCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n, err := s.sessions.CleanupExpired(ctx)
				if err != nil {
					s.logger.Error("session cleanup failed", "error", err)
				} else if n > 0 {
					s.logger.Debug("expired sessions removed", "count", n)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(requestIDMiddleware)
	s.router.Use(loggingMiddleware(s.logger))

	// Public routes.
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/api/config", s.handleConfig)
	s.router.Post("/api/chat", s.handleChat)

	s.router.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/google", s.handleGoogleLogin)
		r.Post("/register", s.handleRegister)
		r.Post("/logout", s.handleLogout)
	})

	// Protected routes (valid session cookie required).
	s.router.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Get("/api/auth/me", s.handleMe)
		r.Get("/api/analytics/overview", s.handleAnalyticsOverview)
		r.Get("/api/documents", s.handleDocuments)
		r.Get("/api/queries", s.handleQueries)
		r.Post("/api/documents/upload", s.handleUpload)

		// Admin routes.
		r.Group(func(r chi.Router) {
			r.Use(s.adminMiddleware)
			r.Get("/api/users", s.handleUsers)
		})
	})

	// Built frontend, when configured.
	if s.config.StaticDir != "" {
		s.router.NotFound(staticHandler(s.config.StaticDir))
	}
}

// staticHandler serves the built frontend from dir, falling back to
// index.html for client-side routes.
func staticHandler(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
