// internal/httpserver/server.go
package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/klemart/markd/internal/config"
	"github.com/klemart/markd/internal/httpserver/deps"
	"github.com/klemart/markd/internal/httpserver/mw"
	"github.com/klemart/markd/internal/httpserver/routes"
	"github.com/klemart/markd/internal/logger"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	http    *http.Server
	logger  logger.Logger
	started time.Time
}

// New builds the HTTP server (router, middlewares, route registration).
func New(cfg *config.Config, loggerClient logger.Logger, d deps.Deps) *Server {
	r := NewRouter(d)

	s := &http.Server{
		Addr:              cfg.ListenPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return &Server{
		http:    s,
		logger:  loggerClient,
		started: d.StartTime,
	}
}

// NewRouter builds the chi router with global middlewares and all registered
// routes. Exposed separately so integration tests can serve it with httptest.
func NewRouter(d deps.Deps) chi.Router {
	r := chi.NewRouter()

	// --- Global middlewares (safe defaults)
	r.Use(middleware.GetHead)
	r.Use(middleware.RequestID)                // X-Request-ID on each request
	r.Use(middleware.Recoverer)                // never crash the process on panic
	r.Use(middleware.Timeout(5 * time.Second)) // per-request timeout
	r.Use(mw.Log(d.Logger))                    // structured access logs
	r.Use(mw.CORS())

	routes.RegisterAll(r, d)
	return r
}

// Start runs the HTTP server (blocks until error or shutdown).
func (s *Server) Start() error {
	s.logger.Infof("HTTP server listening on %s", s.http.Addr)
	err := s.http.ListenAndServe()
	// http.ErrServerClosed is expected on graceful shutdown.
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop gracefully shuts down the server with the provided context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down...")
	return s.http.Shutdown(ctx)
}
