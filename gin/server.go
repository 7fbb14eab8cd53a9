// Package gin provides the HTTP API surface for profile extraction.
package gin

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/shopsight"
	"github.com/gin-gonic/gin"
)

// DefaultAPIPrefix is the route prefix for versioned API endpoints.
const DefaultAPIPrefix = "/api/v1"

// shutdownTimeout bounds how long Close waits for in-flight extractions.
const shutdownTimeout = 10 * time.Second

// Server serves the extraction API over HTTP.
type Server struct {
	Addr      string
	APIPrefix string
	Version   string

	Profiles shopsight.ProfileService
	// LLMConfigured reports whether an enrichment backend is wired; it only
	// affects the health endpoint.
	LLMConfigured bool
	Logger        *slog.Logger

	srv *http.Server
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	prefix := s.APIPrefix
	if prefix == "" {
		prefix = DefaultAPIPrefix
	}

	router.GET("/", s.handleRoot(prefix))
	api := router.Group(prefix)
	api.POST("/extract-insights", s.handleExtractInsights)
	api.GET("/health", s.handleHealth)

	return router
}

// Open starts the HTTP server and blocks until it stops.
func (s *Server) Open() error {
	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if s.Logger != nil {
		s.Logger.Info("http server listening", "addr", s.Addr)
	}
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts the server down, waiting for in-flight requests.
func (s *Server) Close() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
