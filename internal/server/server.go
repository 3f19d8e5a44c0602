// Package server exposes the journal over a small JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/julianstephens/daylog/internal/auth"
	"github.com/julianstephens/daylog/internal/config"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	svc    *journal.Service
	issuer *auth.Issuer
	cfg    *config.Config
	engine *gin.Engine
}

// New builds the router. It does not start listening.
func New(svc *journal.Service, issuer *auth.Issuer, cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	origins := cfg.Server.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s := &Server{svc: svc, issuer: issuer, cfg: cfg, engine: gin.New()}
	s.engine.Use(gin.Recovery(), requestLogger())
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{RefreshHeader},
		MaxAge:        12 * time.Hour,
	}))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)
	s.engine.POST("/api/login", s.login)

	api := s.engine.Group("/api", s.requireToken())
	api.GET("/dashboard", s.dashboard)

	api.GET("/records", s.listRecords)
	api.GET("/records/:date", s.getRecord)
	api.PUT("/records/:date/morning", s.saveMorning)
	api.PUT("/records/:date/evening", s.saveEvening)

	api.GET("/decisions", s.listDecisions)
	api.POST("/decisions", s.addDecision)
	api.GET("/decisions/:id", s.getDecision)
	api.DELETE("/decisions/:id", s.deleteDecision)
	api.POST("/decisions/:id/restore", s.restoreDecision)

	api.GET("/entries", s.listEntries)
	api.POST("/entries", s.addEntry)
	api.DELETE("/entries/:id", s.deleteEntry)

	api.GET("/export/markdown", s.exportMarkdown)
	api.GET("/export/json", s.exportJSON)
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("API server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
