// Package server exposes the assessment session operations over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/ksa/internal/logger"
	"github.com/abhisek/ksa/internal/metrics"
	"github.com/abhisek/ksa/internal/session"
)

// Server wires the gin engine to a session manager.
type Server struct {
	cfg     Config
	manager *session.Manager
	metrics *metrics.Metrics
	log     *logger.Logger
	limiter *rateLimiter
	engine  *gin.Engine
}

// New builds the router. m and log may be nil.
func New(cfg Config, manager *session.Manager, m *metrics.Metrics, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.StartRate <= 0 {
		cfg.StartRate = 10
	}
	s := &Server{
		cfg:     cfg,
		manager: manager,
		metrics: m,
		log:     log,
		limiter: newRateLimiter(cfg.StartRate),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.log))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware())
		r.GET("/metrics", s.metrics.Handler())
	}
	if len(s.cfg.CORSOrigins) > 0 {
		r.Use(CORS(s.cfg.CORSOrigins))
	}

	r.NoRoute(func(c *gin.Context) { notFound(c, "route not found") })
	r.GET("/healthz", s.healthz)

	api := r.Group("/api")
	{
		api.GET("/phases", s.listPhases)
		api.POST("/sessions", s.createSession)
		api.GET("/sessions/:id", s.withSession(s.getSession))
		api.DELETE("/sessions/:id", s.deleteSession)

		a := api.Group("/sessions/:id/assessment")
		a.POST("", s.limiter.middleware(), s.withSession(s.startAssessment))
		a.GET("", s.withSession(s.getAssessment))
		a.DELETE("", s.withSession(s.cancelAssessment))
		a.PUT("/answers", s.withSession(s.submitAnswer))
		a.POST("/finish", s.withSession(s.finishAssessment))
		a.POST("/acknowledge", s.withSession(s.acknowledgeResult))
	}
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully. Idle
// sessions and rate-limit buckets are swept in the background.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	bgCtx, stopBackground := context.WithCancel(ctx)
	defer stopBackground()
	if s.cfg.SessionIdleTimeout > 0 {
		go s.manager.RunSweeper(bgCtx, time.Minute, s.cfg.SessionIdleTimeout)
	}
	go s.pruneLimiter(bgCtx)

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	s.log.Info("shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) pruneLimiter(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.limiter.prune(3 * time.Minute)
		}
	}
}
