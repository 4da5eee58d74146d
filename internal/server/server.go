// Package server provides the HTTP REST API for the career advisor.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/server/ratelimit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// Version is reported by the health endpoint. Set at build time with -ldflags.
var Version = "dev"

// Server represents the HTTP server
type Server struct {
	cfg         config.Config
	advisor     *advisor.Service
	logger      *zap.Logger
	metrics     *observability.Metrics
	gatherer    prometheus.Gatherer
	rateLimiter *ratelimit.Limiter
	closers     []io.Closer
	now         func() time.Time

	handler    http.Handler
	httpServer *http.Server
}

// Deps are the collaborators a Server is built from.
type Deps struct {
	Advisor *advisor.Service
	Logger  *zap.Logger
	// Metrics and Registry must belong together; Registry is served on /metrics.
	Metrics  *observability.Metrics
	Registry *prometheus.Registry
	// Closers are closed, in order, after the server stops (model client, cache).
	Closers []io.Closer
	// Now overrides the response timestamp clock in tests.
	Now func() time.Time
}

// New creates a new server instance
func New(cfg config.Config, deps Deps) (*Server, error) {
	if deps.Advisor == nil {
		return nil, errors.New("server requires an advisor")
	}
	s := &Server{
		cfg:         cfg,
		advisor:     deps.Advisor,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimitConfig()),
		closers:     deps.Closers,
		now:         deps.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if deps.Registry != nil {
		s.gatherer = deps.Registry
	} else {
		s.gatherer = prometheus.DefaultGatherer
	}
	if s.metrics == nil {
		s.metrics = observability.NewMetrics(nil)
	}

	s.handler = s.routes()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoverer)
	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(s.metrics.HTTPMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ParseOrigins(s.cfg.CORSAllowOrigins),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id", "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(ratelimit.Middleware(s.rateLimiter, s.rateLimited))
	r.Use(middleware.RequestSize(MaxBodyBytes))

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", s.handleHealth)
		api.Post("/chat", s.handleChat)
		api.Post("/analyze-quiz", s.handleAnalyzeQuiz)
		api.Post("/career-assessment", s.handleCareerAssessment)
		api.Post("/industry-insights", s.handleIndustryInsights)
	})
	r.Get("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}).ServeHTTP)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.errorResponse(w, r, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.errorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.release()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.release()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// release stops background work and closes injected resources.
func (s *Server) release() {
	s.rateLimiter.Stop()
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.logger.Warn("failed to close resource", zap.Error(err))
		}
	}
	_ = s.logger.Sync()
}

// ParseOrigins splits a comma-separated origin list, trimming spaces.
// An empty list means any origin.
func ParseOrigins(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
