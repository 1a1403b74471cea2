package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/factlens/factlens/internal/config"
	"github.com/factlens/factlens/internal/handlers"
	"github.com/factlens/factlens/internal/verifier"
	"github.com/factlens/factlens/internal/web"
)

// maxBodyBytes bounds analyze request bodies.
const maxBodyBytes = 1 << 20

// Config holds server dependencies.
type Config struct {
	Verifier       *verifier.Verifier
	Renderer       handlers.PageRenderer
	RateLimit      config.RateLimitConfig
	AllowedOrigins []string

	// TrustProxyHeaders installs chimw.RealIP. Off by default so clients
	// cannot pick their own address through X-Forwarded-For.
	TrustProxyHeaders bool
}

// Server is the HTTP server for the verification API.
type Server struct {
	Router  chi.Router
	Config  Config
	Metrics *Metrics
	Limiter *RateLimiter // nil when rate limiting is disabled
}

// New creates a new Server with all routes and middleware configured.
func New(cfg Config) *Server {
	if cfg.Verifier == nil {
		cfg.Verifier = verifier.New()
	}
	if cfg.Renderer == nil {
		cfg.Renderer = web.MustNewRenderer()
	}

	r := chi.NewRouter()
	metrics := NewMetrics()

	// Global middleware
	r.Use(RequestID)
	if cfg.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(CORSMiddleware(cfg.AllowedOrigins))
	r.Use(chimw.Recoverer)
	r.Use(MaxBodySize(maxBodyBytes))

	s := &Server{Router: r, Config: cfg, Metrics: metrics}
	if cfg.RateLimit.Enabled() {
		s.Limiter = NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		metrics.TrackRateLimiter(s.Limiter)
	}
	s.registerRoutes()

	return s
}

// Run starts the HTTP server on addr and blocks until ctx is cancelled or
// SIGINT/SIGTERM arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case <-ctx.Done():
		slog.Info("shutting down server", "reason", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("server stopped gracefully")
	return nil
}

// registerRoutes mounts the front end, the analyze endpoint and the v1 API.
func (s *Server) registerRoutes() {
	v := s.Config.Verifier
	home := &handlers.HomeHandler{Renderer: s.Config.Renderer, Catalog: v.Catalog()}
	analyze := &handlers.AnalyzeHandler{Analyzer: v, Recorder: s.Metrics}
	sources := &handlers.SourceHandler{Catalog: v.Catalog()}
	cfgHandler := &handlers.ConfigHandler{AnalysisDelay: v.Delay(), Catalog: v.Catalog()}

	limited := func(r chi.Router) chi.Router {
		if s.Limiter == nil {
			return r
		}
		return r.With(s.Limiter.Middleware)
	}

	s.Router.Get("/", home.Home)
	limited(s.Router).Post("/analyze", analyze.Analyze)
	s.Router.Method(http.MethodGet, "/metrics", s.Metrics.Handler())

	// Health check endpoint, registered ahead of the v1 group
	s.Router.Get("/api/v1/health", handlers.HealthCheck)

	s.Router.Route("/api/v1", func(r chi.Router) {
		r.Get("/sources", sources.List)
		r.Get("/sources/{id}", sources.Get)
		r.Get("/config", cfgHandler.GetConfig)
		limited(r).Post("/analyze", analyze.Analyze)
	})
}
