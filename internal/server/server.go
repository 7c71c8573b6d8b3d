// ABOUTME: Mock shop backend assembled from config, catalog, token service and chi router
// ABOUTME: Registers the route table with auth, rate limit and simulation middleware and serves it

package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/markalston/mocha-admin/internal/server/cache"
	"github.com/markalston/mocha-admin/internal/server/config"
	"github.com/markalston/mocha-admin/internal/server/handlers"
	"github.com/markalston/mocha-admin/internal/server/middleware"
	"github.com/markalston/mocha-admin/internal/server/services"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 10 * time.Second

// Server is the mock backend
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	router   chi.Router
	sessions *cache.Cache[*services.Session]
	stats    *cache.Cache[any]
}

// New builds a server over freshly seeded data.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	return NewWithSeed(cfg, logger, services.DefaultSeed())
}

// NewWithSeed builds a server over the given seed data.
func NewWithSeed(cfg *config.Config, logger *slog.Logger, seed services.SeedData) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		sessions: cache.New[*services.Session](cfg.TokenLifetime()),
		stats:    cache.New[any](handlers.StatsTTL),
	}

	h := handlers.NewHandler(cfg,
		services.NewCatalog(seed),
		services.NewSessionService(s.sessions, cfg.TokenLifetime()),
		s.stats,
	)
	s.router = s.routes(h)
	return s
}

func (s *Server) routes(h *handlers.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Std(middleware.LogRequest(s.logger)))
	r.Use(middleware.Std(middleware.CORS(s.cfg.CORSAllowedOrigins)))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	loginLimiter := middleware.NewRateLimiter(s.cfg.RateLimitAuth, time.Minute)
	auth := middleware.Auth(h.ValidateToken)
	sim := middleware.Simulation{
		Latency:     s.cfg.MockLatency(),
		FailureRate: s.cfg.MockFailureRate,
	}

	for _, rt := range h.Routes() {
		var mws []middleware.Middleware
		if rt.RateLimit {
			mws = append(mws, middleware.RateLimit(loginLimiter, middleware.ClientIP))
		}
		if !rt.Public {
			mws = append(mws, auth)
		}
		if rt.Failure != "" {
			mws = append(mws, sim.Wrap(rt.Failure))
		}
		r.Method(rt.Method, rt.Path, middleware.Chain(rt.Handler, mws...))
	}

	return r
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the caches' background goroutines.
func (s *Server) Close() {
	s.sessions.Close()
	s.stats.Close()
}

// Run listens on the configured port until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.cfg.Port)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.Close()

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("Mock backend listening",
		"addr", ln.Addr().String(),
		"latency", s.cfg.MockLatency(),
		"failure_rate", s.cfg.MockFailureRate,
		"upload_signing", s.cfg.UploadAPISecret != "",
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("Graceful shutdown failed", "error", err)
		}
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		s.logger.Info("Mock backend stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
