// Package httpserver exposes puzzle sessions as a JSON API.
//
// Routes:
//   - GET  /health
//   - GET  /api/packs
//   - POST /api/games                 {"difficulty": "...", "letters": "..."}
//   - GET  /api/games/{id}
//   - POST /api/games/{id}/guesses    {"word": "..."}
//   - POST /api/games/{id}/hint
//   - POST /api/games/{id}/shuffle
//   - POST /api/games/{id}/reveal
//
// Sessions live in memory and expire after Config.SessionTTL without a
// request. Finished puzzles are recorded through the configured ResultSaver.
package httpserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-bee/internal/config"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
	"github.com/vovakirdan/tui-bee/internal/registry"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

// ResultSaver records completed puzzles.
type ResultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

// Config configures the API server.
type Config struct {
	Bee     config.BeeConfig
	Results ResultSaver // nil skips saving results
	Logger  *log.Logger // nil discards logs
	Seed    int64       // 0 seeds each session from the clock
	Timeout time.Duration

	SessionTTL  time.Duration // idle sessions are dropped after this; default 1h
	MaxSessions int           // oldest sessions are evicted past this; default 10000

	// Load returns the puzzle data for a difficulty. Defaults to registry.Load.
	Load func(difficulty string) (*puzzle.Set, error)
}

// Server bundles the router and the session table.
type Server struct {
	r        *chi.Mux
	cfg      Config
	sessions *sessionStore
	logger   *log.Logger
	seeds    atomic.Int64
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Load == nil {
		cfg.Load = registry.Load
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	s := &Server{
		r:        chi.NewRouter(),
		cfg:      cfg,
		sessions: newSessionStore(cfg.SessionTTL, cfg.MaxSessions),
		logger:   cfg.Logger,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger(s.logger))
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(cfg.Timeout))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/api", func(r chi.Router) {
		r.Get("/packs", s.handlePacks)
		r.Post("/games", s.handleNewGame)
		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Post("/guesses", s.handleGuess)
			r.Post("/hint", s.handleHint)
			r.Post("/shuffle", s.handleShuffle)
			r.Post("/reveal", s.handleReveal)
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// nextSeed returns the RNG seed for a new session.
func (s *Server) nextSeed() int64 {
	n := s.seeds.Add(1)
	if s.cfg.Seed == 0 {
		return time.Now().UnixNano() + n
	}
	return s.cfg.Seed + n - 1
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", chimw.GetReqID(r.Context()),
			)
		})
	}
}
