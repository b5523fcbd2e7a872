// Package server exposes the planning pipeline over HTTP.
//
// The server serves the same pipeline as the CLI: configuration
// enumeration, full plan computation, and rendered wall previews, plus
// CRUD for saved rooms. It is intended as a small local preview server
// (started with `stripeplan serve`), not a hardened public API.
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jmendler/stripeplan/pkg/plan"
	"github.com/jmendler/stripeplan/pkg/store"
)

// DefaultListen is the default listen address.
const DefaultListen = "localhost:8412"

// Server wires the planning runner and room store into an HTTP API.
type Server struct {
	runner *plan.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a Server. A nil logger discards output; a nil store
// disables the room routes (they respond 503).
func New(runner *plan.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if runner == nil {
		runner = plan.NewRunner(nil, nil, logger)
	}
	return &Server{runner: runner, store: st, logger: logger}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/configs", s.handleConfigs)
		r.Post("/plan", s.handlePlan)

		r.Route("/rooms", func(r chi.Router) {
			r.Use(s.requireStore)
			r.Get("/", s.handleListRooms)
			r.Post("/", s.handleCreateRoom)
			r.Get("/{id}", s.handleGetRoom)
			r.Put("/{id}", s.handleUpdateRoom)
			r.Delete("/{id}", s.handleDeleteRoom)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireStore)
		r.Get("/rooms/{id}/wall.svg", s.handleRoomWallSVG)
	})

	return r
}

// ListenAndServe runs the server on addr until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultListen
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs each request through the server's structured logger.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// requireStore guards room routes when no store backend is configured.
func (s *Server) requireStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.store == nil {
			writeErrorStatus(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "no room store configured")
			return
		}
		next.ServeHTTP(w, r)
	})
}
