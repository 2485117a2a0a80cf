// Package server exposes the running match to read-only spectators over HTTP and websockets
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/breakout/physics"
	"github.com/lixenwraith/breakout/status"
)

// SnapshotSource publishes the latest game state, satisfied by *engine.Game
type SnapshotSource interface {
	Snapshot() *physics.Snapshot
}

type Options struct {
	Addr           string
	BroadcastHz    int
	AllowedOrigins []string
	WriteWait      time.Duration

	// Stats enables GET /stats when set
	Stats *status.Registry
}

// Server streams snapshots to spectators
type Server struct {
	src  SnapshotSource
	opts Options

	upgrader websocket.Upgrader
	router   chi.Router
	httpSrv  *http.Server

	viewers  atomic.Int64
	quit     chan struct{}
	quitOnce sync.Once
}

// New creates a spectator server reading from src
func New(src SnapshotSource, opts Options) *Server {
	if opts.BroadcastHz <= 0 {
		opts.BroadcastHz = 30
	}
	if opts.WriteWait <= 0 {
		opts.WriteWait = 2 * time.Second
	}

	s := &Server{
		src:  src,
		opts: opts,
		quit: make(chan struct{}),
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	s.router = s.routes()
	s.httpSrv = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, for embedding or tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Viewers returns the number of connected websocket spectators
func (s *Server) Viewers() int64 {
	return s.viewers.Load()
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/state", s.handleState)
	r.Get("/ws", s.handleWS)
	if s.opts.Stats != nil {
		r.Get("/stats", s.handleStats)
	}
	return r
}

// ListenAndServe blocks until Shutdown, a clean shutdown returns nil
func (s *Server) ListenAndServe() error {
	log.Printf("spectator: listening on %s", s.opts.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectator listen %s: %w", s.opts.Addr, err)
	}
	return nil
}

// Serve accepts connections on l until Shutdown
func (s *Server) Serve(l net.Listener) error {
	if err := s.httpSrv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectator serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and closes open streams
func (s *Server) Shutdown(ctx context.Context) error {
	s.quitOnce.Do(func() { close(s.quit) })
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("spectator shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.src.Snapshot()); err != nil {
		log.Printf("spectator: encode state: %v", err)
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.opts.Stats.Export()); err != nil {
		log.Printf("spectator: encode stats: %v", err)
	}
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return slices.Contains(s.opts.AllowedOrigins, "*") || slices.Contains(s.opts.AllowedOrigins, origin)
}
