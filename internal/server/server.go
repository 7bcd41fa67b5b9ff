// Package server exposes the game engine over a websocket endpoint. Each
// connection owns one private game session: the browser client streams
// tracking frames, the server steps the simulation synchronously and
// answers with authoritative state and events.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"

	"github.com/handwave/catchball/internal/coach"
	"github.com/handwave/catchball/internal/core"
	"github.com/handwave/catchball/internal/storage"
)

// Config holds configuration for the game server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8090").
	Address string

	// DBPath is the path to the sessions database. Empty disables
	// persistence.
	DBPath string

	// AllowedOrigins restricts websocket upgrades. Empty allows only
	// same-origin requests.
	AllowedOrigins []string

	// Runtime is passed to every new game session.
	Runtime core.RuntimeConfig
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address: ":8090",
		DBPath:  "~/.catchball/sessions.db",
		Runtime: core.RuntimeConfig{TickRate: 30},
	}
}

// Server is the websocket game server.
type Server struct {
	config Config
	http   *http.Server
	store  *storage.Store
	coach  *coach.Client
	logger *log.Logger
}

// New creates a game server. The coach client may be nil; sessions then
// skip coaching tips entirely.
func New(cfg Config, coachClient *coach.Client) *Server {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "catchball",
	})

	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open sessions database", "error", err)
			// Continue without persistence
			store = nil
		}
	}

	srv := &Server{
		config: cfg,
		store:  store,
		coach:  coachClient,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return srv
}

// handleWS upgrades the connection and runs one session until the client
// disconnects.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.config.AllowedOrigins,
	})
	if err != nil {
		s.logger.Warn("websocket accept failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	s.logger.Info("session started", "remote", r.RemoteAddr)
	sess := newSession(conn, s)
	sess.run(r.Context())
	s.logger.Info("session ended", "remote", r.RemoteAddr)
}

// ListenAndServe starts the server and blocks until a shutdown signal.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting game server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.http.Shutdown(ctx)
}

// Handler returns the server's HTTP handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
