// Package server implements the websocket entropy service: named generator
// streams declared in configuration, served to clients in batches over a
// JSON request/response protocol.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/randkit/rng"
)

// Server serves generator streams over websockets.
type Server struct {
	config     *Config
	upgrader   websocket.Upgrader
	logger     *log.Logger
	clock      quartz.Clock
	prototypes map[string]rng.Source
	limits     map[string]int

	connections map[*Connection]bool
	register    chan *Connection
	unregister  chan *Connection
	mu          sync.RWMutex
	ctx         context.Context
	cancel      context.CancelFunc
}

// Option configures a Server.
type Option func(*Server)

// WithClock replaces the wall clock, for tests.
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) { s.clock = clock }
}

// NewServer creates a server for the given configuration. Stream prototypes
// are seeded once here: fixed-seed streams replay the same sequence for
// every connection, zero-seed streams draw a fresh entropy seed per server
// start.
func NewServer(config *Config, logger *log.Logger, opts ...Option) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      logger.WithPrefix("server"),
		clock:       quartz.NewReal(),
		prototypes:  make(map[string]rng.Source),
		limits:      make(map[string]int),
		connections: make(map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		ctx:         ctx,
		cancel:      cancel,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, sc := range config.Streams {
		seed := sc.Seed
		if seed == 0 {
			seed = rng.MakeSeed()
		}
		src, err := rng.NewSource(sc.Algorithm, seed)
		if err != nil {
			cancel()
			return nil, err
		}
		s.prototypes[sc.Name] = src
		s.limits[sc.Name] = sc.MaxBatch
		s.logger.Info("Configured stream", "name", sc.Name, "algorithm", sc.Algorithm, "tag", src.Tag(), "fixed_seed", sc.Seed != 0)
	}

	return s, nil
}

// Start listens on the configured address and serves until the listener
// fails or the server is stopped.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Address, s.config.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(listener)
}

// Serve accepts connections on the given listener. Exposed separately so
// tests can use port 0.
func (s *Server) Serve(listener net.Listener) error {
	go s.run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.logger.Info("Starting entropy service", "addr", listener.Addr().String(), "streams", len(s.prototypes))
	return http.Serve(listener, mux)
}

// Stop closes all connections and stops the lifecycle loop.
func (s *Server) Stop() error {
	s.cancel()

	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close()
	}
	s.mu.Unlock()

	return nil
}

// run handles connection lifecycle.
func (s *Server) run() {
	for {
		select {
		case conn := <-s.register:
			s.mu.Lock()
			s.connections[conn] = true
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("Client connected", "total", total)

		case conn := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.connections[conn]; ok {
				delete(s.connections, conn)
				_ = conn.Close()
			}
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("Client disconnected", "total", total)

		case <-s.ctx.Done():
			return
		}
	}
}

// handleWebSocket upgrades the request and hands it to a Connection.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s, s.logger, s.clock)
	select {
	case s.register <- client:
	case <-s.ctx.Done():
		_ = client.Close()
		return
	}
	go client.readLoop()
}

// handleHealth reports liveness and the configured stream names.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "ok %d streams\n", len(s.prototypes))
}

// prototype returns the seeded prototype generator for a stream.
func (s *Server) prototype(name string) (rng.Source, bool) {
	src, ok := s.prototypes[name]
	return src, ok
}

// maxBatch returns the per-request value cap for a stream, defaulting to
// 4096 for unknown names so error responses stay sensible.
func (s *Server) maxBatch(name string) int {
	if limit, ok := s.limits[name]; ok {
		return limit
	}
	return 4096
}
