package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/zeusync/rpsarena/internal/core/arena"
	"github.com/zeusync/rpsarena/internal/core/observability/log"
)

// Config controls the snapshot server.
type Config struct {
	ListenAddr   string
	SendBuffer   int
	WriteTimeout time.Duration
}

// Server publishes arena snapshots over HTTP and websockets. It implements the
// runner's Renderer port; Render never blocks on a client.
type Server struct {
	cfg    Config
	logger log.Log

	mu      sync.RWMutex
	clients map[string]*client
	latest  []byte
	digest  uint64

	httpServer *http.Server
	listener   net.Listener
	running    atomic.Bool
	dropped    atomic.Uint64
}

func New(cfg Config, logger log.Log) *Server {
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = 16
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	return &Server{
		cfg:     cfg,
		logger:  logger,
		clients: make(map[string]*client),
	}
}

// Handler exposes GET /snapshot and GET /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /snapshot", s.handleSnapshot)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return mux
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start(_ context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrServerAlreadyRunning
	}
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		s.running.Store(false)
		return errors.Wrapf(err, "listen on %s", s.cfg.ListenAddr)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("snapshot server stopped", log.Error(err))
		}
	}()
	s.logger.Info("snapshot server listening", log.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the bound address once started.
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop shuts down the HTTP server and disconnects every client.
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return ErrServerNotRunning
	}
	err := s.httpServer.Shutdown(ctx)

	s.mu.Lock()
	clients := s.clients
	s.clients = make(map[string]*client)
	s.mu.Unlock()
	for _, c := range clients {
		c.close()
	}
	return errors.Wrap(err, "shutdown snapshot server")
}

// Render encodes the snapshot once and queues it for every client. Clients
// whose queue is full are disconnected.
func (s *Server) Render(snapshot arena.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}

	s.mu.Lock()
	s.latest = payload
	s.digest = snapshot.Digest()
	var slow []*client
	for _, c := range s.clients {
		if !c.enqueue(payload) {
			slow = append(slow, c)
		}
	}
	s.mu.Unlock()

	for _, c := range slow {
		s.logger.Warn("dropping slow client", log.String("client", c.id))
		s.remove(c)
	}
	return nil
}

// Clients returns the number of connected websocket clients.
func (s *Server) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Dropped returns how many clients have been removed, whether they left, failed
// or fell behind.
func (s *Server) Dropped() uint64 { return s.dropped.Load() }

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	payload, digest := s.latest, s.digest
	s.mu.RUnlock()

	if payload == nil {
		http.Error(w, ErrNoSnapshot.Error(), http.StatusServiceUnavailable)
		return
	}
	etag := fmt.Sprintf(`"%016x"`, digest)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

func (s *Server) add(c *client) {
	s.mu.Lock()
	s.clients[c.id] = c
	latest := s.latest
	s.mu.Unlock()
	if latest != nil {
		c.enqueue(latest)
	}
}

func (s *Server) remove(c *client) {
	s.mu.Lock()
	if _, ok := s.clients[c.id]; ok {
		delete(s.clients, c.id)
		s.dropped.Add(1)
	}
	s.mu.Unlock()
	c.close()
}
