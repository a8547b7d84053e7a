package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lox/blackjackrl/internal/control"
	"github.com/lox/blackjackrl/internal/results"
	"github.com/lox/blackjackrl/internal/trainer"
)

// Controller is the part of control.Controller the server drives.
type Controller interface {
	Send(control.Signal) bool
	Active() bool
	Snapshot() trainer.Snapshot
	Subscribe() (<-chan trainer.Snapshot, func())
}

// Server broadcasts training snapshots to WebSocket viewers and forwards
// their start, pause and reset requests to the controller.
type Server struct {
	addr        string
	ctrl        Controller
	upgrader    websocket.Upgrader
	connections map[*Connection]bool
	register    chan *Connection
	unregister  chan *Connection
	signals     chan control.Signal
	logger      zerolog.Logger
	mu          sync.RWMutex
	runOnce     sync.Once
	done        chan struct{}
}

// NewServer creates a new WebSocket server
func NewServer(addr string, ctrl Controller, logger zerolog.Logger) *Server {
	return &Server{
		addr: addr,
		ctrl: ctrl,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		signals:     make(chan control.Signal, 16),
		done:        make(chan struct{}),
		logger:      logger.With().Str("component", "server").Logger(),
	}
}

// Handler returns the HTTP routes served by s.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/chart", s.handleChart)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Run dispatches connections, control requests and snapshots until ctx is
// done. It must be running for Handler to accept viewers.
func (s *Server) Run(ctx context.Context) {
	started := false
	s.runOnce.Do(func() { started = true })
	if !started {
		return
	}

	defer close(s.done)

	snapshots, unsubscribe := s.ctrl.Subscribe()
	defer unsubscribe()

	for {
		select {
		case conn := <-s.register:
			s.mu.Lock()
			s.connections[conn] = true
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info().Int("total", total).Msg("Client connected")
			s.sendSnapshot(conn, s.ctrl.Snapshot())

		case conn := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.connections[conn]; ok {
				delete(s.connections, conn)
				_ = conn.Close()
			}
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info().Int("total", total).Msg("Client disconnected")

		case sig := <-s.signals:
			if s.ctrl.Send(sig) {
				s.logger.Info().Stringer("signal", sig).Msg("Control request")
			} else {
				s.logger.Warn().Stringer("signal", sig).Msg("Control request dropped")
			}

		case snap := <-snapshots:
			s.broadcast(snap)

		case <-ctx.Done():
			s.closeAll()
			return
		}
	}
}

// Start serves on the configured address until ctx is done, then shuts the
// HTTP server down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("Starting WebSocket server")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info().Msg("Server stopped")
	return nil
}

// ConnectionCount returns the number of registered viewers.
func (s *Server) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

func (s *Server) broadcast(snap trainer.Snapshot) {
	msg, err := NewMessage(MessageTypeSnapshot, SnapshotData{Snapshot: snap, Active: s.ctrl.Active()})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode snapshot")
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for conn := range s.connections {
		conn.SendMessage(msg)
	}
}

func (s *Server) sendSnapshot(conn *Connection, snap trainer.Snapshot) {
	msg, err := NewMessage(MessageTypeSnapshot, SnapshotData{Snapshot: snap, Active: s.ctrl.Active()})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode snapshot")
		return
	}
	conn.SendMessage(msg)
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.connections {
		_ = conn.Close()
		delete(s.connections, conn)
	}
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to upgrade connection")
		return
	}

	client := NewConnection(conn, s.signals, s.logger)
	select {
	case s.register <- client:
	case <-s.done:
		_ = client.Close()
		return
	case <-r.Context().Done():
		_ = client.Close()
		return
	}
	client.Start()

	go func() {
		<-client.Done()
		select {
		case s.unregister <- client:
		case <-s.done:
		}
	}()
}

// handleChart renders the win-rate history of the latest snapshot.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	snap := s.ctrl.Snapshot()

	var buf bytes.Buffer
	if err := results.RenderWinRateChart(&buf, snap.History, snap.IntervalSize); err != nil {
		s.logger.Error().Err(err).Msg("Failed to render chart")
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}
