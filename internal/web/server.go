package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"linsearch/internal/telemetry"
)

// MaxRequestBytes bounds the request line and headers read per connection.
const MaxRequestBytes = 4096

// ServerConfig controls how the API listener is bound and served.
type ServerConfig struct {
	Host              string
	Port              int
	PortFallback      bool // try Port+1 once if Port cannot be bound
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Server owns the listening socket and hands every accepted connection to
// its own goroutine. Each connection carries exactly one request.
type Server struct {
	cfg      ServerConfig
	handler  http.Handler
	listener net.Listener
	listen   func(network, addr string) (net.Listener, error)
}

// NewServer creates a new API server
func NewServer(cfg ServerConfig, handler http.Handler) *Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	return &Server{
		cfg:     cfg,
		handler: handler,
		listen:  net.Listen,
	}
}

// Listen binds the configured port, falling back to the next port number
// once when enabled.
func (s *Server) Listen() error {
	ln, err := s.listen("tcp", s.addr(s.cfg.Port))
	if err == nil {
		s.listener = ln
		return nil
	}
	if !s.cfg.PortFallback {
		return fmt.Errorf("failed to bind to port %d: %w", s.cfg.Port, err)
	}

	next := s.cfg.Port + 1
	slog.Warn("Failed to bind, trying next port", "port", s.cfg.Port, "next", next, "error", err)

	ln, fallbackErr := s.listen("tcp", s.addr(next))
	if fallbackErr != nil {
		return fmt.Errorf("failed to bind to port %d or %d: %w", s.cfg.Port, next, errors.Join(err, fallbackErr))
	}
	s.listener = ln
	return nil
}

// Port reports the bound port, or 0 before Listen succeeds.
func (s *Server) Port() int {
	if s.listener == nil {
		return 0
	}
	if tcp, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

// Addr reports the bound address, or "" before Listen succeeds.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve accepts connections until ctx is cancelled. On cancellation the
// listener is closed and in-flight requests get ShutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	// Cancelled on return so the shutdown goroutine never outlives Serve.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		MaxHeaderBytes:    MaxRequestBytes,

		// OPTIONS * is a preflight like any other path.
		DisableGeneralOptionsHandler: true,
	}
	// One request per connection, then close.
	srv.SetKeepAlivesEnabled(false)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Shutdown did not complete", "error", err)
		}
	}()

	telemetry.LogInfof("Starting API server on %s", s.Addr())
	err := srv.Serve(s.listener)
	cancel()
	<-stopped
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) addr(port int) string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(port))
}
