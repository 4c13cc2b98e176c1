package jsonrpc

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gabapcia/walletbridge/internal/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// ClosableProvider is a Provider that owns resources.
type ClosableProvider interface {
	Provider
	Close()
}

// OpenFunc builds the provider served by a Server.
type OpenFunc func(ctx context.Context) (ClosableProvider, error)

// Server serves a provider over HTTP.
type Server struct {
	addr string
	open OpenFunc

	provider ClosableProvider
	http     *http.Server
	done     chan struct{}
}

// NewServer returns a Server that opens its provider on Start and listens on
// addr.
func NewServer(addr string, open OpenFunc) *Server {
	return &Server{addr: addr, open: open}
}

// Start opens the provider and starts listening. It returns once the listener
// is bound; requests are served in the background.
func (s *Server) Start(ctx context.Context) error {
	provider, err := s.open(ctx)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		provider.Close()
		return err
	}

	s.addr = ln.Addr().String()
	s.provider = provider
	s.http = &http.Server{
		Handler:           NewRouter(provider),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "json-rpc server stopped", "error", err)
		}
	}()

	logger.Info(ctx, "json-rpc server listening", "http.addr", s.addr)
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	return s.addr
}

// Close stops accepting requests and closes the provider.
func (s *Server) Close() {
	if s.http == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Event streams never finish on their own.
	if err := s.http.Shutdown(ctx); err != nil {
		_ = s.http.Close()
	}
	<-s.done

	s.provider.Close()
}
