// Package server runs the HTTP listener of the web server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// ErrNotListening is returned by Serve when Listen has not bound a socket.
var ErrNotListening = errors.New("server is not listening")

// Server contains the http server and configuration.
type Server struct {
	server   *http.Server
	listener net.Listener
	conf     Config
}

// New creates a new instance of Server serving h.
func New(config Config, h http.Handler) *Server {
	srv := &http.Server{
		Addr:        config.Addr(),
		ReadTimeout: config.ReadTimeout,
		Handler:     h,
	}
	return &Server{
		server: srv,
		conf:   config,
	}
}

// Listen binds the configured address and returns the bound address.
func (s *Server) Listen() (net.Addr, error) {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", s.server.Addr, err)
	}
	s.listener = ln
	return ln.Addr(), nil
}

// Serve accepts connections until ctx is done, then closes the listener.
// In-flight requests are not drained.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return ErrNotListening
	}

	log.Infof("Web Server Startup - %s", s.conf.Addr())
	log.Infof("Point browser to http://%s", s.conf.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if err := s.server.Close(); err != nil {
			return fmt.Errorf("failed to close server: %w", err)
		}
		<-errCh
		log.Infof("Web Server Stopped - %s", s.conf.Addr())
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	}
}

// Close releases a socket bound by Listen that is not being served.
func (s *Server) Close() error {
	if s.listener == nil {
		return nil
	}
	if err := s.listener.Close(); err != nil {
		return fmt.Errorf("failed to close listener: %w", err)
	}
	return nil
}

// Start binds the address and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	if _, err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}
