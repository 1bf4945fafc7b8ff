package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
)

type Server struct {
	httpServer *http.Server
	log        logger.Logger
	port       string
}

func NewServer(cfg config.HTTPServerConfig, handler http.Handler, log logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		log:  log,
		port: cfg.Port,
	}
}

// Start binds the port and serves in the background. Serve errors other
// than a clean shutdown are sent on the returned channel.
func (s *Server) Start() (<-chan error, error) {
	lis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.log.Errorf("Failed to listen on port %s: %v", s.port, err)
		return nil, fmt.Errorf("failed to listen on port %s: %w", s.port, err)
	}
	s.log.Infof("HTTP server listening on %s", lis.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorf("HTTP server failed: %v", err)
			errCh <- err
		}
		close(errCh)
	}()
	return errCh, nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Attempting graceful shutdown of HTTP server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.Warnf("HTTP graceful shutdown incomplete: %v", err)
		return s.httpServer.Close()
	}
	s.log.Info("HTTP server stopped gracefully.")
	return nil
}
