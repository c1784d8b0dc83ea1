package server

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/handler"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop
// signal.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.closeListeners()
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer launches every created server and blocks until ctx is done or
// one of them fails. Either way all servers are shut down before it returns.
func (s *server) RunServer(ctx context.Context) error {
	errCh := make(chan error, 2)

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go func() { errCh <- s.httpServer.RunServer() }()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go func() { errCh <- s.gRPCServer.RunServer() }()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		s.logger.Err(runErr).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}

func (s *server) Shutdown(ctx context.Context) error {
	var err error

	// finish HTTP server
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		err = errors.Join(err, s.gRPCServer.Shutdown(ctx))
	}

	return err
}

func (s *server) closeListeners() {
	if s.httpServer != nil {
		_ = s.httpServer.listener.Close()
	}
}
